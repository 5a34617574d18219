package handler

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"skillswap/backend/internal/config"
	"skillswap/backend/internal/database"
	"skillswap/backend/internal/logger"
	"skillswap/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// region --- DTOs ---

// noSkillsPlaceholder is returned instead of an empty skill list so clients
// can render a literal sentence without branching.
const noSkillsPlaceholder = "No skills to display"

// SocialLinkResponse is one external platform link on a profile.
type SocialLinkResponse struct {
	Platform string `json:"platform" example:"github"`
	URL      string `json:"url" example:"https://github.com/alice"`
}

// ProfileResponse is the aggregated read view of a user.
type ProfileResponse struct {
	Username       string               `json:"username" example:"alice"`
	Email          string               `json:"email" example:"alice@example.com"`
	Description    string               `json:"description"`
	ProfilePicture string               `json:"profilePicture"`
	PhoneNumber    string               `json:"phoneNumber"`
	SkillsToLearn  []string             `json:"skillsToLearn"`
	SkillsToTeach  []string             `json:"skillsToTeach"`
	SocialLinks    []SocialLinkResponse `json:"socialLinks"`
}

// EditProfileInput defines the multipart/form fields for a profile edit.
// Every field except currentUsername is optional; only supplied fields are
// written.
type EditProfileInput struct {
	CurrentUsername string `form:"currentUsername" binding:"required" example:"alice"`
	NewUsername     string `form:"newUsername"`
	NewDescription  string `form:"newDescription"`
	Platform        string `form:"platform"`
	LinkToPlatform  string `form:"linkToPlatform"`
}

// endregion

// GetProfile godoc
// @Summary      Get an aggregated profile
// @Description  Returns the user record, distinct learn/teach skill lists and social links. Empty skill lists are normalized to a one-element placeholder.
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Param        selectedUser  query     string  true  "Username whose profile to view"
// @Success      200  {object}  ProfileResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /profile [get]
func GetProfile(c *gin.Context) {
	selected := c.Query("selectedUser")
	if selected == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A 'selectedUser' query parameter is required"})
		return
	}

	user, ok := findUserByUsername(c, selected)
	if !ok {
		return
	}

	skillsToLearn, err := skillNamesByRole(user.ID, true)
	if err != nil {
		logger.L().Errorw("failed to load skills to learn", "username", selected, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	skillsToTeach, err := skillNamesByRole(user.ID, false)
	if err != nil {
		logger.L().Errorw("failed to load skills to teach", "username", selected, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	var links []models.SocialLink
	if err := database.DB.Where("user_id = ?", user.ID).Find(&links).Error; err != nil {
		logger.L().Errorw("failed to load social links", "username", selected, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	linkResponses := make([]SocialLinkResponse, 0, len(links))
	for _, link := range links {
		linkResponses = append(linkResponses, SocialLinkResponse{Platform: link.Platform, URL: link.URL})
	}

	c.JSON(http.StatusOK, ProfileResponse{
		Username:       user.Username,
		Email:          user.Email,
		Description:    user.Description,
		ProfilePicture: user.ProfilePicture,
		PhoneNumber:    user.PhoneNumber,
		SkillsToLearn:  skillsToLearn,
		SkillsToTeach:  skillsToTeach,
		SocialLinks:    linkResponses,
	})
}

// EditProfile godoc
// @Summary      Edit a profile
// @Description  Conditionally updates username, description and profile picture, and upserts one social link. Only supplied fields are written, each bound as a parameter.
// @Tags         profile
// @Accept       mpfd
// @Produce      json
// @Param        currentUsername  formData  string  true   "Current username"
// @Param        newUsername      formData  string  false  "New username"
// @Param        newDescription   formData  string  false  "New description"
// @Param        platform         formData  string  false  "Social platform name"
// @Param        linkToPlatform   formData  string  false  "Social platform URL"
// @Param        image            formData  file    false  "Profile picture"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  FieldErrorResponse "New username already taken"
// @Failure      500  {object}  ErrorResponse
// @Router       /edit-profile [post]
func EditProfile(c *gin.Context) {
	var input EditProfileInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := findUserByUsername(c, input.CurrentUsername)
	if !ok {
		return
	}

	// Assemble the users-row update from only the fields that changed. The
	// column names are constants; every value is bound as a parameter.
	updates := map[string]interface{}{}

	if input.NewUsername != "" && input.NewUsername != user.Username {
		var taken models.User
		if err := database.DB.Where("username = ?", input.NewUsername).First(&taken).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"newErrors": gin.H{"username": "Username already exists"}})
			return
		}
		updates["username"] = input.NewUsername
	}

	if input.NewDescription != "" {
		updates["description"] = input.NewDescription
	}

	if file, err := c.FormFile("image"); err == nil {
		filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
		path := filepath.Join(config.AppConfig.UploadDir, filename)
		if err := os.MkdirAll(config.AppConfig.UploadDir, 0o755); err != nil {
			logger.L().Errorw("failed to create upload dir", "dir", config.AppConfig.UploadDir, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}
		if err := c.SaveUploadedFile(file, path); err != nil {
			logger.L().Errorw("failed to store image", "path", path, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}
		updates["profile_picture"] = path
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"newErrors": gin.H{"username": "Username already exists"}})
				return
			}
			logger.L().Errorw("failed to update profile", "username", input.CurrentUsername, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
	}

	if input.Platform != "" && input.LinkToPlatform != "" {
		if err := upsertSocialLink(user.ID, input.Platform, input.LinkToPlatform); err != nil {
			logger.L().Errorw("failed to upsert social link", "username", input.CurrentUsername, "platform", input.Platform, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update social link"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

// region --- Helpers ---

// skillNamesByRole returns the distinct skill names a user is learning or
// teaching, normalized to the placeholder list when empty.
func skillNamesByRole(userID uint, learning bool) ([]string, error) {
	roleColumn := "is_teaching"
	if learning {
		roleColumn = "is_learning"
	}

	var names []string
	err := database.DB.Model(&models.SkillAssignment{}).
		Joins("JOIN skills ON skills.id = skill_assignments.skill_id").
		Where("skill_assignments.user_id = ? AND skill_assignments."+roleColumn+" = ?", userID, true).
		Distinct().
		Pluck("skills.name", &names).Error
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		return []string{noSkillsPlaceholder}, nil
	}
	return names, nil
}

// upsertSocialLink updates the URL of an existing (user, platform) row or
// inserts a new one.
func upsertSocialLink(userID uint, platform, url string) error {
	var link models.SocialLink
	err := database.DB.Where("user_id = ? AND platform = ?", userID, platform).First(&link).Error
	switch {
	case err == nil:
		return database.DB.Model(&link).Update("url", url).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return database.DB.Create(&models.SocialLink{UserID: userID, Platform: platform, URL: url}).Error
	default:
		return err
	}
}

// endregion
