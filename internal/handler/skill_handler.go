package handler

import (
	"errors"
	"net/http"

	"skillswap/backend/internal/database"
	"skillswap/backend/internal/logger"
	"skillswap/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// region --- DTOs ---

// AddSkillInput defines the structure for adding a skill assignment.
type AddSkillInput struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Skill    string `json:"skill" binding:"required" example:"Painting"`
	ToLearn  *bool  `json:"toLearn" binding:"required"`
}

// PriorityInput defines the structure for setting or clearing a priority skill.
type PriorityInput struct {
	User      string `json:"user" binding:"required" example:"alice"`
	Skill     string `json:"skill" example:"Painting"`
	IsToLearn *bool  `json:"isToLearn" binding:"required"`
}

// endregion

// AddSkill godoc
// @Summary      Add a skill assignment
// @Description  Adds one skill to the user's set, as a skill to learn or to teach. A skill can be assigned at most once per user.
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        input body AddSkillInput true "Skill Info"
// @Success      200  {object}  map[string]interface{} "{"message": "...", "skillCount": n}"
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Unknown user or skill"
// @Failure      409  {object}  ErrorResponse "Skill already assigned"
// @Failure      500  {object}  ErrorResponse
// @Router       /add-skill [post]
func AddSkill(c *gin.Context) {
	var input AddSkillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := findUserByUsername(c, input.Username)
	if !ok {
		return
	}
	skill, ok := findSkillByName(c, input.Skill)
	if !ok {
		return
	}

	assignment := models.SkillAssignment{
		UserID:     user.ID,
		SkillID:    skill.ID,
		IsLearning: *input.ToLearn,
		IsTeaching: !*input.ToLearn,
	}
	if err := database.DB.Create(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Skill already assigned"})
			return
		}
		logger.L().Errorw("failed to add skill", "username", input.Username, "skill", input.Skill, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add skill"})
		return
	}

	var skillCount int64
	if err := database.DB.Model(&models.SkillAssignment{}).Where("user_id = ?", user.ID).Count(&skillCount).Error; err != nil {
		logger.L().Errorw("failed to count skill assignments", "username", input.Username, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add skill"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Skill added", "skillCount": skillCount})
}

// RemoveSkill godoc
// @Summary      Remove a skill assignment
// @Description  Removes the user's assignment row for the named skill, regardless of its learn/teach role.
// @Tags         skills
// @Produce      json
// @Param        username  query     string  true  "Username"
// @Param        skill     query     string  true  "Skill name"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Unknown user/skill or nothing to remove"
// @Failure      500  {object}  ErrorResponse
// @Router       /remove-skill [delete]
func RemoveSkill(c *gin.Context) {
	username := c.Query("username")
	skillName := c.Query("skill")
	if username == "" || skillName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'username' and 'skill' query parameters are required"})
		return
	}

	user, ok := findUserByUsername(c, username)
	if !ok {
		return
	}
	skill, ok := findSkillByName(c, skillName)
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND skill_id = ?", user.ID, skill.ID).Delete(&models.SkillAssignment{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		// Removing a skill invalidates any priority pointer at it on the
		// user's remaining rows; a priority must reference a skill the user
		// still holds.
		if err := tx.Model(&models.SkillAssignment{}).
			Where("user_id = ? AND learn_priority_skill_id = ?", user.ID, skill.ID).
			Update("learn_priority_skill_id", nil).Error; err != nil {
			return err
		}
		return tx.Model(&models.SkillAssignment{}).
			Where("user_id = ? AND teach_priority_skill_id = ?", user.ID, skill.ID).
			Update("teach_priority_skill_id", nil).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill is not in your list"})
		return
	}
	if err != nil {
		logger.L().Errorw("failed to remove skill", "username", username, "skill", skillName, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove skill"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Skill removed"})
}

// UpdatePrioritySkill godoc
// @Summary      Set a priority skill
// @Description  Points the user's learn or teach priority (chosen by isToLearn) at the named skill. The skill must already be in the user's assignment set.
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        input body PriorityInput true "Priority Info"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Unknown user/skill or skill not assigned"
// @Failure      500  {object}  ErrorResponse
// @Router       /update-priority-skill [put]
func UpdatePrioritySkill(c *gin.Context) {
	var input PriorityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Skill == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A 'skill' field is required"})
		return
	}

	user, ok := findUserByUsername(c, input.User)
	if !ok {
		return
	}
	skill, ok := findSkillByName(c, input.Skill)
	if !ok {
		return
	}

	// The priority pointer must reference a skill in the user's own set.
	var assignment models.SkillAssignment
	if err := database.DB.Where("user_id = ? AND skill_id = ?", user.ID, skill.ID).First(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Skill is not in your list"})
			return
		}
		logger.L().Errorw("failed to look up assignment", "username", input.User, "skill", input.Skill, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update priority skill"})
		return
	}

	result := database.DB.Model(&models.SkillAssignment{}).
		Where("user_id = ?", user.ID).
		Update(priorityColumn(*input.IsToLearn), skill.ID)
	if result.Error != nil {
		logger.L().Errorw("failed to update priority skill", "username", input.User, "skill", input.Skill, "error", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update priority skill"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Priority skill updated"})
}

// UnprioritizeSkill godoc
// @Summary      Clear a priority skill
// @Description  Nulls the user's learn or teach priority (chosen by isToLearn) on every assignment row; the rows are otherwise left intact.
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        input body PriorityInput true "Priority Info (skill is ignored)"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Unknown user or no assignment rows"
// @Failure      500  {object}  ErrorResponse
// @Router       /unprioritize-skill [delete]
func UnprioritizeSkill(c *gin.Context) {
	var input PriorityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := findUserByUsername(c, input.User)
	if !ok {
		return
	}

	result := database.DB.Model(&models.SkillAssignment{}).
		Where("user_id = ?", user.ID).
		Update(priorityColumn(*input.IsToLearn), nil)
	if result.Error != nil {
		logger.L().Errorw("failed to clear priority skill", "username", input.User, "error", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear priority skill"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No skills to unprioritize"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Priority skill cleared"})
}

// priorityColumn picks the assignment column a priority operation targets.
// The name is a compile-time constant, never client input; values are always
// bound as parameters.
func priorityColumn(isToLearn bool) string {
	if isToLearn {
		return "learn_priority_skill_id"
	}
	return "teach_priority_skill_id"
}
