package handler

import (
	"net/http"
	"sort"

	"skillswap/backend/internal/database"
	"skillswap/backend/internal/logger"
	"skillswap/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// GetUnselectedSkills godoc
// @Summary      List a user's unselected skills
// @Description  Returns the catalog grouped by category, excluding every skill already in the user's assignment set regardless of learn/teach role. Skills are sorted alphabetically within each category.
// @Tags         skills
// @Produce      json
// @Param        username  query     string  true  "Username"
// @Success      200  {object}  map[string][]string
// @Failure      404  {object}  ErrorResponse "Unknown user or nothing left to select"
// @Failure      500  {object}  ErrorResponse
// @Router       /unselected-skills [get]
func GetUnselectedSkills(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A 'username' query parameter is required"})
		return
	}

	user, ok := findUserByUsername(c, username)
	if !ok {
		return
	}

	var assignedIDs []uint
	if err := database.DB.Model(&models.SkillAssignment{}).
		Where("user_id = ?", user.ID).
		Pluck("skill_id", &assignedIDs).Error; err != nil {
		logger.L().Errorw("failed to load skill assignments", "username", username, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load skills"})
		return
	}

	assigned := make(map[uint]bool, len(assignedIDs))
	for _, id := range assignedIDs {
		assigned[id] = true
	}

	var categories []models.Category
	if err := database.DB.Preload("Skills").Find(&categories).Error; err != nil {
		logger.L().Errorw("failed to load skill catalog", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load skills"})
		return
	}

	// Map keys marshal in sorted order, so categories come out alphabetical.
	unselected := make(map[string][]string)
	for _, category := range categories {
		var names []string
		for _, skill := range category.Skills {
			if skill == nil || assigned[skill.ID] {
				continue
			}
			names = append(names, skill.Name)
		}
		if len(names) == 0 {
			continue
		}
		sort.Strings(names)
		unselected[category.Name] = names
	}

	if len(unselected) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No unselected skills found"})
		return
	}

	c.JSON(http.StatusOK, unselected)
}
