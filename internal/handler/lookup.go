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

// region --- Lookup helpers ---

// findUserByUsername resolves a username to its user row, writing the error
// response itself when the lookup fails. The bool reports success.
func findUserByUsername(c *gin.Context, username string) (models.User, bool) {
	var user models.User
	if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			logger.L().Errorw("failed to look up user", "username", username, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		}
		return models.User{}, false
	}
	return user, true
}

// findSkillByName resolves a skill name to its catalog row, writing the error
// response itself when the lookup fails.
func findSkillByName(c *gin.Context, name string) (models.Skill, bool) {
	var skill models.Skill
	if err := database.DB.Where("name = ?", name).First(&skill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		} else {
			logger.L().Errorw("failed to look up skill", "skill", name, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up skill"})
		}
		return models.Skill{}, false
	}
	return skill, true
}

// endregion
