package handler

import (
	"net/http"

	"skillswap/backend/internal/auth"
	"skillswap/backend/internal/database"
	"skillswap/backend/internal/logger"
	"skillswap/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// UnmatchInput defines the structure for removing a confirmed match.
type UnmatchInput struct {
	SelectedUser string `json:"selectedUser" binding:"required" example:"bob"`
	// User is accepted for API compatibility; it must match the token
	// identity when present.
	User string `json:"user" example:"alice"`
}

// Unmatch godoc
// @Summary      Remove a confirmed match
// @Description  Deletes every match row for the unordered pair of the caller and the selected user, in one statement covering both orderings.
// @Tags         matches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body UnmatchInput true "Unmatch Info"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Body user does not match the token identity"
// @Failure      404  {object}  ErrorResponse "No match exists for the pair"
// @Failure      500  {object}  ErrorResponse
// @Router       /unmatch [post]
func Unmatch(c *gin.Context) {
	var input UnmatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity := c.GetString(auth.UsernameKey)
	if input.User != "" && input.User != identity {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot unmatch on behalf of another user"})
		return
	}

	if input.SelectedUser == identity {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot unmatch yourself"})
		return
	}

	actor, ok := findUserByUsername(c, identity)
	if !ok {
		return
	}
	other, ok := findUserByUsername(c, input.SelectedUser)
	if !ok {
		return
	}

	// One statement removes both orderings of the pair, so the relation can
	// never be left half-deleted. Its own affected-row count is trusted; no
	// verification re-query.
	result := database.DB.
		Where("(user_id = ? AND match_id = ?) OR (user_id = ? AND match_id = ?)",
			actor.ID, other.ID, other.ID, actor.ID).
		Delete(&models.Match{})
	if result.Error != nil {
		logger.L().Errorw("failed to unmatch", "user", identity, "selectedUser", input.SelectedUser, "error", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unmatch"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Unmatched successfully"})
}
