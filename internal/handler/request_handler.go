package handler

import (
	"errors"
	"net/http"

	"skillswap/backend/internal/auth"
	"skillswap/backend/internal/database"
	"skillswap/backend/internal/logger"
	"skillswap/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SendRequestInput defines the structure for sending a match request.
type SendRequestInput struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Receiver string `json:"receiver" binding:"required" example:"bob"`
}

// RequestsResponse lists the distinct usernames on the other side of a
// user's pending requests, split by direction.
type RequestsResponse struct {
	Sent     []string `json:"sent"`
	Received []string `json:"received"`
}

// SendRequest godoc
// @Summary      Send a match request
// @Description  Creates a directional pending request from the sender to the receiver. At most one pending request may exist per ordered pair.
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        input body SendRequestInput true "Request Info"
// @Success      201  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse "Self-request"
// @Failure      404  {object}  ErrorResponse "Unknown sender or receiver"
// @Failure      409  {object}  ErrorResponse "Request already pending"
// @Failure      500  {object}  ErrorResponse
// @Router       /send-request [post]
func SendRequest(c *gin.Context) {
	var input SendRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Username == input.Receiver {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot send a request to yourself"})
		return
	}

	sender, ok := findUserByUsername(c, input.Username)
	if !ok {
		return
	}
	receiver, ok := findUserByUsername(c, input.Receiver)
	if !ok {
		return
	}

	request := models.MatchRequest{SenderID: sender.ID, ReceiverID: receiver.ID}
	if err := database.DB.Create(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Request already pending"})
			return
		}
		logger.L().Errorw("failed to create match request", "sender", input.Username, "receiver", input.Receiver, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Request sent successfully"})
}

// FetchRequests godoc
// @Summary      List match requests
// @Description  Returns the distinct usernames of counterparts on the caller's sent and received pending requests. The 'user' parameter must match the token identity.
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        user  query     string  false  "Username (defaults to the token identity)"
// @Success      200  {object}  RequestsResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Parameter does not match the token identity"
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /fetch-requests [get]
func FetchRequests(c *gin.Context) {
	identity := c.GetString(auth.UsernameKey)

	// The acting user comes from the verified token, never from the query
	// alone; a mismatched parameter is rejected instead of obeyed.
	if param := c.Query("user"); param != "" && param != identity {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot fetch requests for another user"})
		return
	}

	user, ok := findUserByUsername(c, identity)
	if !ok {
		return
	}

	sent := make([]string, 0)
	if err := database.DB.Model(&models.MatchRequest{}).
		Joins("JOIN users ON users.id = match_requests.receiver_id").
		Where("match_requests.sender_id = ?", user.ID).
		Distinct().
		Pluck("users.username", &sent).Error; err != nil {
		logger.L().Errorw("failed to fetch sent requests", "username", identity, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
		return
	}

	received := make([]string, 0)
	if err := database.DB.Model(&models.MatchRequest{}).
		Joins("JOIN users ON users.id = match_requests.sender_id").
		Where("match_requests.receiver_id = ?", user.ID).
		Distinct().
		Pluck("users.username", &received).Error; err != nil {
		logger.L().Errorw("failed to fetch received requests", "username", identity, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
		return
	}

	c.JSON(http.StatusOK, RequestsResponse{Sent: sent, Received: received})
}

// RemoveAllMatchRequests godoc
// @Summary      Cancel all sent requests
// @Description  Deletes every pending request the user has sent. Requests where the user is the receiver are untouched.
// @Tags         requests
// @Produce      json
// @Param        username  query     string  true  "Username"
// @Success      200  {object}  map[string]interface{} "{"message": "...", "removed": n}"
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /remove-all-match-requests [delete]
func RemoveAllMatchRequests(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A 'username' query parameter is required"})
		return
	}

	user, ok := findUserByUsername(c, username)
	if !ok {
		return
	}

	result := database.DB.Where("sender_id = ?", user.ID).Delete(&models.MatchRequest{})
	if result.Error != nil {
		logger.L().Errorw("failed to remove match requests", "username", username, "error", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sent requests removed", "removed": result.RowsAffected})
}
