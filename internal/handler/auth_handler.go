package handler

import (
	"errors"
	"net/http"
	"time"

	"skillswap/backend/internal/database"
	"skillswap/backend/internal/logger"
	"skillswap/backend/internal/models"
	"skillswap/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `json:"password" binding:"required,min=5" example:"pw12345"`
}

// SigninInput defines the structure for user sign-in.
type SigninInput struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"pw12345"`
}

// UserResponse defines the public shape of a user record.
type UserResponse struct {
	ID             uint      `json:"id" example:"1"`
	Username       string    `json:"username" example:"alice"`
	Email          string    `json:"email" example:"alice@example.com"`
	ProfilePicture string    `json:"profilePicture"`
	PhoneNumber    string    `json:"phoneNumber"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"createdAt"`
}

func newUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		ProfilePicture: user.ProfilePicture,
		PhoneNumber:    user.PhoneNumber,
		Description:    user.Description,
		CreatedAt:      user.CreatedAt,
	}
}

// endregion

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Creates a new account and returns an authentication token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  map[string]interface{} "{"token": "...", "user": {...}}"
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  FieldErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /register [post]
func RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Fast-path duplicate check so the client learns which field collides.
	// The unique constraints remain the authoritative conflict signal below.
	if newErrors := duplicateFieldErrors(input.Username, input.Email); len(newErrors) > 0 {
		c.JSON(http.StatusConflict, gin.H{"newErrors": newErrors})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.L().Errorw("failed to hash password", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	user := models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race with a concurrent registration; re-check the
			// fields so the error names the one that collided.
			newErrors := duplicateFieldErrors(input.Username, input.Email)
			if len(newErrors) == 0 {
				newErrors = gin.H{"username": "Username already exists"}
			}
			c.JSON(http.StatusConflict, gin.H{"newErrors": newErrors})
			return
		}
		logger.L().Errorw("failed to create user", "username", input.Username, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := jwt.GenerateToken(user.Username)
	if err != nil {
		logger.L().Errorw("failed to generate token", "username", user.Username, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": newUserResponse(user)})
}

// SigninUser godoc
// @Summary      Sign in a user
// @Description  Authenticates a user and returns a token plus the user record. Unknown username and wrong password are reported as separate field errors.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body SigninInput true "Sign-in Info"
// @Success      200  {object}  map[string]interface{} "{"token": "...", "user": {...}}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  FieldErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /signin [post]
func SigninUser(c *gin.Context) {
	var input SigninInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"newErrors": gin.H{"username": "User does not exist"}})
			return
		}
		logger.L().Errorw("failed to look up user", "username", input.Username, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"newErrors": gin.H{"password": "Incorrect password"}})
		return
	}

	token, err := jwt.GenerateToken(user.Username)
	if err != nil {
		logger.L().Errorw("failed to generate token", "username", user.Username, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": newUserResponse(user)})
}

// duplicateFieldErrors reports which of the unique user fields are already
// taken, keyed the way the client renders them.
func duplicateFieldErrors(username, email string) gin.H {
	newErrors := gin.H{}
	var existing models.User
	if err := database.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		newErrors["username"] = "Username already exists"
	}
	if err := database.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		newErrors["email"] = "Email already exists"
	}
	return newErrors
}

// SignoutUser godoc
// @Summary      Sign out
// @Description  Stateless no-op; tokens are short-lived and carry no server-side session.
// @Tags         auth
// @Success      204
// @Router       /signout [post]
func SignoutUser(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
