package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"skillswap/backend/internal/auth"
	"skillswap/backend/internal/config"
	"skillswap/backend/internal/database"
	"skillswap/backend/internal/handler"
	"skillswap/backend/internal/models"
	"skillswap/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// setupTestDB points the package-global DB at a fresh in-memory sqlite store
// and installs a test config.
func setupTestDB(t *testing.T) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{
		JWTSecret: "test-secret",
		UploadDir: t.TempDir(),
	}

	dsn := fmt.Sprintf("file:handler_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	database.DB = db
}

// newTestRouter mirrors the route table served by cmd/server.
func newTestRouter() *gin.Engine {
	router := gin.New()

	router.POST("/register", handler.RegisterUser)
	router.POST("/signin", handler.SigninUser)
	router.POST("/signout", handler.SignoutUser)

	router.GET("/unselected-skills", handler.GetUnselectedSkills)
	router.POST("/add-skill", handler.AddSkill)
	router.DELETE("/remove-skill", handler.RemoveSkill)
	router.PUT("/update-priority-skill", handler.UpdatePrioritySkill)
	router.DELETE("/unprioritize-skill", handler.UnprioritizeSkill)

	router.POST("/send-request", handler.SendRequest)
	router.DELETE("/remove-all-match-requests", handler.RemoveAllMatchRequests)

	router.POST("/edit-profile", handler.EditProfile)

	protected := router.Group("")
	protected.Use(auth.AuthMiddleware())
	{
		protected.GET("/profile", handler.GetProfile)
		protected.GET("/fetch-requests", handler.FetchRequests)
		protected.POST("/unmatch", handler.Unmatch)
	}

	return router
}

// createTestUser inserts a user directly and fails the test on error.
func createTestUser(t *testing.T, username, email string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("pw12345"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}
	user := models.User{Username: username, Email: email, PasswordHash: string(hash)}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user %q: %v", username, err)
	}
	return user
}

// createTestSkill inserts a skill under a category and fails the test on error.
func createTestSkill(t *testing.T, categoryName, skillName string) models.Skill {
	t.Helper()
	var category models.Category
	if err := database.DB.Where(models.Category{Name: categoryName}).FirstOrCreate(&category).Error; err != nil {
		t.Fatalf("failed to create test category %q: %v", categoryName, err)
	}
	var skill models.Skill
	if err := database.DB.Where(models.Skill{Name: skillName}).FirstOrCreate(&skill).Error; err != nil {
		t.Fatalf("failed to create test skill %q: %v", skillName, err)
	}
	if err := database.DB.Model(&category).Association("Skills").Append(&skill); err != nil {
		t.Fatalf("failed to link skill %q to category %q: %v", skillName, categoryName, err)
	}
	return skill
}

// tokenFor issues a bearer token for a username.
func tokenFor(t *testing.T, username string) string {
	t.Helper()
	token, err := jwt.GenerateToken(username)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

// perform sends a JSON request through the router and records the response.
func perform(router *gin.Engine, method, target, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// decodeBody unmarshals a recorded JSON response body.
func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response body %q: %v", rr.Body.String(), err)
	}
	return out
}
