package main

import (
	"log"
	"net/http"

	"skillswap/backend/internal/auth"
	"skillswap/backend/internal/config"
	"skillswap/backend/internal/database"
	"skillswap/backend/internal/handler"
	"skillswap/backend/internal/logger"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "skillswap/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           SkillSwap API
// @version         1.0
// @description     Backend for the SkillSwap skill-exchange platform.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init(config.AppConfig.LogFile)

	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	// Seed the skill taxonomy (idempotent)
	if err := database.Seed(database.DB); err != nil {
		log.Fatalf("Failed to seed skill catalog: %v", err)
	}

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Auth routes
	router.POST("/register", handler.RegisterUser)
	router.POST("/signin", handler.SigninUser)
	router.POST("/signout", handler.SignoutUser)

	// Skill catalog and assignment routes
	router.GET("/unselected-skills", handler.GetUnselectedSkills)
	router.POST("/add-skill", handler.AddSkill)
	router.DELETE("/remove-skill", handler.RemoveSkill)
	router.PUT("/update-priority-skill", handler.UpdatePrioritySkill)
	router.DELETE("/unprioritize-skill", handler.UnprioritizeSkill)

	// Match request routes
	router.POST("/send-request", handler.SendRequest)
	router.DELETE("/remove-all-match-requests", handler.RemoveAllMatchRequests)

	// Profile edit is public for API compatibility with the client
	router.POST("/edit-profile", handler.EditProfile)

	// Protected routes
	protected := router.Group("")
	protected.Use(auth.AuthMiddleware())
	{
		protected.GET("/profile", handler.GetProfile)
		protected.GET("/fetch-requests", handler.FetchRequests)
		protected.POST("/unmatch", handler.Unmatch)
	}

	logger.L().Infow("server starting", "address", config.AppConfig.ServerAddress)
	log.Fatal(router.Run(config.AppConfig.ServerAddress))
}
