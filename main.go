package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/caffeinepub/livspan-wellness-and-longevity-application/api"
	"github.com/caffeinepub/livspan-wellness-and-longevity-application/config"
	"github.com/caffeinepub/livspan-wellness-and-longevity-application/database"
	"github.com/caffeinepub/livspan-wellness-and-longevity-application/middleware"
	"github.com/caffeinepub/livspan-wellness-and-longevity-application/models"
	"github.com/caffeinepub/livspan-wellness-and-longevity-application/repository"
	"github.com/caffeinepub/livspan-wellness-and-longevity-application/services"
)

func main() {
	// Load application configuration
	config.LoadConfig()

	// Initialize database connection
	db, err := database.Init()
	if err != nil {
		log.Fatalf("FATAL: [Main] Failed to initialize database: %v", err)
	}

	// Auto-migrate database schema
	runMigrations(db)

	// Initialize Repositories
	profileRepo := repository.NewProfileRepository(db)
	routineRepo := repository.NewRoutineRepository(db)
	supplementRepo := repository.NewSupplementRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	log.Println("INFO: [Main] Repositories initialized.")

	// Initialize Services
	profileService := services.NewProfileService(profileRepo)
	tokenService := services.NewTokenService(tokenRepo)
	routineService := services.NewRoutineService(profileRepo, routineRepo, tokenService, config.AppConfig.RoutineRewardTokens)
	scoreService := services.NewScoreService(profileRepo, routineRepo)
	coachService := services.NewCoachService()
	log.Println("INFO: [Main] Services initialized.")

	// Initialize API Handler with all dependencies
	apiHandler := api.NewAPIHandler(
		profileService,
		routineService,
		scoreService,
		tokenService,
		coachService,
		supplementRepo,
		journalRepo,
		db,
	)
	log.Println("INFO: [Main] API Handler initialized.")

	// Create Gin engine
	r := gin.Default()
	r.SetTrustedProxies(nil)

	// Register middlewares
	r.Use(middleware.Logger())
	r.Use(middleware.Cors())
	log.Println("INFO: [Main] Middlewares registered.")

	// Register routes
	registerRoutes(r, apiHandler)
	log.Println("INFO: [Main] Routes registered.")

	// Start the server
	serverPort := ":" + config.AppConfig.Server.Port
	if config.AppConfig.Server.Port == "" {
		log.Println("WARN: [Main] Server port not configured, using default :8080.")
		serverPort = ":8080"
	}
	log.Printf("INFO: [Main] Starting server on port %s", serverPort)
	if err := r.Run(serverPort); err != nil {
		log.Fatalf("FATAL: [Main] Server failed to start: %v", err)
	}
}

func runMigrations(db *gorm.DB) {
	log.Println("INFO: [Main] Running database migrations...")
	err := db.AutoMigrate(
		&models.UserProfile{},
		&models.RoutineDay{},
		&models.SupplementEntry{},
		&models.JournalEntry{},
		&models.TokenTransaction{},
	)
	if err != nil {
		log.Fatalf("FATAL: [Main] Failed to auto-migrate database: %v", err)
	}
	log.Println("INFO: [Main] Database migration completed.")
}

func registerRoutes(r *gin.Engine, handler *api.APIHandler) {
	apiGroup := r.Group("/api")
	{
		profileGroup := apiGroup.Group("/profile")
		{
			profileGroup.GET("/:userID", handler.GetProfileHandler)
			profileGroup.PUT("", handler.SaveProfileHandler)
		}

		routineGroup := apiGroup.Group("/routine")
		{
			routineGroup.POST("/complete", handler.CompleteRoutineHandler)
			routineGroup.GET("/history/:userID", handler.GetRoutineHistoryHandler)
		}

		apiGroup.POST("/scores/preview", handler.PreviewScoresHandler)
		apiGroup.POST("/coach/briefing", handler.CoachBriefingHandler)

		supplementGroup := apiGroup.Group("/supplements")
		{
			supplementGroup.POST("", handler.CreateSupplementHandler)
			supplementGroup.GET("/:userID", handler.GetSupplementsHandler)
			supplementGroup.POST("/:id/taken", handler.MarkSupplementTakenHandler)
			supplementGroup.DELETE("/:id", handler.DeleteSupplementHandler)
		}

		journalGroup := apiGroup.Group("/journal")
		{
			journalGroup.POST("", handler.CreateJournalEntryHandler)
			journalGroup.GET("/:userID", handler.GetJournalEntriesHandler)
		}

		apiGroup.GET("/wallet/:userID", handler.GetWalletHandler)
	}
}
