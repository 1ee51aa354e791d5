package main

import (
	"log"
	"os"

	"github.com/botboss/botboss-api/internal/handlers"
	"github.com/botboss/botboss-api/internal/services"
	"github.com/botboss/botboss-api/internal/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// 2. Storage (flat JSON files under the data dir)
	fileStore, err := store.NewFileStore(dataDir)
	if err != nil {
		log.Fatal("Failed to initialize storage:", err)
	}

	// 3. Initialize Core Services (Dependencies)
	apiKey := os.Getenv("OPENAI_API_KEY")
	llmService := services.NewLLMService(apiKey)
	transcriptionService := services.NewTranscriptionService(apiKey)

	userService := services.NewUserService(fileStore)
	jobService := services.NewJobService(fileStore)
	applicationService := services.NewApplicationService(fileStore)
	interviewService := services.NewInterviewService(fileStore, llmService, transcriptionService)

	// 4. Initialize Handlers
	authHandler := handlers.NewAuthHandler(userService)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	interviewHandler := handlers.NewInterviewHandler(interviewService)

	// 5. Setup Router & CORS
	r := gin.Default()
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // For development only
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	// 6. Define Routes
	handlers.RegisterRoutes(r, authHandler, jobHandler, applicationHandler, interviewHandler)

	log.Printf("🚀 BotBoss API starting on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
