package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/hoa-portal/api-go/config"
	"github.com/hoa-portal/api-go/routes"
	"github.com/hoa-portal/api-go/storage"
	"github.com/joho/godotenv"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize attachment storage
	storageConfig := config.GetStorageConfig()
	objects := storage.NewObjectStore(config.NewStorageClient(storageConfig), storageConfig)

	// Initialize speech transcription
	speech, err := config.NewSpeechConfig()
	if err != nil {
		log.Printf("Speech transcription disabled: %v", err)
	}

	// Create a new Gin router
	r := gin.Default()

	// Add logging middleware
	r.Use(gin.LoggerWithWriter(os.Stdout))

	// Initialize routes
	routes.SetupRoutes(r, db, objects, speech)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("Starting server on port %s", port)
	r.Run(":" + port)
}
