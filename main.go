package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Eklavvyaaaaa/CIVIX/ai"
	"github.com/Eklavvyaaaaa/CIVIX/config"
	"github.com/Eklavvyaaaaa/CIVIX/controllers"
	"github.com/Eklavvyaaaaa/CIVIX/routes"
	"github.com/Eklavvyaaaaa/CIVIX/store"
	"github.com/Eklavvyaaaaa/CIVIX/workflow"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	reports := store.New(store.SeedReports()...)

	var aiClient *ai.Client
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err := ai.NewClient(ctx, key, os.Getenv("GEMINI_MODEL"))
		cancel()
		if err != nil {
			log.Printf("Gemini client unavailable, AI features degraded: %v", err)
		} else {
			aiClient = client
			log.Println("Gemini client ready")
		}
	} else {
		log.Println("GEMINI_API_KEY not set; autofill and chat fall back to manual entry")
	}

	var classifier workflow.Classifier
	if aiClient != nil {
		classifier = aiClient
	}
	flow := workflow.New(reports, classifier)
	assistant := ai.NewAssistant(aiClient)

	if os.Getenv("REDIS_ADDRESS") != "" {
		if err := config.ConnectRedis(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		log.Println("Connected to Redis")
	}

	r := gin.Default()

	clientOrigin := os.Getenv("CLIENT_ORIGIN")
	if clientOrigin == "" {
		clientOrigin = "http://localhost:5173"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{clientOrigin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.ReportRoutes(r, controllers.NewReportController(reports))
	routes.DraftRoutes(r, controllers.NewDraftController(flow))
	routes.ChatRoutes(r, controllers.NewChatController(assistant))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
