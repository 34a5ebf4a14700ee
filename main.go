package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	authControllers "github.com/Maruaruhe/swgameweb/authentication/controllers"
	"github.com/Maruaruhe/swgameweb/authentication/hashing"
	"github.com/Maruaruhe/swgameweb/authentication/routes"
	"github.com/Maruaruhe/swgameweb/authentication/token"
	"github.com/Maruaruhe/swgameweb/controllers"
	"github.com/Maruaruhe/swgameweb/database"
	"github.com/Maruaruhe/swgameweb/internal/config"
	"github.com/Maruaruhe/swgameweb/repositories"
)

// How often to refresh the leaderboard cache from PostgreSQL
const scoreCacheUpdateInterval = 15 * time.Second

// This function runs in the background to keep the leaderboard cache fresh.
func updateScoreCache(scores *controllers.ScoreController) {
	ticker := time.NewTicker(scoreCacheUpdateInterval)
	defer ticker.Stop()

	for {
		<-ticker.C // Wait for the ticker to fire

		if err := scores.RefreshCache(); err != nil {
			log.Printf("Error refreshing score cache: %v", err)
		}
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Initialize the database connection on startup.
	database.Connect(cfg)

	database.ConnectRedis(cfg)

	hasher := hashing.NewHasher(cfg.Pepper)
	tokens := token.NewService(cfg.JWTSecret, token.DefaultValidity)

	userStore := repositories.NewUserStore(database.DB)
	scoreStore := repositories.NewScoreStore(database.DB)

	authController := authControllers.NewAuthController(userStore, hasher, tokens)
	scoreController := controllers.NewScoreController(scoreStore)

	go updateScoreCache(scoreController)

	app := fiber.New()

	routes.SetupRoutes(app, authController, scoreController, tokens)

	log.Printf("Starting server on port %s...", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
