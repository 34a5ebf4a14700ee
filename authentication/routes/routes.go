package routes

import (
	"github.com/gofiber/fiber/v2"

	authControllers "github.com/Maruaruhe/swgameweb/authentication/controllers"
	"github.com/Maruaruhe/swgameweb/authentication/middleware"
	"github.com/Maruaruhe/swgameweb/authentication/token"
	mainControllers "github.com/Maruaruhe/swgameweb/controllers"
)

func SetupRoutes(app *fiber.App, auth *authControllers.AuthController, scores *mainControllers.ScoreController, tokens *token.Service) {
	app.Get("/", mainControllers.Hello)

	app.Post("/users/new", auth.Register)
	app.Post("/users/login", auth.Login)

	// Protect routes with middleware
	app.Get("/scores", middleware.JwtAuthMiddleware(tokens), scores.GetScores)
	app.Post("/scores", middleware.JwtAuthMiddleware(tokens), scores.PostScore)
}
