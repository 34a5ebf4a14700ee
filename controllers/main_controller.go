package controllers

import (
	"github.com/gofiber/fiber/v2"
)

// Hello handles GET / with a short listing of the available endpoints.
func Hello(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Welcome to the Stopwatch Game API!",
		"endpoints": fiber.Map{
			"register":  "POST /users/new",
			"login":     "POST /users/login",
			"getScores": "GET /scores (Auth Required)",
			"postScore": "POST /scores (Auth Required)",
		},
	})
}
