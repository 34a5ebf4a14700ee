package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Maruaruhe/swgameweb/authentication/hashing"
	"github.com/Maruaruhe/swgameweb/authentication/token"
	"github.com/Maruaruhe/swgameweb/domain"
	"github.com/Maruaruhe/swgameweb/models"
	"github.com/Maruaruhe/swgameweb/repositories"
)

// AuthController handles registration and login.
type AuthController struct {
	Users  repositories.UserStore
	Hasher *hashing.Hasher
	Tokens *token.Service
}

func NewAuthController(users repositories.UserStore, hasher *hashing.Hasher, tokens *token.Service) *AuthController {
	return &AuthController{Users: users, Hasher: hasher, Tokens: tokens}
}

type credentialsRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Register handles POST /users/new
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(domain.ErrorResponse{
			Message: "Failed to parse request body",
		})
	}

	if req.Name == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(domain.ErrorResponse{
			Message: "Username and password are required.",
		})
	}

	// Check if the name is already taken
	if _, err := ac.Users.FindByName(req.Name); err == nil {
		return c.Status(fiber.StatusConflict).JSON(domain.ErrorResponse{
			Message: "User already exists.",
		})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("User Registration Error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(domain.ErrorResponse{
			Message: "User registration failed due to a server error.",
		})
	}

	salt, err := hashing.GenerateSalt()
	if err != nil {
		log.Println("User Registration Error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(domain.ErrorResponse{
			Message: "User registration failed due to a server error.",
		})
	}

	user := models.User{
		Name:         req.Name,
		PasswordHash: ac.Hasher.Hash(req.Password, salt),
		Salt:         salt,
	}

	if err := ac.Users.Create(&user); err != nil {
		log.Println("User Registration Error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(domain.ErrorResponse{
			Message: "User registration failed due to a server error.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(domain.RegisterResponse{
		ID:      user.ID,
		Name:    user.Name,
		Message: "User created successfully.",
	})
}

// Login handles POST /users/login
//
// Unknown name and wrong password are deliberately indistinguishable to the
// client: both produce the same 401 body.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(domain.ErrorResponse{
			Message: "Failed to parse request body",
		})
	}

	if req.Name == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(domain.ErrorResponse{
			Message: "Username and password are required.",
		})
	}

	user, err := ac.Users.FindByName(req.Name)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("Login Error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(domain.ErrorResponse{
				Message: "Login failed due to a server error.",
			})
		}
		return c.Status(fiber.StatusUnauthorized).JSON(domain.ErrorResponse{
			Message: "Invalid credentials.",
		})
	}

	if !ac.Hasher.Verify(req.Password, user.Salt, user.PasswordHash) {
		return c.Status(fiber.StatusUnauthorized).JSON(domain.ErrorResponse{
			Message: "Invalid credentials.",
		})
	}

	t, err := ac.Tokens.Issue(user.ID, user.Name)
	if err != nil {
		log.Println("Error generating token:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(domain.ErrorResponse{
			Message: "Failed to generate token",
		})
	}

	return c.Status(fiber.StatusOK).JSON(domain.LoginResponse{
		LoginStatus: "success",
		Token:       t,
	})
}
