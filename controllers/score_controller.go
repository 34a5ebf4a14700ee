package controllers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Maruaruhe/swgameweb/authentication/middleware"
	"github.com/Maruaruhe/swgameweb/authentication/token"
	"github.com/Maruaruhe/swgameweb/database"
	"github.com/Maruaruhe/swgameweb/domain"
	"github.com/Maruaruhe/swgameweb/models"
	"github.com/Maruaruhe/swgameweb/repositories"
)

// The Redis key for the cached leaderboard
const topScoresCacheKey = "cache:top_scores"

// How many entries the leaderboard returns
const leaderboardSize = 5

const cacheTTL = 30 * time.Second

// ScoreController handles leaderboard reads and score submissions.
type ScoreController struct {
	Scores repositories.ScoreStore
}

func NewScoreController(scores repositories.ScoreStore) *ScoreController {
	return &ScoreController{Scores: scores}
}

type scoreRequest struct {
	// Pointer so a missing field is distinguishable from zero.
	Score *float64 `json:"score"`
}

// GetScores handles GET /scores. It serves the cached leaderboard when Redis
// holds one, falling back to the database and repopulating the cache.
func (sc *ScoreController) GetScores(c *fiber.Ctx) error {
	if database.Rdb != nil {
		cached, err := database.Rdb.Get(database.Ctx, topScoresCacheKey).Bytes()
		if err == nil {
			return c.Status(fiber.StatusOK).Type("json").Send(cached)
		}
	}

	data, err := sc.leaderboard()
	if err != nil {
		log.Println("Get Scores Error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(domain.ErrorResponse{
			Message: "Failed to retrieve scores.",
		})
	}

	if database.Rdb != nil {
		if err := database.Rdb.Set(database.Ctx, topScoresCacheKey, data, cacheTTL).Err(); err != nil {
			log.Printf("Error setting score cache in Redis: %v", err)
		}
	}

	return c.Status(fiber.StatusOK).Type("json").Send(data)
}

// PostScore handles POST /scores. The score is tied to the identity the auth
// middleware verified; fractional input is truncated.
func (sc *ScoreController) PostScore(c *fiber.Ctx) error {
	var req scoreRequest
	if err := c.BodyParser(&req); err != nil || req.Score == nil {
		return c.Status(fiber.StatusBadRequest).JSON(domain.ErrorResponse{
			Message: "Score must be a number.",
		})
	}

	value := int(*req.Score)
	if value < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(domain.ErrorResponse{
			Message: "Score must not be negative.",
		})
	}

	claims, ok := c.Locals(middleware.LocalsUserKey).(*token.Claims)
	if !ok || claims.ID == 0 {
		return c.Status(fiber.StatusForbidden).JSON(domain.ErrorResponse{
			Message: "User ID not found in token.",
		})
	}

	score := models.Score{
		Score:    value,
		AuthorID: claims.ID,
	}

	if err := sc.Scores.Create(&score); err != nil {
		log.Println("Post Score Error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(domain.ErrorResponse{
			Message: "Failed to save score.",
		})
	}

	// Drop the cached leaderboard so the next read sees this score.
	if database.Rdb != nil {
		if err := database.Rdb.Del(database.Ctx, topScoresCacheKey).Err(); err != nil {
			log.Printf("Error invalidating score cache in Redis: %v", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":        score.ID,
		"score":     score.Score,
		"authorId":  score.AuthorID,
		"createdAt": score.CreatedAt,
	})
}

// RefreshCache recomputes the leaderboard and stores it in Redis. The
// background refresher in main calls this on a ticker.
func (sc *ScoreController) RefreshCache() error {
	data, err := sc.leaderboard()
	if err != nil {
		return err
	}
	return database.Rdb.Set(database.Ctx, topScoresCacheKey, data, cacheTTL).Err()
}

func (sc *ScoreController) leaderboard() ([]byte, error) {
	scores, err := sc.Scores.Top(leaderboardSize)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.ScoreEntry, 0, len(scores))
	for _, s := range scores {
		entries = append(entries, domain.ScoreEntry{
			ID:     s.ID,
			Score:  s.Score,
			Author: domain.ScoreAuthor{Name: s.Author.Name},
		})
	}

	return json.Marshal(entries)
}
