package database

import (
	"context"
	"log"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/Maruaruhe/swgameweb/internal/config"
)

var Rdb *redis.Client
var Ctx = context.Background()

func ConnectRedis(cfg *config.Config) {
	redisDB, err := strconv.Atoi(cfg.RedisDB)
	if err != nil || cfg.RedisDB == "" {
		redisDB = 0
	}

	Rdb = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       redisDB,
	})

	_, err = Rdb.Ping(Ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	log.Println("Redis connection successfully opened.")
}
