package cache

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"verilearn.io/infrastructure/logger"
)

var Client *redis.Client

func ConnectToCache() {
	Client = redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
		PoolSize: 10,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Client.Ping(ctx).Err(); err != nil {
		logger.Error("could not reach redis", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		panic(err)
	}
	logger.Info("connected to redis successfully")
}
