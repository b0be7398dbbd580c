package redis

import (
	"context"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"os"
	"strconv"
	"time"
)

// ICache caches generated insight text so the dashboard does not hit the
// reasoning service on every load. A cache failure is never fatal; callers
// fall through to the provider.
type ICache interface {
	SetInsight(ctx context.Context, key string, text string, expiration time.Duration) error
	GetInsight(ctx context.Context, key string) (string, bool, error)
}

type redisClient struct {
	client *redis.Client
}

func New() ICache {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func (r *redisClient) SetInsight(ctx context.Context, key string, text string, expiration time.Duration) error {
	if err := r.client.Set(ctx, key, text, expiration).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error caching insight for key %s: %v", key, err))
		return err
	}
	return nil
}

func (r *redisClient) GetInsight(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error reading cached insight for key %s: %v", key, err))
		return "", false, err
	}
	return val, true, nil
}
