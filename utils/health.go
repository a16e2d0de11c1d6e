package utils

import (
	"context"
	"sync"
	"time"

	"hudumahub/config"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus reports reachability of each backing service by name: the
// Mongo cluster and the three Redis databases (auth cache, AI decision
// cache, task queue).
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	AuthCache bool      `json:"authCache"`
	AICache   bool      `json:"aiCache"`
	TaskQueue bool      `json:"taskQueue"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings each backing service once a minute and keeps an
// in-memory snapshot for the health endpoint. The task queue lives in its
// own Redis DB managed by asynq, so the monitor opens a dedicated client
// for it.
func StartHealthMonitor(mongoClient *mongo.Client) {
	taskQueueClient := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	})

	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

			snapshot := HealthStatus{
				Mongo:     mongoClient.Ping(ctx, nil) == nil,
				AuthCache: pingRedis(ctx, GetAuthCacheClient()),
				AICache:   pingRedis(ctx, GetAICacheClient()),
				TaskQueue: pingRedis(ctx, taskQueueClient),
				CheckedAt: time.Now(),
			}
			cancel()

			healthMu.Lock()
			currentHealth = snapshot
			healthMu.Unlock()
		}
	}()
}

func pingRedis(ctx context.Context, client *redis.Client) bool {
	return client.Ping(ctx).Err() == nil
}
