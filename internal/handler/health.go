package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var startTime = time.Now()

// Health probes Postgres and Redis. The service keeps answering reads from
// the demo dataset while the store is down, so the payload distinguishes a
// live backend from a degraded one instead of reporting bare up/down.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbOK := false
		if sqlDB, err := db.DB(); err == nil && sqlDB.PingContext(ctx) == nil {
			dbOK = true
		}
		redisOK := rdb.Ping(ctx).Err() == nil

		mode := "live"
		status := http.StatusOK
		if !dbOK || !redisOK {
			mode = "degraded"
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":     status == http.StatusOK,
			"mode":   mode,
			"db":     probeStatus(dbOK),
			"redis":  probeStatus(redisOK),
			"uptime": time.Since(startTime).Round(time.Second).String(),
		})
	}
}

func probeStatus(ok bool) string {
	if ok {
		return "connected"
	}
	return "error"
}
