package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health pings postgres and redis and reports per-dependency status.
// Returns 503 when either backend is unreachable so the orchestrator can
// restart the pod.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		estadoDB := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			estadoDB = "error"
		}

		estadoRedis := "connected"
		if rdb.Ping(ctx).Err() != nil {
			estadoRedis = "error"
		}

		status := http.StatusOK
		if estadoDB != "connected" || estadoRedis != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":    status == http.StatusOK,
			"db":    estadoDB,
			"redis": estadoRedis,
		})
	}
}
