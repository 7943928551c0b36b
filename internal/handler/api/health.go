package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"ramillete/internal/infra/cache"
)

type HealthHandler struct {
	pool  *pgxpool.Pool
	cache *cache.RecipientCache
}

func NewHealthHandler(pool *pgxpool.Pool, c *cache.RecipientCache) *HealthHandler {
	return &HealthHandler{pool: pool, cache: c}
}

// @Summary Health check
// @Description Check if the service and its backends are healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	code := http.StatusOK

	dbStatus := "ok"
	if err := h.pool.Ping(ctx); err != nil {
		dbStatus = "unavailable"
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	// A redis outage never takes the service down; reads fall through to
	// postgres.
	redisStatus := "disabled"
	if h.cache != nil {
		redisStatus = "ok"
		if err := h.cache.Ping(ctx); err != nil {
			redisStatus = "unavailable"
		}
	}

	c.JSON(code, gin.H{
		"status": status,
		"db":     dbStatus,
		"redis":  redisStatus,
	})
}
