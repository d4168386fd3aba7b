package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"promisewatch-be/repositories"
)

type StatsController struct {
	stats *repositories.StatsRepository
}

func NewStatsController(stats *repositories.StatsRepository) *StatsController {
	return &StatsController{stats: stats}
}

// Get answers 503 when the summary is unavailable, never a zeroed summary.
func (sc *StatsController) Get(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	stats, err := sc.stats.Stats(ctx)
	if err != nil || stats == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Statistics unavailable"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
