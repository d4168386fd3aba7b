package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"promisewatch-be/economics"
	"promisewatch-be/models"
	"promisewatch-be/repositories"
)

type IndicatorController struct {
	aggregator *economics.Aggregator
	history    *repositories.IndicatorHistoryRepository
}

func NewIndicatorController(aggregator *economics.Aggregator, history *repositories.IndicatorHistoryRepository) *IndicatorController {
	return &IndicatorController{aggregator: aggregator, history: history}
}

// GetAll returns every indicator. It always answers 200.
func (ic *IndicatorController) GetAll(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	c.JSON(http.StatusOK, ic.aggregator.All(ctx))
}

// GetOne returns a single indicator record.
func (ic *IndicatorController) GetOne(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	rec, ok := ic.aggregator.One(ctx, models.Indicator(c.Param("indicator")))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown indicator"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GetHistory returns saved snapshots for one indicator, newest first.
func (ic *IndicatorController) GetHistory(c *gin.Context) {
	indicator := models.Indicator(c.Param("indicator"))
	if !indicator.Valid() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown indicator"})
		return
	}

	ctx, cancel := withTimeout(c)
	defer cancel()

	snaps, err := ic.history.History(ctx, indicator, queryInt(c, "limit", repositories.DefaultHistoryLimit))
	list(c, "history", snaps, err)
}
