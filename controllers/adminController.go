package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"promisewatch-be/economics"
	"promisewatch-be/models"
	"promisewatch-be/repositories"
)

// Seeding writes many batches, so admin calls get more time than reads.
const adminTimeout = 2 * time.Minute

type AdminController struct {
	promises   *repositories.PromiseRepository
	aggregator *economics.Aggregator
	history    *repositories.IndicatorHistoryRepository
}

func NewAdminController(promises *repositories.PromiseRepository, aggregator *economics.Aggregator, history *repositories.IndicatorHistoryRepository) *AdminController {
	return &AdminController{promises: promises, aggregator: aggregator, history: history}
}

func adminContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), adminTimeout)
}

// Seed seeds every manifesto, or one when the body names party and year.
func (ac *AdminController) Seed(c *gin.Context) {
	var input struct {
		Party string `json:"party"`
		Year  int    `json:"year"`
	}
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx, cancel := adminContext(c)
	defer cancel()

	var (
		count int
		err   error
	)
	if input.Party != "" || input.Year != 0 {
		count, err = ac.promises.SeedSubset(ctx, models.Party(strings.ToUpper(input.Party)), input.Year)
	} else {
		count, err = ac.promises.SeedAll(ctx)
	}
	batchResult(c, count, err)
}

func (ac *AdminController) Clear(c *gin.Context) {
	ctx, cancel := adminContext(c)
	defer cancel()

	count, err := ac.promises.ClearAll(ctx)
	batchResult(c, count, err)
}

func (ac *AdminController) Reseed(c *gin.Context) {
	ctx, cancel := adminContext(c)
	defer cancel()

	count, err := ac.promises.Reseed(ctx)
	batchResult(c, count, err)
}

// Snapshot saves the current value of every indicator to history.
func (ac *AdminController) Snapshot(c *gin.Context) {
	ctx, cancel := adminContext(c)
	defer cancel()

	snap := ac.aggregator.All(ctx)
	count, err := ac.history.SaveAll(ctx, snap.Records())
	batchResult(c, count, err)
}

// batchResult reports the partial count alongside any error, since
// batches committed before a failure stay committed.
func batchResult(c *gin.Context, count int, err error) {
	if err != nil {
		c.JSON(statusFor(err), gin.H{"count": count, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
