package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"promisewatch-be/middlewares"
	"promisewatch-be/models"
	"promisewatch-be/repositories"
)

type ReportController struct {
	reports *repositories.ReportRepository
}

func NewReportController(reports *repositories.ReportRepository) *ReportController {
	return &ReportController{reports: reports}
}

// Create submits a report for the authenticated uid.
func (rc *ReportController) Create(c *gin.Context) {
	uid, ok := middlewares.UID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "User not authenticated"})
		return
	}

	var input models.ReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	ctx, cancel := withTimeout(c)
	defer cancel()

	id, err := rc.reports.Submit(ctx, uid, input)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			msg := strings.TrimPrefix(err.Error(), models.ErrValidation.Error()+": ")
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to submit report"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": id})
}

func (rc *ReportController) GetRecent(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	reports, err := rc.reports.Recent(ctx, queryInt(c, "limit", repositories.DefaultRecentLimit))
	list(c, "reports", reports, err)
}
