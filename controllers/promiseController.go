package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"promisewatch-be/economics"
	"promisewatch-be/models"
	"promisewatch-be/repositories"
)

type PromiseController struct {
	promises *repositories.PromiseRepository
	reports  *repositories.ReportRepository
	verifier *economics.Verifier
}

func NewPromiseController(promises *repositories.PromiseRepository, reports *repositories.ReportRepository, verifier *economics.Verifier) *PromiseController {
	return &PromiseController{promises: promises, reports: reports, verifier: verifier}
}

// GetAll lists promises, narrowed by at most one of the party, status,
// category or region query parameters.
func (pc *PromiseController) GetAll(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	var (
		promises []models.Promise
		err      error
	)
	switch {
	case c.Query("party") != "":
		promises, err = pc.promises.ByParty(ctx, models.Party(strings.ToUpper(c.Query("party"))))
	case c.Query("status") != "":
		promises, err = pc.promises.ByStatus(ctx, models.PromiseStatus(c.Query("status")))
	case c.Query("category") != "":
		promises, err = pc.promises.ByCategory(ctx, models.PromiseCategory(c.Query("category")))
	case c.Query("region") != "":
		promises, err = pc.promises.ByRegion(ctx, c.Query("region"))
	default:
		promises, err = pc.promises.All(ctx)
	}
	list(c, "promises", promises, err)
}

func (pc *PromiseController) GetFlagship(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	promises, err := pc.promises.Flagship(ctx)
	list(c, "promises", promises, err)
}

func (pc *PromiseController) Search(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("q"))
	if keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter q is required"})
		return
	}

	ctx, cancel := withTimeout(c)
	defer cancel()

	promises, err := pc.promises.Search(ctx, keyword)
	list(c, "promises", promises, err)
}

func (pc *PromiseController) GetByID(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	promise, err := pc.promises.ByID(ctx, c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Promise not available"})
		return
	}
	c.JSON(http.StatusOK, promise)
}

// GetVerification checks a promise against its related indicator. A null
// verification means no indicator relates to the promise.
func (pc *PromiseController) GetVerification(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	promise, err := pc.promises.ByID(ctx, c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Promise not available"})
		return
	}

	verification, ok := pc.verifier.Verify(ctx, promise)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"verification": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"verification": verification})
}

func (pc *PromiseController) GetReports(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	reports, err := pc.reports.ForPromise(ctx, c.Param("id"))
	list(c, "reports", reports, err)
}
