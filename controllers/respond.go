package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"promisewatch-be/models"
)

const requestTimeout = 10 * time.Second

func withTimeout(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

// list answers 200 even when the store failed so clients can show an empty
// state; the error field tells them why it is empty.
func list[T any](c *gin.Context, key string, items []T, err error) {
	body := gin.H{key: items, "count": len(items)}
	if err != nil {
		body["error"] = "data temporarily unavailable"
	}
	c.JSON(http.StatusOK, body)
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func queryInt(c *gin.Context, name string, fallback int) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}
	return n
}
