package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"promisewatch-be/middlewares"
	"promisewatch-be/repositories"
	authUtils "promisewatch-be/utils"
)

type AuthController struct {
	users        *repositories.UserRepository
	secret       string
	secureCookie bool
	log          zerolog.Logger
}

func NewAuthController(users *repositories.UserRepository, secret string, secureCookie bool, log zerolog.Logger) *AuthController {
	return &AuthController{users: users, secret: secret, secureCookie: secureCookie, log: log}
}

// SignInAnonymously registers a new anonymous uid and returns its token,
// also set as the auth_token cookie.
func (ac *AuthController) SignInAnonymously(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	user, err := ac.users.CreateAnonymous(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	token, err := authUtils.GenerateToken(ac.secret, user.UID, time.Now())
	if err != nil {
		ac.log.Error().Err(err).Msg("Error generating token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middlewares.AuthCookie,
		Value:    token,
		MaxAge:   int(authUtils.SessionTTL.Seconds()),
		Path:     "/",
		Secure:   ac.secureCookie,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})

	c.JSON(http.StatusCreated, gin.H{
		"uid":       user.UID,
		"token":     token,
		"createdAt": user.CreatedAt,
	})
}

// GetMe returns the user behind the session token.
func (ac *AuthController) GetMe(c *gin.Context) {
	uid, ok := middlewares.UID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := withTimeout(c)
	defer cancel()

	user, err := ac.users.ByUID(ctx, uid)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}
