package handler

import (
	"net/http"

	"gigflow/backend/internal/api/middleware"
	"gigflow/backend/internal/auth"
	"gigflow/backend/internal/config"
	"gigflow/backend/internal/models"

	log "github.com/sirupsen/logrus"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Skills   []string `json:"skills"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// setTokenCookie mirrors the bearer token into a cookie so browser clients
// stay logged in without storing the token themselves.
func setTokenCookie(c *gin.Context, token string) {
	c.SetCookie(config.TokenCookie, token, int(config.TokenTTL.Seconds()), "/", "", false, true)
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request payload"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), config.BcryptCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create account"})
		return
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Skills:       pq.StringArray(req.Skills),
	}
	if err := h.Store.CreateUser(user); err != nil {
		abortWithError(c, err)
		return
	}

	token, err := auth.Sign(user.ID)
	if err != nil {
		log.WithFields(log.Fields{"user_id": user.ID, "error": err}).Error("auth: token signing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create token"})
		return
	}

	setTokenCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user.Public()})
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request payload"})
		return
	}

	user, err := h.Store.GetUserByEmail(req.Email)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid email or password"})
		return
	}

	token, err := auth.Sign(user.ID)
	if err != nil {
		log.WithFields(log.Fields{"user_id": user.ID, "error": err}).Error("auth: token signing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create token"})
		return
	}

	setTokenCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user.Public()})
}

// Logout handles POST /api/auth/logout by expiring the cookie. Bearer
// tokens held by API clients simply age out.
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(config.TokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me handles GET /api/auth/me, returning the account behind the token.
func (h *Handler) Me(c *gin.Context) {
	user, err := h.Store.GetUserByID(middleware.UserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}
