package handler

import (
	"net/http"
	"time"

	"gamereviews/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// LoginInput defines the structure for admin login.
type LoginInput struct {
	Password string `json:"password" binding:"required" example:"password123"`
}

// TokenResponse carries an issued token.
type TokenResponse struct {
	Token string `json:"token"`
}

// Login godoc
// @Summary      Log in as admin
// @Description  Exchanges the admin password for a bearer token accepted by the GraphQL endpoint.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  TokenResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      503  {object}  ErrorResponse "Login is not configured"
// @Router       /api/v1/auth/login [post]
func Login(passwordHash, secret string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if passwordHash == "" || secret == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Login is not configured"})
			return
		}

		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(input.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		token, err := jwt.GenerateToken("admin", secret, ttl)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, TokenResponse{Token: token})
	}
}
