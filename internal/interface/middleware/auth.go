package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/carhub-dev/carhub-api/internal/application"
	"github.com/carhub-dev/carhub-api/pkg/helpers"
	"github.com/carhub-dev/carhub-api/pkg/response"
)

// Auth validates the bearer token and resolves the caller's account. It
// sets userID and userEmail in the Gin context on success; mutating
// listing handlers compare userEmail against the record owner.
func Auth(accounts *application.AccountService, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing bearer token", nil)
			return
		}
		claims, err := jwt.ParseToken(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid token", nil)
			return
		}
		u, err := accounts.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "unknown account", nil)
			return
		}
		c.Set("userID", u.ID)
		c.Set("userEmail", u.Email)
		c.Next()
	}
}
