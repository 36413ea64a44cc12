package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mkarpovs/accountd/internal/auth"
)

const claimsKey = "claims"

// authGuard extracts the bearer token from the Authorization header,
// validates it, and attaches the resulting claim to the request context.
// A missing or malformed header and every token-validation sub-kind all
// reject the call with the same 401; which sub-kind it was is logged, never
// surfaced.
func (s *Server) authGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		// Case-sensitive prefix, single space separator.
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		claims, err := s.codec.Validate(token)
		if err != nil {
			s.logger.Debug(c.Request.Context(), "token rejected", "reason", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// claimsFrom reads the claim the guard attached. Nil means the guard did not
// run, which downstream code reports as unauthenticated.
func claimsFrom(c *gin.Context) *auth.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
