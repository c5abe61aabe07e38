package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const coachContextKey = "isCoach"

// CoachRequired is a Gin middleware that validates the coach JWT from
// Authorization: Bearer <token> and aborts with 401 otherwise.
func CoachRequired(jwtManager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing or malformed Authorization header",
			})
			return
		}

		if _, err := jwtManager.ParseAndValidate(token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
			})
			return
		}

		c.Set(coachContextKey, true)
		c.Next()
	}
}

// CoachOptional marks the request as a coach request when a valid token is
// present, but lets everyone through. Used on public endpoints that reveal
// extra detail to the coach.
func CoachOptional(jwtManager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if _, err := jwtManager.ParseAndValidate(token); err == nil {
				c.Set(coachContextKey, true)
			}
		}
		c.Next()
	}
}

// IsCoach reports whether the current request carries a valid coach token.
func IsCoach(c *gin.Context) bool {
	if v, ok := c.Get(coachContextKey); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
