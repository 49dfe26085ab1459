package middlewares

import (
	"UnifyMD/models"
	"UnifyMD/services"
	"UnifyMD/utils"
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type contextKey string

const doctorIDKey contextKey = "doctorID"

// DoctorLookup resolves the doctor a token was issued to.
type DoctorLookup interface {
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
}

// TokenAuthMiddleware validates the access token and stores the doctor id in
// the request context. The token is read from the Authorization header as a
// Bearer token, or from the accessToken query parameter. Tokens of doctors
// removed by the auth provider are rejected even before they expire.
func TokenAuthMiddleware(issuer *utils.TokenIssuer, doctors DoctorLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := accessToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing access token"})
			return
		}

		claims, err := issuer.Validate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if _, err := doctors.GetByID(c.Request.Context(), claims.DoctorID); err != nil {
			if errors.Is(err, services.ErrDoctorNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
				return
			}
			HttpError(c, "Failed to authenticate", http.StatusInternalServerError, err)
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), doctorIDKey, claims.DoctorID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func accessToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return c.Query("accessToken")
}

// ExtractDoctorIDFromContext retrieves the authenticated doctor id.
func ExtractDoctorIDFromContext(ctx context.Context) (string, error) {
	doctorID, ok := ctx.Value(doctorIDKey).(string)
	if !ok {
		return "", errors.New("doctor ID not found in context")
	}
	return doctorID, nil
}
