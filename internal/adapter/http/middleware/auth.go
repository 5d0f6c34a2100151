package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amanshinde1/ai-productivity-dashboard/pkg/apierrors"
	"github.com/amanshinde1/ai-productivity-dashboard/pkg/authtoken"
)

const userIDKey = "user_id"

// AuthMiddleware rejects requests without a valid Bearer access token
// and stores the authenticated user id on the context.
func AuthMiddleware(tokens *authtoken.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		tokenStr, found := strings.CutPrefix(header, "Bearer ")
		if header == "" || !found {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		claims, err := tokens.Parse(tokenStr, authtoken.KindAccess)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// GetUserID returns the authenticated user id set by AuthMiddleware.
func GetUserID(c *gin.Context) uint64 {
	if value, exists := c.Get(userIDKey); exists {
		if id, ok := value.(uint64); ok {
			return id
		}
	}
	return 0
}
