package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/internal/tokenutil"
)

// ContextUserKey is where the authenticated *domain.User lives in the gin
// context.
const ContextUserKey = "user"

// CurrentUser returns the user an auth middleware resolved, if any.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}

// JwtAuthMiddleware rejects requests without a valid bearer token and loads
// the token's user into the context for downstream handlers.
func JwtAuthMiddleware(secret string, userRepository domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := resolveUser(c, secret, userRepository)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"code":    "UNAUTHORIZED",
				"message": "not authorized",
			})
			return
		}
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// OptionalJwtMiddleware resolves a bearer token when one is present but never
// rejects the request. Handlers that vary by caller identity sit behind it.
func OptionalJwtMiddleware(secret string, userRepository domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := resolveUser(c, secret, userRepository); ok {
			c.Set(ContextUserKey, user)
		}
		c.Next()
	}
}

// AdminMiddleware gates a group on the resolved user's admin flag. It must
// run after JwtAuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"code":    "FORBIDDEN",
				"message": "admin access required",
			})
			return
		}
		c.Next()
	}
}

func resolveUser(c *gin.Context, secret string, userRepository domain.UserRepository) (*domain.User, bool) {
	authHeader := c.Request.Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, false
	}
	token := parts[1]

	authorized, err := tokenutil.IsAuthorized(token, secret)
	if err != nil || !authorized {
		return nil, false
	}
	idHex, err := tokenutil.ExtractIDFromToken(token, secret)
	if err != nil {
		return nil, false
	}
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, false
	}

	user, err := userRepository.GetByID(c.Request.Context(), id)
	if err != nil {
		return nil, false
	}
	return user, true
}
