package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const (
	// ContextUserID is the gin context key holding the authenticated user id as int64.
	ContextUserID = "user_id"
	// ContextUserRole holds the role claim when the token carries one.
	ContextUserRole = "user_role"
)

var (
	errMissingToken = errors.New("missing bearer token")
	errNoUserID     = errors.New("token carries no user id")
)

// ParseUserID validates tokenString with an HMAC secret and returns the "id" claim.
func ParseUserID(tokenString, secret string) (int64, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", jwt.ErrTokenInvalidClaims
	}

	id, ok := claims["id"].(float64)
	if !ok {
		id, ok = claims["user_id"].(float64)
	}
	if !ok || id <= 0 {
		return 0, "", errNoUserID
	}
	role, _ := claims["role"].(string)
	return int64(id), role, nil
}

func bearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", errMissingToken
	}
	return token, nil
}

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "token not provided"})
			return
		}
		id, role, err := ParseUserID(token, secret)
		if err != nil {
			logrus.Warnf("invalid token: %v", err)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "invalid token"})
			return
		}
		c.Set(ContextUserID, id)
		c.Set(ContextUserRole, role)
		c.Next()
	}
}

// OptionalAuthMiddleware sets the user id when a valid token is present and
// lets anonymous requests through.
func OptionalAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := bearerToken(c); err == nil {
			if id, role, err := ParseUserID(token, secret); err == nil {
				c.Set(ContextUserID, id)
				c.Set(ContextUserRole, role)
			}
		}
		c.Next()
	}
}
