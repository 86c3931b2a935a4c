package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const UpdateSecretHeader = "X-Update-Secret"

// RequireUpdateSecret guards administrative endpoints with a shared secret header.
func RequireUpdateSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(UpdateSecretHeader)
		if secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			logrus.Warnf("rejected admin request from %s to %s", c.ClientIP(), c.FullPath())
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden"})
			return
		}
		c.Next()
	}
}
