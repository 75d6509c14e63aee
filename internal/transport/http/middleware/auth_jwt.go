package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tasker-api/internal/core/auth"
	resp "tasker-api/internal/transport/http/response"
)

// context 里的登录主体字段
const (
	KeyUserID = "userId"
	KeyEmail  = "email"
	KeyRole   = "role"
)

// AuthJWT 校验 Bearer token，把主体 {id,email,role} 放进 context
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.FailMsg(c, http.StatusUnauthorized, "missing token")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.FailMsg(c, http.StatusUnauthorized, "invalid token")
			return
		}
		c.Set(KeyUserID, claims.UID)
		c.Set(KeyEmail, claims.Email)
		c.Set(KeyRole, claims.Role)
		c.Next()
	}
}
