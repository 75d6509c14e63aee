package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "tasker-api/internal/transport/http/response"
)

// RequireRole 路由声明需要的角色，和主体角色直接比对（挂在 AuthJWT 之后）
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(KeyRole) != role {
			resp.FailMsg(c, http.StatusForbidden, "insufficient permissions")
			return
		}
		c.Next()
	}
}
