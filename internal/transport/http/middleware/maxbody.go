package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "tasker-api/internal/transport/http/response"
)

// MaxBodyBytes 请求体上限，头像 multipart 也走这里
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
		if c.Err() != nil && !c.Writer.Written() {
			resp.FailMsg(c, http.StatusRequestEntityTooLarge, "request body too large")
		}
	}
}
