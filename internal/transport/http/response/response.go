package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tasker-api/internal/apperr"
)

// Envelope 所有路由统一返回 {success, error, res}
type Envelope struct {
	Success bool     `json:"success"`
	Error   *ErrBody `json:"error"`
	Res     any      `json:"res"`
}

type ErrBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
}

func OK(c *gin.Context, status int, res any) {
	if res == nil {
		res = struct{}{}
	}
	c.JSON(status, Envelope{Success: true, Res: res})
}

// NoContent 204 空响应（删用户用）
func NoContent(c *gin.Context) { c.Status(http.StatusNoContent) }

// Fail 统一错误映射；未知错误一律 500 + 通用提示，不往外漏内部细节
func Fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "Internal server error"
	if ae, ok := apperr.From(err); ok {
		status = ae.Status
		msg = ae.Message
		if msg == "" {
			msg = http.StatusText(status)
		}
	}
	c.AbortWithStatusJSON(status, Envelope{
		Success: false,
		Error: &ErrBody{
			StatusCode: status,
			Message:    msg,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
			Path:       c.Request.URL.Path,
		},
		Res: []any{},
	})
}

func FailMsg(c *gin.Context, status int, msg string) {
	Fail(c, apperr.New(status, msg))
}
