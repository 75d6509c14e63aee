package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"tasker-api/internal/core/auth"
	"tasker-api/internal/domain"
	"tasker-api/internal/transport/http/handler"
	mdw "tasker-api/internal/transport/http/middleware"
)

// NewAPIEngine 全部显式装配：中间件链 → 公共路由 → 鉴权路由
func NewAPIEngine(
	l *zap.Logger,
	jwter *auth.JWTer,
	authH *handler.AuthHandler,
	taskH *handler.TaskHandler,
	userH *handler.UserHandler,
	uploadDir string,
) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	// 健康检查 + 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 上传的头像直接静态吐出
	r.Static("/uploads", uploadDir)

	authGrp := r.Group("/auth")
	{
		authGrp.POST("/register", authH.Register)
		authGrp.POST("/login", authH.Login)
	}

	task := r.Group("/task", mdw.AuthJWT(jwter))
	{
		task.POST("", taskH.Create)
		task.GET("/by-author", taskH.ListByAuthor)
		task.GET("/:id", taskH.Get)
		task.PATCH("/:id", taskH.Update)
		task.DELETE("/:id", taskH.Delete)
	}

	users := r.Group("/users")
	{
		users.GET("", userH.List)
		users.GET("/:id", userH.Get)
		users.PATCH("/:id", mdw.AuthJWT(jwter), userH.Update)
		users.DELETE("/:id", mdw.AuthJWT(jwter), mdw.RequireRole(domain.RoleAdmin), userH.Delete)
	}

	return r
}
