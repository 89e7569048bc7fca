package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/seojacky/account-teacher/config"
	"github.com/seojacky/account-teacher/internal/access"
	"github.com/seojacky/account-teacher/internal/api/handler"
	"github.com/seojacky/account-teacher/internal/api/middleware"
	"github.com/seojacky/account-teacher/pkg/jwt"
	"github.com/seojacky/account-teacher/pkg/redis"
)

// uploadOverhead covers multipart framing around the imported file.
const uploadOverhead = 64 << 10

// Setup builds the gin engine with all routes.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.Metrics())

	// ── probes ──
	r.GET("/health", h.System.Health)
	r.GET("/health/ready", h.System.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rateLimit := middleware.RateLimit(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	v1.Use(rateLimit)
	v1.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	{
		v1.POST("/auth/login", h.Auth.Login)

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// per-user records; scope is checked by the access policy in the service
			achievements := authorized.Group("/achievements/:user_id")
			{
				achievements.GET("", h.Achievement.Get)
				achievements.PUT("", h.Achievement.Upsert)
				achievements.GET("/export", h.Achievement.Export)
				achievements.POST("/import",
					middleware.BodyLimit(cfg.Achievements.ImportMaxBytes+uploadOverhead),
					h.Achievement.Import)
			}

			reports := authorized.Group("/reports")
			{
				reports.GET("/users", h.Report.ListUsers)
				reports.GET("/statistics", h.Report.Statistics)
				reports.GET("/export", h.Report.Export)
			}

			directory := authorized.Group("/directory")
			{
				directory.GET("/faculties", h.Directory.ListFaculties)
				directory.GET("/departments", h.Directory.ListDepartments)
			}

			authorized.GET("/system/logs", middleware.RoleAuth(string(access.RoleAdmin)), h.System.AuditLogs)
		}
	}

	return r
}
