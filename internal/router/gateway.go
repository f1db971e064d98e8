package router

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "master_ms/docs"
	"master_ms/internal/middleware"
	"master_ms/pkg/apperr"
	"master_ms/pkg/microservice"
)

const TransportHTTP = "http"

// GatewayOptions HTTP 网关依赖
type GatewayOptions struct {
	Dispatcher microservice.Dispatcher
	DB         *gorm.DB
	Logger     *zap.Logger
	Limiter    *middleware.CooldownLimiter
	Cooldowns  map[string]time.Duration // pattern -> 冷却时间
	UploadDir  string                   // 本地存储目录，为空时不挂载
	Metrics    http.Handler             // 为空时使用 promhttp 默认处理器
}

// SetupGateway 健康检查、指标与 JWT 保护的调试网关
func SetupGateway(opts GatewayOptions) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	limiter := opts.Limiter
	if limiter == nil {
		limiter = middleware.GetLimiter()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = promhttp.Handler()
	}

	r := gin.New()
	r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger, true))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/readyz", readiness(opts.DB))
	r.GET("/metrics", gin.WrapH(metrics))

	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if opts.UploadDir != "" {
		r.Static("/uploads", opts.UploadDir)
	}

	api := r.Group("/api")
	api.Use(middleware.JWTAuth(), middleware.AuditContext())
	{
		// POST /api/rpc/createCountry
		api.POST("/rpc/:pattern",
			middleware.PatternCooldown(limiter, opts.Cooldowns),
			rpcHandler(opts.Dispatcher),
		)
	}

	return r
}

func readiness(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "database not configured"})
			return
		}
		sqlDB, err := db.DB()
		if err == nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			err = sqlDB.PingContext(ctx)
			cancel()
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "database unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}

// rpcHandler 请求体即 payload，auth.id 以 JWT 中的用户为准
func rpcHandler(d microservice.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(io.LimitReader(c.Request.Body, microservice.MaxFrameSize))
		if err != nil {
			writeError(c, apperr.BadRequest("Invalid payload.").WithErr(err))
			return
		}

		payload, err := withAuth(body, middleware.GetUserID(c), c.GetHeader("Accept-Language"))
		if err != nil {
			writeError(c, apperr.BadRequest("Invalid payload.").WithErr(err))
			return
		}

		result, appErr := d.Dispatch(c.Request.Context(), TransportHTTP, c.Param("pattern"), payload)
		if appErr != nil {
			writeError(c, appErr)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// withAuth 覆盖 payload.auth，payload 未指定 lang 时使用 Accept-Language
func withAuth(body []byte, userID int64, lang string) (json.RawMessage, error) {
	fields := map[string]json.RawMessage{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &fields); err != nil {
			return nil, err
		}
	}

	auth, _ := json.Marshal(map[string]int64{"id": userID})
	fields["auth"] = auth

	if _, ok := fields["lang"]; !ok && lang != "" {
		raw, _ := json.Marshal(lang)
		fields["lang"] = raw
	}
	return json.Marshal(fields)
}

func writeError(c *gin.Context, e *apperr.Error) {
	c.AbortWithStatusJSON(e.Status, e)
}
