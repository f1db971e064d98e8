package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// ==================== 网关冷却中间件 ====================

// PatternCooldown 按 用户 + pattern 维度限流
// 仅做检查，执行时间由 Service 层在真正开始处理时记录
//
// 使用示例:
//
//	rpc.POST("/:pattern", middleware.PatternCooldown(limiter, map[string]time.Duration{"importTax": 30 * time.Second}), h)
func PatternCooldown(limiter *CooldownLimiter, intervals map[string]time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		pattern := c.Param("pattern")
		interval, ok := intervals[pattern]
		if !ok || interval <= 0 {
			c.Next()
			return
		}

		result := limiter.CheckOnly(OperatorKey(GetUserID(c), pattern), interval)
		if !result.Allowed {
			c.Header("Retry-After", formatSeconds(result.RetryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"statusCode": http.StatusTooManyRequests,
				"message":    FormatRetryMessage(result.RetryAfter),
			})
			return
		}

		c.Next()
	}
}

func formatSeconds(d time.Duration) string {
	s := int(d.Round(time.Second).Seconds())
	if s < 1 {
		s = 1
	}
	return strconv.Itoa(s)
}
