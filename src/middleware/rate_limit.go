package middleware

import (
	"next-app/src/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RateLimitMiddleware 限流占位
// 单用户本地应用暂不需要真实限流，这里只记录访问来源
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger.WithFields(logrus.Fields{
			"client_ip": c.ClientIP(),
			"method":    c.Request.Method,
			"uri":       c.Request.RequestURI,
		}).Debug("限流检查")

		c.Next()
	}
}
