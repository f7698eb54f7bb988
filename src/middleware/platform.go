package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// PlatformCookie is the session cookie holding an explicit platform choice
	PlatformCookie = "platform"

	PlatformMobile  = "mobile"
	PlatformDesktop = "desktop"

	platformContextKey = "platform"
)

// 未显式切换平台时，根据 User-Agent 猜测
var mobileKeywords = []string{"iphone", "android", "mobile", "ipod", "blackberry", "windows phone"}

// PlatformMiddleware resolves the client platform once per request:
// the session cookie wins, otherwise the User-Agent decides.
func PlatformMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		platform := PlatformDesktop

		if v, err := c.Cookie(PlatformCookie); err == nil && (v == PlatformMobile || v == PlatformDesktop) {
			platform = v
		} else {
			ua := strings.ToLower(c.Request.UserAgent())
			for _, keyword := range mobileKeywords {
				if strings.Contains(ua, keyword) {
					platform = PlatformMobile
					break
				}
			}
		}

		c.Set(platformContextKey, platform)
		c.Next()
	}
}

// Platform returns the platform resolved for this request
func Platform(c *gin.Context) string {
	if v, ok := c.Get(platformContextKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return PlatformDesktop
}
