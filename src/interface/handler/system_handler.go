package handler

import (
	"net/http"
	"os"
	"time"

	"next-app/src/config"
	"next-app/src/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SystemHandler handles health, platform, and the disabled legacy stubs
type SystemHandler struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(cfg *config.Config, logger *logrus.Logger) *SystemHandler {
	return &SystemHandler{
		cfg:    cfg,
		logger: logger,
	}
}

// Health reports liveness plus data-path diagnostics
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"timestamp":     time.Now().Format(time.RFC3339),
		"data_dir":      h.cfg.Data.Directory,
		"todos_file":    h.cfg.Data.TodosFile,
		"todos_exists":  fileExists(h.cfg.Data.TodosFile),
		"quotes_file":   h.cfg.Data.QuotesFile,
		"quotes_exists": fileExists(h.cfg.Data.QuotesFile),
	})
}

// CurrentPlatform reports the platform resolved for this request
func (h *SystemHandler) CurrentPlatform(c *gin.Context) {
	platform := middleware.Platform(c)
	c.JSON(http.StatusOK, gin.H{
		"platform":  platform,
		"is_mobile": platform == middleware.PlatformMobile,
	})
}

// SwitchPlatform persists an explicit platform choice in the session cookie
func (h *SystemHandler) SwitchPlatform(c *gin.Context) {
	var req SwitchPlatformRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, ErrorResponseDTO{Error: err.Error()})
		return
	}

	if req.Platform != middleware.PlatformMobile && req.Platform != middleware.PlatformDesktop {
		c.JSON(http.StatusOK, ErrorResponseDTO{Error: "Invalid platform"})
		return
	}

	c.SetCookie(middleware.PlatformCookie, req.Platform, 86400*365, "/", "", false, true)
	h.logger.WithField("platform", req.Platform).Info("平台已切换")
	c.JSON(http.StatusOK, gin.H{"success": true, "platform": req.Platform})
}

// AuthStatus 认证功能已禁用，保留端点兼容旧前端
func (h *SystemHandler) AuthStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"logged_in": false})
}

// AuthLogout 登出（已禁用）
func (h *SystemHandler) AuthLogout(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessResponseDTO{Success: true})
}

// Weather 天气（已禁用），返回固定占位数据
func (h *SystemHandler) Weather(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"icon":         "☀️",
		"temp_c":       "--",
		"description":  "N/A",
		"weather_type": "sunny",
	})
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
