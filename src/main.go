package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"next-app/src/config"
	"next-app/src/infrastructure/repository"
	"next-app/src/interface/handler"
	"next-app/src/logger"
	"next-app/src/middleware"
	"next-app/src/routes"
	"next-app/src/storage"
	"next-app/src/usecase"
	"next-app/src/validator"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// 首次运行时写入的默认名言文件内容
const defaultQuotesContent = `Focus on the right thing.
专注于重要的事情。
今天的努力是明天的收获。
Done is better than perfect.
先完成，再完美。
Keep it simple, stupid.
保持简单，别想太多。
Code is poetry.
代码如诗。
`

func main() {
	// 读取配置
	cfg := config.LoadConfig()

	// 初始化日志
	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.Directory); err != nil {
		panic(fmt.Sprintf("日志初始化失败: %v", err))
	}
	defer logger.CloseLogger()

	logger.Log.Info("应用启动中")

	// 初始化数据目录，首次运行时写入默认名言文件
	if err := seedUserData(cfg); err != nil {
		logger.Log.WithError(err).Fatal("数据目录初始化失败")
	}

	// 备份上传器（配置启用时）
	var uploader *storage.BackupUploader
	if cfg.Backup.Enabled {
		s3Config := &storage.S3Config{
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			Region:          cfg.S3.Region,
			Bucket:          cfg.S3.Bucket,
			UseSSL:          cfg.S3.UseSSL,
		}

		var err error
		uploader, err = storage.NewBackupUploader(s3Config, logger.Log)
		if err != nil {
			logger.Log.WithError(err).Error("备份上传器初始化失败")
		} else {
			uploader.StartPeriodicBackup(cfg.Data.Directory, cfg.Backup.Interval)
		}
	}

	// 组装各层
	todoRepo := repository.NewTodoRepository(cfg.Data.TodosFile, logger.Log)
	routineRepo := repository.NewRoutineRepository(cfg.Data.RoutinesFile, logger.Log)

	todoUsecase := usecase.NewTodoUsecase(todoRepo)
	routineUsecase := usecase.NewRoutineUsecase(routineRepo)
	quoteUsecase := usecase.NewQuoteUsecase(cfg.Data.QuotesFile, logger.Log)

	cv := validator.NewCustomValidator()

	todoHandler := handler.NewTodoHandler(todoUsecase, cv, logger.Log)
	routineHandler := handler.NewRoutineHandler(routineUsecase, logger.Log)
	quoteHandler := handler.NewQuoteHandler(quoteUsecase)
	systemHandler := handler.NewSystemHandler(cfg, logger.Log)

	// 初始化 Gin
	r := gin.Default()
	r.HandleMethodNotAllowed = true

	r.NoRoute(func(c *gin.Context) {
		logger.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"uri":       c.Request.RequestURI,
			"client_ip": c.ClientIP(),
		}).Warn("404: 路由不存在")
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	r.NoMethod(func(c *gin.Context) {
		logger.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"uri":       c.Request.RequestURI,
			"client_ip": c.ClientIP(),
		}).Warn("405: 不支持的方法")
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	// 全局中间件
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware())
	r.Use(middleware.PlatformMiddleware())

	routes.SetupRoutes(r, todoHandler, routineHandler, quoteHandler, systemHandler)

	// 优雅停机
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		logger.Log.Info("收到停机信号")

		// 停机前做最后一次数据备份
		if uploader != nil {
			logger.Log.Info("执行最后一次数据备份")
			if err := uploader.UploadDataDir(cfg.Data.Directory); err != nil {
				logger.Log.WithError(err).Error("最后一次数据备份失败")
			}
		}

		logger.CloseLogger()
		os.Exit(0)
	}()

	serverAddr := ":" + cfg.Server.Port
	logger.Log.WithField("port", cfg.Server.Port).Info("服务启动")

	if err := r.Run(serverAddr); err != nil {
		logger.Log.WithError(err).Fatal("服务启动失败")
	}
}

// seedUserData 创建数据目录并在首次运行时写入默认名言文件
func seedUserData(cfg *config.Config) error {
	if err := os.MkdirAll(cfg.Data.Directory, 0755); err != nil {
		return err
	}

	if _, err := os.Stat(cfg.Data.QuotesFile); os.IsNotExist(err) {
		if err := os.WriteFile(cfg.Data.QuotesFile, []byte(defaultQuotesContent), 0644); err != nil {
			return err
		}
		logger.Log.WithField("file", cfg.Data.QuotesFile).Info("已写入默认名言文件")
	}

	return nil
}
