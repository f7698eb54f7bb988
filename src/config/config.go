package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config 应用配置
type Config struct {
	Server ServerConfig
	Data   DataConfig
	Log    LogConfig
	Backup BackupConfig
	S3     S3Config
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port string
}

// DataConfig 数据文件配置
type DataConfig struct {
	Directory    string
	TodosFile    string
	RoutinesFile string
	QuotesFile   string
}

// LogConfig 日志配置
type LogConfig struct {
	Level     string
	Directory string
}

// BackupConfig 数据备份配置
type BackupConfig struct {
	Enabled  bool
	Interval time.Duration
}

// S3Config S3 配置（备份用）
type S3Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	UseSSL          bool
}

// LoadConfig 从环境变量读取配置
func LoadConfig() *Config {
	dataDir := getEnv("DATA_DIR", "data")

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "2026"),
		},
		Data: DataConfig{
			Directory:    dataDir,
			TodosFile:    filepath.Join(dataDir, "todos.json"),
			RoutinesFile: filepath.Join(dataDir, "routines.json"),
			QuotesFile:   filepath.Join(dataDir, "quotes.txt"),
		},
		Log: LogConfig{
			Level:     getEnv("LOG_LEVEL", "info"),
			Directory: getEnv("LOG_DIRECTORY", "logs"),
		},
		Backup: BackupConfig{
			Enabled:  getBoolEnv("BACKUP_ENABLED", false),
			Interval: getDurationEnv("BACKUP_INTERVAL", 1*time.Hour),
		},
		S3: S3Config{
			Endpoint:        getEnv("S3_ENDPOINT", "http://localhost:9000"), // MinIO 的默认地址
			AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", "minioadmin"),
			SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", "minioadmin"),
			Region:          getEnv("S3_REGION", "us-east-1"),
			Bucket:          getEnv("S3_BUCKET", "next-app-backups"),
			UseSSL:          getBoolEnv("S3_USE_SSL", false),
		},
	}
}

// getEnv 读取环境变量（带默认值）
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getBoolEnv 读取 bool 类型环境变量
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getDurationEnv 读取 time.Duration 类型环境变量
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
