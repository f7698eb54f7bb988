package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/sirupsen/logrus"
)

// S3Config S3 连接配置
type S3Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	UseSSL          bool
}

// BackupUploader 将数据目录下的 JSON 文档定期备份到对象存储。
// 本地文件是唯一数据源，备份只写不删。
type BackupUploader struct {
	s3Client *s3.S3
	config   *S3Config
	logger   *logrus.Logger
}

// NewBackupUploader 创建备份上传器
func NewBackupUploader(config *S3Config, logger *logrus.Logger) (*BackupUploader, error) {
	awsConfig := &aws.Config{
		Region:           aws.String(config.Region),
		Credentials:      credentials.NewStaticCredentials(config.AccessKeyID, config.SecretAccessKey, ""),
		DisableSSL:       aws.Bool(!config.UseSSL),
		S3ForcePathStyle: aws.Bool(true), // MinIO 等 S3 兼容存储需要
	}

	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("创建 AWS 会话失败: %v", err)
	}

	return &BackupUploader{
		s3Client: s3.New(sess),
		config:   config,
		logger:   logger,
	}, nil
}

// UploadDataFile 上传单个数据文件，按日期分目录存放
func (u *BackupUploader) UploadDataFile(filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("读取文件失败: %v", err)
	}
	defer file.Close()

	fileName := filepath.Base(filePath)
	objectKey := fmt.Sprintf("backups/%s/%s", time.Now().Format("2006-01-02"), fileName)

	_, err = u.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(u.config.Bucket),
		Key:         aws.String(objectKey),
		Body:        file,
		ContentType: aws.String("application/json"),
		Metadata: map[string]*string{
			"upload-time": aws.String(time.Now().Format(time.RFC3339)),
			"source":      aws.String("next-app"),
		},
	})

	if err != nil {
		return fmt.Errorf("S3 上传失败: %v", err)
	}

	u.logger.WithFields(logrus.Fields{
		"file":   fileName,
		"bucket": u.config.Bucket,
		"key":    objectKey,
	}).Info("数据文件已备份到 S3")

	return nil
}

// UploadDataDir 备份数据目录下的所有 JSON 文档
func (u *BackupUploader) UploadDataDir(dataDir string) error {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return fmt.Errorf("读取数据目录失败: %v", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		filePath := filepath.Join(dataDir, entry.Name())
		if err := u.UploadDataFile(filePath); err != nil {
			u.logger.WithError(err).WithField("file", entry.Name()).Error("数据文件备份失败")
		}
	}

	return nil
}

// StartPeriodicBackup 启动定期备份
func (u *BackupUploader) StartPeriodicBackup(dataDir string, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			u.logger.Info("开始定期数据备份")
			if err := u.UploadDataDir(dataDir); err != nil {
				u.logger.WithError(err).Error("定期数据备份失败")
			}
		}
	}()

	u.logger.WithField("interval", interval).Info("定期数据备份已启动")
}
