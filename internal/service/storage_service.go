package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/util"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageProvider 定义通用存储接口
type StorageProvider interface {
	Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, filename string) error
	GetURL(filename string) string
}

// LocalStorageProvider 本地存储实现
type LocalStorageProvider struct {
	Config *config.StorageConfig
}

func (p *LocalStorageProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	dst := filepath.Join(p.Config.LocalPath, filename)
	dir := filepath.Dir(dst)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err = io.Copy(out, reader); err != nil {
		return "", err
	}

	return p.GetURL(filename), nil
}

func (p *LocalStorageProvider) Delete(ctx context.Context, filename string) error {
	return os.Remove(filepath.Join(p.Config.LocalPath, filename))
}

func (p *LocalStorageProvider) GetURL(filename string) string {
	return "/uploads/" + filename
}

// MinioStorageProvider MinIO 存储实现（S3 兼容）
type MinioStorageProvider struct {
	Config *config.StorageConfig
	Client *minio.Client
}

func NewMinioStorageProvider(cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	if cfg.MinioEndpoint == "" || cfg.MinioAccessID == "" || cfg.MinioSecret == "" || cfg.MinioBucket == "" {
		return nil, util.ErrStorageNotConfigured
	}

	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStorageProvider{Config: cfg, Client: client}, nil
}

func (p *MinioStorageProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := p.Client.PutObject(ctx, p.Config.MinioBucket, filename, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return p.GetURL(filename), nil
}

func (p *MinioStorageProvider) Delete(ctx context.Context, filename string) error {
	return p.Client.RemoveObject(ctx, p.Config.MinioBucket, filename, minio.RemoveObjectOptions{})
}

func (p *MinioStorageProvider) GetURL(filename string) string {
	base := strings.TrimRight(p.Config.PublicBaseURL, "/")
	if base == "" {
		scheme := "http"
		if p.Config.MinioUseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s/%s", scheme, p.Config.MinioEndpoint, p.Config.MinioBucket)
	}
	return base + "/" + filename
}

// StorageService 按配置选择存储后端。配置残缺不在启动时炸掉，
// 而是在第一次上传时返回结构化错误。
type StorageService struct {
	Cfg *config.Config

	provider    StorageProvider
	providerErr error
}

func NewStorageService(cfg *config.Config) *StorageService {
	s := &StorageService{Cfg: cfg}
	switch cfg.Storage.Type {
	case util.StorageMinio:
		s.provider, s.providerErr = NewMinioStorageProvider(&cfg.Storage)
		if s.providerErr != nil {
			s.provider = nil
		}
	case util.StorageLocal:
		s.provider = &LocalStorageProvider{Config: &cfg.Storage}
	default:
		s.providerErr = util.ErrStorageNotConfigured
	}
	return s
}

// UploadThumbnail 存储键形如 thumbnails/<unix>-<清洗后的文件名>
func (s *StorageService) UploadThumbnail(ctx context.Context, originalName string, reader io.Reader, size int64, contentType string) (string, error) {
	if s.provider == nil {
		if s.providerErr != nil {
			return "", s.providerErr
		}
		return "", util.ErrStorageNotConfigured
	}

	key := fmt.Sprintf("thumbnails/%d-%s", time.Now().Unix(), util.SanitizeFilename(originalName))
	return s.provider.Upload(ctx, key, reader, size, contentType)
}
