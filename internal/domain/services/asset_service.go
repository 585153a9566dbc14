package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"portfolio-http-service/internal/infrastructure/config"
	"strings"

	"github.com/google/uuid"
)

// InterfaceAssetService 资源文件存储服务接口
type InterfaceAssetService interface {
	Store(r io.Reader, ext string) (*StoredAsset, error)
	Open(filename string) (io.ReadCloser, error)
	Delete(filename string) error
	PublicURL(filename string) string
}

// StoredAsset 已落盘资源的引用
type StoredAsset struct {
	ID       string // 生成的UUID标识
	Filename string // 存储文件名: <uuid><ext>
}

// AssetService 把资源字节流保存到本地磁盘
// 文件名由服务端生成，客户端文件名只取扩展名；写入先落临时文件再
// 原子重命名，中途失败的上传不会留下半成品文件
type AssetService struct {
	root      string
	maxSize   int64
	publicFmt string
}

// NewAssetService 创建资源存储服务并确保上传目录存在
func NewAssetService(cfg *config.Config) (InterfaceAssetService, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		return nil, fmt.Errorf("创建上传目录失败: %w", err)
	}
	return &AssetService{
		root:      cfg.UploadDir,
		maxSize:   cfg.MaxUploadSize,
		publicFmt: "/api/uploads/%s",
	}, nil
}

// 1 Store 保存字节流，返回生成的资源引用
// 拷贝过程中超出大小上限立即失败（ErrAssetTooLarge），不会整份缓冲；
// 任何失败都会清理临时文件，未完成的写入等同于没有写入
func (s *AssetService) Store(r io.Reader, ext string) (*StoredAsset, error) {
	id := uuid.NewString()
	filename := id + sanitizeExt(ext)
	destPath := filepath.Join(s.root, filename)

	tmpFile, err := os.CreateTemp(s.root, ".upload-*")
	if err != nil {
		return nil, fmt.Errorf("创建临时文件失败: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	// 多读一个字节用于判断是否超限
	written, err := io.Copy(tmpFile, io.LimitReader(r, s.maxSize+1))
	if err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("写入资源文件失败: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return nil, fmt.Errorf("关闭临时文件失败: %w", err)
	}
	if written > s.maxSize {
		return nil, ErrAssetTooLarge
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return nil, fmt.Errorf("重命名资源文件失败: %w", err)
	}

	success = true
	return &StoredAsset{ID: id, Filename: filename}, nil
}

// 2 Open 按文件名打开资源内容
func (s *AssetService) Open(filename string) (io.ReadCloser, error) {
	path, err := s.resolve(filename)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}
	return f, nil
}

// 3 Delete 删除资源文件，幂等：文件不存在视为已删除
func (s *AssetService) Delete(filename string) error {
	path, err := s.resolve(filename)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// 4 PublicURL 返回资源的公开访问路径
func (s *AssetService) PublicURL(filename string) string {
	return fmt.Sprintf(s.publicFmt, filename)
}

// resolve 拒绝带路径成分的文件名，防止目录穿越
func (s *AssetService) resolve(filename string) (string, error) {
	if filename == "" || filepath.Base(filename) != filename {
		return "", ErrAssetNotFound
	}
	return filepath.Join(s.root, filename), nil
}

// sanitizeExt 只保留形如".jpg"的安全扩展名，其余丢弃
func sanitizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext == "" || !strings.HasPrefix(ext, ".") {
		return ""
	}
	if strings.ContainsAny(ext[1:], `./\`) {
		return ""
	}
	return ext
}
