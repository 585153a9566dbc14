package services

import (
	"io"

	Logger "portfolio-http-service/pkg/logger"

	"portfolio-http-service/internal/domain/models"
)

// InterfaceMediaManagerService 媒体生命周期管理服务接口
// 跨媒体仓库和资源存储编排创建/删除，引用完整性由这里保证，
// 存储引擎不做外键约束
type InterfaceMediaManagerService interface {
	CreateMedia(input CreateMediaInput, file io.Reader, ext string) (*models.Media, error)
	UpdateMedia(id string, update MediaUpdate) (*models.Media, error)
	DeleteMedia(id string) error
}

// CreateMediaInput 创建媒体时的元数据
type CreateMediaInput struct {
	Title       string
	Description string
	Category    string
	MediaType   string
}

// MediaManagerService 编排媒体记录和资源文件的联动生命周期
type MediaManagerService struct {
	media  InterfaceMediaService
	assets InterfaceAssetService
}

// NewMediaManagerService 创建媒体生命周期管理服务
func NewMediaManagerService(media InterfaceMediaService, assets InterfaceAssetService) InterfaceMediaManagerService {
	return &MediaManagerService{
		media:  media,
		assets: assets,
	}
}

// 1 CreateMedia 先落盘资源文件，再插入媒体记录
// 插入失败时补偿删除已落盘的资源（尽力而为），补偿失败只记日志，
// 调用方看到的仍是插入的原始错误；不会出现记录引用不存在的文件，
// 也不会无声留下无主文件
func (s *MediaManagerService) CreateMedia(input CreateMediaInput, file io.Reader, ext string) (*models.Media, error) {
	asset, err := s.assets.Store(file, ext)
	if err != nil {
		return nil, err
	}

	media := &models.Media{
		BaseModel:   models.BaseModel{ID: asset.ID},
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		MediaType:   input.MediaType,
		Filename:    asset.Filename,
		FileURL:     s.assets.PublicURL(asset.Filename),
		Featured:    false,
	}

	if err := s.media.Insert(media); err != nil {
		if cleanupErr := s.assets.Delete(asset.Filename); cleanupErr != nil {
			Logger.Error("插入失败后清理资源文件失败，存在孤儿文件风险: %s: %v", asset.Filename, cleanupErr)
		}
		return nil, err
	}
	return media, nil
}

// 2 UpdateMedia 委托给媒体仓库，不涉及资源文件
func (s *MediaManagerService) UpdateMedia(id string, update MediaUpdate) (*models.Media, error) {
	return s.media.Update(id, update)
}

// 3 DeleteMedia 先删资源文件再删记录
// 顺序有意为之：资源删除失败时记录仍然可见，悬空引用留给重试和排查，
// 而不是无声消失；资源删除本身幂等，文件缺失不算失败
func (s *MediaManagerService) DeleteMedia(id string) error {
	media, err := s.media.GetMedia(id)
	if err != nil {
		return err
	}

	if err := s.assets.Delete(media.Filename); err != nil {
		Logger.Error("删除资源文件失败，保留媒体记录: %s: %v", media.Filename, err)
		return ErrAssetDeleteFailed
	}

	return s.media.Remove(id)
}
