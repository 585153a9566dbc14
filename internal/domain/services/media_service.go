package services

import (
	"errors"
	"portfolio-http-service/internal/domain/models"
	"portfolio-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// MaxListResults 列表查询的结果条数上限
// List 同时返回匹配总数，调用方据此判断结果是否被截断
const MaxListResults = 1000

// 排序值冲突时的最大插入尝试次数
// 每次冲突意味着有并发插入已提交一个新的最大排序值，重新读取后重试
const orderInsertRetries = 10

// InterfaceMediaService 媒体仓库服务接口
type InterfaceMediaService interface {
	Insert(media *models.Media) error
	List(filter MediaFilter) ([]models.Media, int64, error)
	GetMedia(id string) (*models.Media, error)
	Update(id string, update MediaUpdate) (*models.Media, error)
	Remove(id string) error
}

// MediaFilter 列表过滤条件，多个条件取交集
type MediaFilter struct {
	Category string // 空串表示不过滤
	Featured *bool  // nil表示不过滤
}

// MediaUpdate 部分更新请求，nil表示该字段不修改
// 显式区分"未提供"和"设置为零值"，不使用稀疏map
type MediaUpdate struct {
	Title        *string
	Description  *string
	Category     *string
	Featured     *bool
	DisplayOrder *int
}

// IsEmpty 是否未提供任何字段
func (u MediaUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Category == nil &&
		u.Featured == nil && u.DisplayOrder == nil
}

// MediaService 管理有序媒体集合
// 排序值在存活记录中唯一（display_order 唯一索引兜底），删除后留下的
// 空洞不回填，追加永远使用当前最大值加一
type MediaService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewMediaService 创建一个新的媒体服务
func NewMediaService(db *gorm.DB, cfg *config.Config) InterfaceMediaService {
	return &MediaService{
		DB:     db,
		Config: cfg,
	}
}

// 1 Insert 插入媒体记录，排序值取 max(display_order)+1
// 和并发插入算出同一排序值时会触发唯一索引冲突，此时重新读取最大值
// 重试，不需要进程级全局锁，多实例部署同样安全
func (s *MediaService) Insert(media *models.Media) error {
	for attempt := 0; attempt < orderInsertRetries; attempt++ {
		var maxOrder int64
		if err := s.DB.Model(&models.Media{}).
			Select("COALESCE(MAX(display_order), 0)").
			Scan(&maxOrder).Error; err != nil {
			return err
		}

		media.DisplayOrder = int(maxOrder) + 1
		err := s.DB.Create(media).Error
		if err == nil {
			return nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			continue
		}
		return err
	}
	return ErrOrderConflict
}

// 2 List 按过滤条件查询媒体，按排序值升序，最多返回 MaxListResults 条
func (s *MediaService) List(filter MediaFilter) ([]models.Media, int64, error) {
	var mediaList []models.Media
	var total int64

	query := s.DB.Model(&models.Media{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("display_order ASC").Limit(MaxListResults).Find(&mediaList).Error; err != nil {
		return nil, 0, err
	}
	return mediaList, total, nil
}

// 3 GetMedia 根据ID获取媒体记录
func (s *MediaService) GetMedia(id string) (*models.Media, error) {
	var media models.Media
	if err := s.DB.Where("id = ?", id).First(&media).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return &media, nil
}

// 4 Update 部分更新媒体记录，未提供的字段保持不变
func (s *MediaService) Update(id string, update MediaUpdate) (*models.Media, error) {
	if update.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	media, err := s.GetMedia(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if update.Title != nil {
		updates["title"] = *update.Title
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Category != nil {
		updates["category"] = *update.Category
	}
	if update.Featured != nil {
		updates["featured"] = *update.Featured
	}
	if update.DisplayOrder != nil {
		updates["display_order"] = *update.DisplayOrder
	}

	if err := s.DB.Model(media).Updates(updates).Error; err != nil {
		// 手动指定的排序值撞上存活记录时由唯一索引拒绝
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrOrderConflict
		}
		return nil, err
	}

	return s.GetMedia(id)
}

// 5 Remove 删除媒体记录，不重排剩余记录的排序值
func (s *MediaService) Remove(id string) error {
	result := s.DB.Where("id = ?", id).Delete(&models.Media{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMediaNotFound
	}
	return nil
}
