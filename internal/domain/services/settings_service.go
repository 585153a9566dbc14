package services

import (
	"errors"
	"portfolio-http-service/internal/domain/models"
	"portfolio-http-service/internal/infrastructure/config"

	Logger "portfolio-http-service/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InterfaceSettingsService 站点设置服务接口
type InterfaceSettingsService interface {
	GetSettings() (*models.SiteSettings, error)
	UpdateSettings(settings models.SiteSettings) (*models.SiteSettings, error)
}

// SettingsService 管理站点设置单行记录
// Redis可用时读取走缓存，更新后整行覆盖并使缓存失效
type SettingsService struct {
	DB     *gorm.DB
	Config *config.Config
	redis  InterfaceRedisService // 可能为nil，未启用Redis时直接读库
}

// NewSettingsService 创建站点设置服务
func NewSettingsService(db *gorm.DB, cfg *config.Config, redisService InterfaceRedisService) InterfaceSettingsService {
	return &SettingsService{
		DB:     db,
		Config: cfg,
		redis:  redisService,
	}
}

// 1 GetSettings 读取站点设置，没有持久化记录时返回默认值
func (s *SettingsService) GetSettings() (*models.SiteSettings, error) {
	if s.redis != nil {
		if cached, err := s.redis.GetSiteSettings(); err == nil {
			return cached, nil
		}
	}

	var settings models.SiteSettings
	err := s.DB.Where("type = ?", models.SettingsTypeSite).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			defaults := models.DefaultSiteSettings()
			return &defaults, nil
		}
		return nil, err
	}

	if s.redis != nil {
		if err := s.redis.CacheSiteSettings(&settings); err != nil {
			Logger.Warning("缓存站点设置失败: %v", err)
		}
	}
	return &settings, nil
}

// 2 UpdateSettings 整行覆盖站点设置，记录不存在时插入（始终恰好一行）
func (s *SettingsService) UpdateSettings(settings models.SiteSettings) (*models.SiteSettings, error) {
	settings.Type = models.SettingsTypeSite

	if err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "type"}},
		UpdateAll: true,
	}).Create(&settings).Error; err != nil {
		return nil, err
	}

	if s.redis != nil {
		if err := s.redis.InvalidateSiteSettings(); err != nil {
			Logger.Warning("清除站点设置缓存失败: %v", err)
		}
	}
	return &settings, nil
}
