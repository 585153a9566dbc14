package services

import (
	"portfolio-http-service/internal/domain/models"
	"portfolio-http-service/internal/infrastructure/config"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InterfaceCategoryService 分类聚合服务接口
type InterfaceCategoryService interface {
	ComputeCategories() ([]CategoryCount, error)
}

// CategoryCount 派生的分类统计，不落库
type CategoryCount struct {
	ID    string `json:"id" gorm:"-"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CategoryService 从存活媒体记录实时聚合分类统计
// 每次调用重新计算，不做缓存，结果永不过期；代价与媒体条数成正比，
// 当前规模下可以接受
type CategoryService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewCategoryService 创建分类聚合服务
func NewCategoryService(db *gorm.DB, cfg *config.Config) InterfaceCategoryService {
	return &CategoryService{
		DB:     db,
		Config: cfg,
	}
}

// ComputeCategories 按分类分组计数，名称升序
func (s *CategoryService) ComputeCategories() ([]CategoryCount, error) {
	var categories []CategoryCount
	if err := s.DB.Model(&models.Media{}).
		Select("category AS name, COUNT(*) AS count").
		Group("category").
		Order("category ASC").
		Scan(&categories).Error; err != nil {
		return nil, err
	}

	for i := range categories {
		categories[i].ID = uuid.NewString()
	}
	return categories, nil
}
