package services

import (
	"portfolio-http-service/internal/domain/models"
	"portfolio-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// MaxContactMessages 留言列表的最大返回条数
const MaxContactMessages = 100

// InterfaceContactService 联系留言服务接口
type InterfaceContactService interface {
	CreateMessage(msg *models.ContactMessage) error
	ListMessages() ([]models.ContactMessage, error)
}

// ContactService 联系留言信箱，纯插入和列表
type ContactService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewContactService 创建联系留言服务
func NewContactService(db *gorm.DB, cfg *config.Config) InterfaceContactService {
	return &ContactService{
		DB:     db,
		Config: cfg,
	}
}

// 1 CreateMessage 保存公开提交的留言
func (s *ContactService) CreateMessage(msg *models.ContactMessage) error {
	msg.Read = false
	return s.DB.Create(msg).Error
}

// 2 ListMessages 按提交时间倒序返回留言，最多 MaxContactMessages 条
func (s *ContactService) ListMessages() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if err := s.DB.Order("created_at DESC").Limit(MaxContactMessages).Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
