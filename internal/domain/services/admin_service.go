package services

import (
	"errors"
	"fmt"
	"portfolio-http-service/internal/domain/models"
	"portfolio-http-service/internal/infrastructure/config"
	"portfolio-http-service/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// InterfaceAdminService Admin服务接口
type InterfaceAdminService interface {
	Register(email, password string) (*models.Admin, error)
	GetAdminByID(id string) (*models.Admin, error)
	GetAdminByEmail(email string) (*models.Admin, error)
	VerifyCredentials(email, password string) (*models.Admin, error)
	CountAdmins() (int64, error)
}

// AdminService 提供管理员凭证相关的服务
type AdminService struct {
	DB     *gorm.DB
	Config *config.Config
}

// 查不到邮箱时用于比较的占位哈希，使凭证校验的两条失败路径耗时一致，
// 避免通过响应时间探测邮箱是否存在
var dummyPasswordHash, _ = utils.HashPassword("portfolio-dummy-password")

// NewAdminService 创建一个新的管理员服务
func NewAdminService(db *gorm.DB, cfg *config.Config) InterfaceAdminService {
	return &AdminService{
		DB:     db,
		Config: cfg,
	}
}

// 1 Register 注册管理员，邮箱重复时拒绝（精确匹配，大小写敏感）
func (s *AdminService) Register(email, password string) (*models.Admin, error) {
	var count int64
	if err := s.DB.Model(&models.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("密码加密失败: %v", err)
	}

	admin := &models.Admin{
		Email:        email,
		PasswordHash: hashedPassword,
	}
	if err := s.DB.Create(admin).Error; err != nil {
		// 并发注册同一邮箱时由唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return admin, nil
}

// 2 GetAdminByID 根据ID获取管理员
func (s *AdminService) GetAdminByID(id string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.Where("id = ?", id).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// 3 GetAdminByEmail 根据邮箱获取管理员
func (s *AdminService) GetAdminByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// 4 VerifyCredentials 校验邮箱和密码
// 邮箱不存在和密码错误返回同一个错误；邮箱未命中时也执行一次bcrypt比较，
// 两条路径的开销保持一致
func (s *AdminService) VerifyCredentials(email, password string) (*models.Admin, error) {
	admin, err := s.GetAdminByEmail(email)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			bcrypt.CompareHashAndPassword([]byte(dummyPasswordHash), []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

// 5 CountAdmins 统计管理员数量，启动时种子账户判断使用
func (s *AdminService) CountAdmins() (int64, error) {
	var count int64
	if err := s.DB.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
