package container

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"portfolio-http-service/internal/domain/services"
	"portfolio-http-service/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// 基础服务
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService

	// 业务服务
	adminService        services.InterfaceAdminService
	mediaService        services.InterfaceMediaService
	assetService        services.InterfaceAssetService
	mediaManagerService services.InterfaceMediaManagerService
	categoryService     services.InterfaceCategoryService
	settingsService     services.InterfaceSettingsService
	contactService      services.InterfaceContactService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	// 测试Redis连接，连不上则退化为不使用缓存
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis连接测试失败: %v，将不使用Redis缓存", err)
			redisClient = nil
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config, c.db)
	if c.redis != nil {
		c.redisService = services.NewRedisService(c.config)
	}

	// 初始化业务服务
	c.adminService = services.NewAdminService(c.db, c.config)
	c.mediaService = services.NewMediaService(c.db, c.config)

	assetService, err := services.NewAssetService(c.config)
	if err != nil {
		panic(fmt.Sprintf("初始化资源存储服务失败: %v", err))
	}
	c.assetService = assetService

	c.mediaManagerService = services.NewMediaManagerService(c.mediaService, c.assetService)
	c.categoryService = services.NewCategoryService(c.db, c.config)
	c.settingsService = services.NewSettingsService(c.db, c.config, c.redisService)
	c.contactService = services.NewContactService(c.db, c.config)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "admin":
		return c.adminService
	case "media":
		return c.mediaService
	case "asset":
		return c.assetService
	case "mediaManager":
		return c.mediaManagerService
	case "category":
		return c.categoryService
	case "settings":
		return c.settingsService
	case "contact":
		return c.contactService
	default:
		return nil
	}
}
