package controllers

import (
	"time"

	"portfolio-http-service/internal/app/middleware"
	"portfolio-http-service/internal/domain/services/container"
	"portfolio-http-service/internal/error/code"
	"portfolio-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// serviceStartTime 服务启动时间，用于计算运行时长
var serviceStartTime = time.Now()

// HealthController 健康检查控制器
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController 创建健康检查控制器实例
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc 返回一个处理健康检查请求的Gin处理函数
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "root":
			controller.Root()
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		case "cacheStats":
			controller.CacheStats()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. Root API根路径横幅
// @Summary      服务横幅
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       / [get]
func (c *HealthController) Root() {
	response.Success(c.Ctx, gin.H{
		"message": "Findelmundo API",
	})
}

// 2. Ping 健康检查端点
// @Summary      健康检查
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /ping [get]
func (c *HealthController) Ping() {
	response.Success(c.Ctx, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// 3. Status 系统状态端点，包含数据库连接池状态
// @Summary      系统状态
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health/status [get]
func (c *HealthController) Status() {
	db := c.Container.GetService("db").(*gorm.DB)

	dbStatus := "up"
	var poolStats interface{}
	sqlDB, err := db.DB()
	if err != nil {
		dbStatus = "down: " + err.Error()
	} else {
		if err := sqlDB.Ping(); err != nil {
			dbStatus = "down: " + err.Error()
		}
		poolStats = sqlDB.Stats()
	}

	response.Success(c.Ctx, gin.H{
		"uptime":   time.Since(serviceStartTime).String(),
		"database": dbStatus,
		"db_pool":  poolStats,
	})
}

// 4. CacheStats 响应缓存统计端点
// @Summary      缓存统计
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health/cache-stats [get]
func (c *HealthController) CacheStats() {
	response.Success(c.Ctx, middleware.CacheStats())
}
