package routes

import (
	"time"

	"portfolio-http-service/internal/app/controllers"
	"portfolio-http-service/internal/app/middleware"
	"portfolio-http-service/internal/domain/services/container"
	"portfolio-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.CORSAllowOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// 按需创建Redis客户端，连接失败由服务容器降级处理
	var redisClient *redis.Client
	if cfg.RedisEnabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr: cfg.GetRedisAddr(),
			DB:   cfg.RedisDB,
		})
	}

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg, db)
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 媒体文件静态服务
	r.Static("/api/uploads", cfg.UploadDir)

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加IP限流中间件 - 每秒允许10个请求，最多突发20个请求
	api.Use(middleware.IPRateLimiter(10, 20))

	// 根路径横幅和健康检查路由
	api.GET("", controllers.HandleHealthFunc(container, "root"))
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "ping")) // 兼容Docker健康检查的路由

	// 健康状态路由组
	healthGroup := api.Group("/health")
	healthGroup.GET("/status", controllers.HandleHealthFunc(container, "status"))
	healthGroup.GET("/cache-stats", controllers.HandleHealthFunc(container, "cacheStats"))

	// 认证路由
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.PathRateLimiter(5, 10)) // 每秒5个请求，最多突发10个
	authGroup.POST("/register", controllers.HandleAuthFunc(container, "register"))
	authGroup.POST("/login", controllers.HandleAuthFunc(container, "login"))

	// 媒体读取路由（列表随排序变化频繁，不走响应缓存）
	api.GET("/media", controllers.HandleMediaFunc(container, "getMediaList"))
	api.GET("/media/:id", controllers.HandleMediaFunc(container, "getMedia"))

	// 分类聚合路由
	api.GET("/categories", controllers.HandleCategoryFunc(container, "getCategories"))

	// 站点设置路由
	api.GET("/settings", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleSettingsFunc(container, "getSettings"))

	// 联系消息提交路由
	contactGroup := api.Group("/contact")
	contactGroup.Use(middleware.PathRateLimiter(5, 10)) // 每秒5个请求，最多突发10个
	contactGroup.POST("", controllers.HandleContactFunc(container, "submitMessage"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加认证中间件
	auth := api.Group("/")
	auth.Use(middleware.AuthenticateAdmin())

	// 添加通用限流中间件 - 每秒30个请求，最多突发50个请求
	auth.Use(middleware.IPRateLimiter(30, 50))

	// 当前管理员信息
	auth.GET("/auth/me", controllers.HandleAuthFunc(container, "me"))

	// 媒体写入路由
	auth.POST("/media/upload", controllers.HandleMediaFunc(container, "uploadMedia"))
	auth.PUT("/media/:id", controllers.HandleMediaFunc(container, "updateMedia"))
	auth.DELETE("/media/:id", controllers.HandleMediaFunc(container, "deleteMedia"))

	// 站点设置更新路由
	auth.PUT("/settings", controllers.HandleSettingsFunc(container, "updateSettings"))

	// 联系消息列表路由
	auth.GET("/contact/messages", controllers.HandleContactFunc(container, "listMessages"))
}
