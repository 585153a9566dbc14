package middleware

import (
	"net/http"
	"portfolio-http-service/internal/domain/services"
	"portfolio-http-service/internal/infrastructure/config"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(cfg *config.Config, db *gorm.DB) {
	jwtService = services.NewJWTService(cfg, db)
}

// ExtractToken 从授权头中提取token
// 纯函数，与传输层的头表示解耦，便于单独测试；
// "Bearer "前缀存在则去掉，空串返回false
func ExtractToken(authHeader string) (string, bool) {
	if authHeader == "" {
		return "", false
	}
	if strings.HasPrefix(authHeader, "Bearer ") {
		authHeader = strings.TrimPrefix(authHeader, "Bearer ")
	}
	if authHeader == "" {
		return "", false
	}
	return authHeader, true
}

// AuthenticateAdmin 验证管理员会话令牌
// 令牌缺失/格式错误/过期/主体已删除对外一律返回401，不区分失败原因
func AuthenticateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := ExtractToken(c.GetHeader("Authorization"))
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "Authorization header is required",
				"data":    nil,
			})
			c.Abort()
			return
		}

		admin, err := jwtService.VerifyToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "Invalid or expired token",
				"data":    nil,
			})
			c.Abort()
			return
		}

		// 存储管理员信息到上下文
		c.Set("adminID", admin.ID)
		c.Set("admin", admin)
		c.Next()
	}
}
