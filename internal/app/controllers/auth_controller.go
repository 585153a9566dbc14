package controllers

import (
	"errors"

	"portfolio-http-service/internal/domain/models"
	"portfolio-http-service/internal/domain/services"
	"portfolio-http-service/internal/domain/services/container"
	"portfolio-http-service/internal/error/code"
	"portfolio-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceAuthController 定义认证控制器接口
type InterfaceAuthController interface {
	Register()
	Login()
	Me()
}

// AuthController 认证控制器
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController 创建一个新的认证控制器
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"Admin@123"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@example.com"`
	Password string `json:"password" binding:"required" example:"Admin@123"`
}

// HandleAuthFunc 返回一个处理认证请求的Gin处理函数
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		case "login":
			controller.Login()
		case "me":
			controller.Me()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// adminProfile 管理员对外展示的字段，不含密码哈希
func adminProfile(admin *models.Admin) gin.H {
	return gin.H{
		"id":         admin.ID,
		"email":      admin.Email,
		"created_at": admin.CreatedAt,
	}
}

// 1. Register 注册管理员
// @Summary      注册管理员
// @Description  用邮箱和密码注册管理员账户，成功后直接返回会话令牌；邮箱已注册则拒绝
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "注册信息"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /auth/register [post]
func (c *AuthController) Register() {
	var req RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.Register(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			response.Fail(c.Ctx, code.ErrEmailTaken, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "注册失败: "+err.Error(), nil)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	token, err := jwtService.GenerateToken(admin.ID)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"admin":        adminProfile(admin),
	})
}

// 2. Login 管理员登录
// @Summary      管理员登录
// @Description  校验邮箱和密码，签发会话令牌；邮箱不存在和密码错误返回同一错误
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "登录信息"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	result, err := jwtService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Fail(c.Ctx, code.ErrInvalidCredentials, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "登录失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"access_token": result.AccessToken,
		"token_type":   result.TokenType,
		"admin":        adminProfile(result.Admin),
	})
}

// 3. Me 获取当前管理员信息
// @Summary      获取当前管理员信息
// @Description  根据会话令牌返回当前管理员的资料
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /auth/me [get]
// @Security     BearerAuth
func (c *AuthController) Me() {
	// 认证中间件已把管理员放进上下文
	value, exists := c.Ctx.Get("admin")
	if !exists {
		response.Unauthorized(c.Ctx)
		return
	}
	admin, ok := value.(*models.Admin)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	response.Success(c.Ctx, adminProfile(admin))
}
