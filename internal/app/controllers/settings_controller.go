package controllers

import (
	"portfolio-http-service/internal/app/middleware"
	"portfolio-http-service/internal/domain/models"
	"portfolio-http-service/internal/domain/services"
	"portfolio-http-service/internal/domain/services/container"
	"portfolio-http-service/internal/error/code"
	"portfolio-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// SettingsController 站点设置控制器
type SettingsController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSettingsController 创建一个新的站点设置控制器
func NewSettingsController(ctx *gin.Context, container *container.ServiceContainer) *SettingsController {
	return &SettingsController{
		Ctx:       ctx,
		Container: container,
	}
}

// UpdateSettingsRequest 站点设置整体替换请求
type UpdateSettingsRequest struct {
	SiteTitle       string  `json:"site_title" example:"Findelmundo"`
	Tagline         string  `json:"tagline" example:"Audio • Video • Photography"`
	AboutBio        string  `json:"about_bio"`
	ContactEmail    string  `json:"contact_email" example:"hello@example.com"`
	SocialInstagram *string `json:"social_instagram"`
	SocialTwitter   *string `json:"social_twitter"`
	SocialVimeo     *string `json:"social_vimeo"`
}

// HandleSettingsFunc 返回一个处理站点设置请求的Gin处理函数
func HandleSettingsFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSettingsController(ctx, container)

		switch method {
		case "getSettings":
			controller.GetSettings()
		case "updateSettings":
			controller.UpdateSettings()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetSettings 获取站点设置
// @Summary      获取站点设置
// @Description  返回站点设置单行记录，从未保存过时返回默认值
// @Tags         Settings
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /settings [get]
func (c *SettingsController) GetSettings() {
	settingsService := c.Container.GetService("settings").(services.InterfaceSettingsService)
	settings, err := settingsService.GetSettings()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询站点设置失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, settings)
}

// 2. UpdateSettings 更新站点设置
// @Summary      更新站点设置
// @Description  整行覆盖站点设置，记录不存在时创建，始终只保留一行
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        request body UpdateSettingsRequest true "站点设置"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /settings [put]
// @Security     BearerAuth
func (c *SettingsController) UpdateSettings() {
	var req UpdateSettingsRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	settingsService := c.Container.GetService("settings").(services.InterfaceSettingsService)
	settings, err := settingsService.UpdateSettings(models.SiteSettings{
		SiteTitle:       req.SiteTitle,
		Tagline:         req.Tagline,
		AboutBio:        req.AboutBio,
		ContactEmail:    req.ContactEmail,
		SocialInstagram: req.SocialInstagram,
		SocialTwitter:   req.SocialTwitter,
		SocialVimeo:     req.SocialVimeo,
	})
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "更新站点设置失败: "+err.Error(), nil)
		return
	}

	// 丢掉响应缓存里可能存在的旧设置
	middleware.PurgeCache()

	response.Success(c.Ctx, settings)
}
