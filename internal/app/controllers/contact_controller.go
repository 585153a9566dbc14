package controllers

import (
	"portfolio-http-service/internal/domain/models"
	"portfolio-http-service/internal/domain/services"
	"portfolio-http-service/internal/domain/services/container"
	"portfolio-http-service/internal/error/code"
	"portfolio-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// ContactController 联系消息控制器
type ContactController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewContactController 创建一个新的联系消息控制器
func NewContactController(ctx *gin.Context, container *container.ServiceContainer) *ContactController {
	return &ContactController{
		Ctx:       ctx,
		Container: container,
	}
}

// ContactRequest 联系消息提交请求
type ContactRequest struct {
	Name    string `json:"name" binding:"required" example:"Jane Doe"`
	Email   string `json:"email" binding:"required,email" example:"jane@example.com"`
	Subject string `json:"subject" binding:"required" example:"Booking inquiry"`
	Message string `json:"message" binding:"required"`
}

// HandleContactFunc 返回一个处理联系消息请求的Gin处理函数
func HandleContactFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewContactController(ctx, container)

		switch method {
		case "submitMessage":
			controller.SubmitMessage()
		case "listMessages":
			controller.ListMessages()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. SubmitMessage 提交联系消息（公开接口）
// @Summary      提交联系消息
// @Description  访客提交联系消息，消息初始为未读
// @Tags         Contact
// @Accept       json
// @Produce      json
// @Param        request body ContactRequest true "联系消息"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /contact [post]
func (c *ContactController) SubmitMessage() {
	var req ContactRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	message := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	contactService := c.Container.GetService("contact").(services.InterfaceContactService)
	if err := contactService.CreateMessage(&message); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "保存联系消息失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, message)
}

// 2. ListMessages 获取联系消息列表（需要认证）
// @Summary      获取联系消息列表
// @Description  按提交时间倒序返回最近的联系消息
// @Tags         Contact
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /contact/messages [get]
// @Security     BearerAuth
func (c *ContactController) ListMessages() {
	contactService := c.Container.GetService("contact").(services.InterfaceContactService)
	messages, err := contactService.ListMessages()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询联系消息失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total": len(messages),
		"data":  messages,
	})
}
