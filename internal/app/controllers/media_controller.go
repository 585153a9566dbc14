package controllers

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"portfolio-http-service/internal/domain/models"
	"portfolio-http-service/internal/domain/services"
	"portfolio-http-service/internal/domain/services/container"
	"portfolio-http-service/internal/error/code"
	"portfolio-http-service/internal/error/response"
	"portfolio-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// InterfaceMediaController 定义媒体控制器接口
type InterfaceMediaController interface {
	UploadMedia()
	GetMediaList()
	GetMedia()
	UpdateMedia()
	DeleteMedia()
}

// MediaController 媒体控制器
type MediaController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewMediaController 创建一个新的媒体控制器
func NewMediaController(ctx *gin.Context, container *container.ServiceContainer) *MediaController {
	return &MediaController{
		Ctx:       ctx,
		Container: container,
	}
}

// UpdateMediaRequest 部分更新媒体请求，省略的字段保持不变
type UpdateMediaRequest struct {
	Title       *string `json:"title" example:"Sunset"`
	Description *string `json:"description" example:"Golden hour at the pier"`
	Category    *string `json:"category" example:"Landscape"`
	Featured    *bool   `json:"featured" example:"true"`
	Order       *int    `json:"order" example:"3"`
}

// HandleMediaFunc 返回一个处理媒体请求的Gin处理函数
func HandleMediaFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewMediaController(ctx, container)

		switch method {
		case "uploadMedia":
			controller.UploadMedia()
		case "getMediaList":
			controller.GetMediaList()
		case "getMedia":
			controller.GetMedia()
		case "updateMedia":
			controller.UpdateMedia()
		case "deleteMedia":
			controller.DeleteMedia()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// failMediaError 把媒体相关的服务错误映射为统一错误码
func failMediaError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMediaNotFound):
		response.Fail(ctx, code.ErrMediaNotFound, nil)
	case errors.Is(err, services.ErrEmptyUpdate):
		response.Fail(ctx, code.ErrEmptyUpdate, nil)
	case errors.Is(err, services.ErrOrderConflict):
		response.Fail(ctx, code.ErrOrderConflict, nil)
	case errors.Is(err, services.ErrAssetTooLarge):
		response.Fail(ctx, code.ErrAssetTooLarge, nil)
	case errors.Is(err, services.ErrAssetDeleteFailed):
		response.Fail(ctx, code.ErrAssetDeleteFailed, nil)
	default:
		response.FailWithMessage(ctx, code.ErrDatabase, "操作失败: "+err.Error(), nil)
	}
}

// 1. UploadMedia 上传媒体
// @Summary      上传媒体
// @Description  multipart上传一个媒体文件及其元数据，文件先落盘再写记录，排序值追加在集合末尾
// @Tags         Media
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "媒体文件"
// @Param        title formData string true "标题"
// @Param        description formData string false "描述"
// @Param        category formData string false "分类, 默认Portrait"
// @Param        media_type formData string false "媒体类型: image或video, 默认image"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      413  {object}  map[string]interface{}
// @Router       /media/upload [post]
// @Security     BearerAuth
func (c *MediaController) UploadMedia() {
	title := strings.TrimSpace(c.Ctx.PostForm("title"))
	if title == "" {
		response.ParamError(c.Ctx, "标题不能为空")
		return
	}
	description := c.Ctx.PostForm("description")
	category := c.Ctx.DefaultPostForm("category", "Portrait")
	mediaType := c.Ctx.DefaultPostForm("media_type", models.MediaTypeImage)
	if !models.IsValidMediaType(mediaType) {
		response.Fail(c.Ctx, code.ErrInvalidMediaType, nil)
		return
	}

	fileHeader, err := c.Ctx.FormFile("file")
	if err != nil {
		response.ParamError(c.Ctx, "缺少上传文件")
		return
	}

	// 超出上限的文件在进入存储前就拒绝，存储侧拷贝时还会再兜底一次
	cfg := c.Container.GetService("config").(*config.Config)
	if fileHeader.Size > cfg.MaxUploadSize {
		response.Fail(c.Ctx, code.ErrAssetTooLarge, nil)
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.Fail(c.Ctx, code.ErrAssetWriteFailed, nil)
		return
	}
	defer src.Close()

	managerService := c.Container.GetService("mediaManager").(services.InterfaceMediaManagerService)
	media, err := managerService.CreateMedia(services.CreateMediaInput{
		Title:       title,
		Description: description,
		Category:    category,
		MediaType:   mediaType,
	}, src, filepath.Ext(fileHeader.Filename))
	if err != nil {
		failMediaError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, media)
}

// 2. GetMediaList 获取媒体列表
// @Summary      获取媒体列表
// @Description  按排序值升序返回媒体，可按分类和精选过滤，最多返回1000条，total为匹配总数
// @Tags         Media
// @Produce      json
// @Param        category query string false "分类过滤"
// @Param        featured query bool false "精选过滤"
// @Success      200  {object}  map[string]interface{}
// @Router       /media [get]
func (c *MediaController) GetMediaList() {
	filter := services.MediaFilter{
		Category: c.Ctx.Query("category"),
	}
	if featuredStr := c.Ctx.Query("featured"); featuredStr != "" {
		featured, err := strconv.ParseBool(featuredStr)
		if err != nil {
			response.ParamError(c.Ctx, "featured参数必须是布尔值")
			return
		}
		filter.Featured = &featured
	}

	mediaService := c.Container.GetService("media").(services.InterfaceMediaService)
	mediaList, total, err := mediaService.List(filter)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询媒体列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total": total,
		"data":  mediaList,
	})
}

// 3. GetMedia 获取媒体详情
// @Summary      获取媒体详情
// @Tags         Media
// @Produce      json
// @Param        id path string true "媒体ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /media/{id} [get]
func (c *MediaController) GetMedia() {
	id := c.Ctx.Param("id")

	mediaService := c.Container.GetService("media").(services.InterfaceMediaService)
	media, err := mediaService.GetMedia(id)
	if err != nil {
		failMediaError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, media)
}

// 4. UpdateMedia 部分更新媒体
// @Summary      部分更新媒体
// @Description  只修改请求中出现的字段，一个字段都不提供则拒绝
// @Tags         Media
// @Accept       json
// @Produce      json
// @Param        id path string true "媒体ID"
// @Param        request body UpdateMediaRequest true "更新字段"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /media/{id} [put]
// @Security     BearerAuth
func (c *MediaController) UpdateMedia() {
	id := c.Ctx.Param("id")

	var req UpdateMediaRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	managerService := c.Container.GetService("mediaManager").(services.InterfaceMediaManagerService)
	media, err := managerService.UpdateMedia(id, services.MediaUpdate{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Featured:     req.Featured,
		DisplayOrder: req.Order,
	})
	if err != nil {
		failMediaError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, media)
}

// 5. DeleteMedia 删除媒体
// @Summary      删除媒体
// @Description  删除媒体记录及其资源文件；先删文件后删记录，文件删除失败时记录保留
// @Tags         Media
// @Produce      json
// @Param        id path string true "媒体ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /media/{id} [delete]
// @Security     BearerAuth
func (c *MediaController) DeleteMedia() {
	id := c.Ctx.Param("id")

	managerService := c.Container.GetService("mediaManager").(services.InterfaceMediaManagerService)
	if err := managerService.DeleteMedia(id); err != nil {
		failMediaError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "媒体已删除"})
}
