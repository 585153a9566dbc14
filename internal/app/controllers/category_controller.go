package controllers

import (
	"portfolio-http-service/internal/domain/services"
	"portfolio-http-service/internal/domain/services/container"
	"portfolio-http-service/internal/error/code"
	"portfolio-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// CategoryController 分类控制器
type CategoryController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewCategoryController 创建一个新的分类控制器
func NewCategoryController(ctx *gin.Context, container *container.ServiceContainer) *CategoryController {
	return &CategoryController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleCategoryFunc 返回一个处理分类请求的Gin处理函数
func HandleCategoryFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCategoryController(ctx, container)

		switch method {
		case "getCategories":
			controller.GetCategories()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetCategories 获取分类统计
// @Summary      获取分类统计
// @Description  按分类聚合存活媒体的数量，名称升序；每次请求实时计算
// @Tags         Category
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /categories [get]
func (c *CategoryController) GetCategories() {
	categoryService := c.Container.GetService("category").(services.InterfaceCategoryService)
	categories, err := categoryService.ComputeCategories()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询分类统计失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, categories)
}
