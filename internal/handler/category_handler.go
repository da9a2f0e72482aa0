package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yamdb-team/yamdb-api/internal/dto"
	"github.com/yamdb-team/yamdb-api/internal/service"
	"github.com/yamdb-team/yamdb-api/pkg/response"
)

type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(service service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseValidationError(c, err)
		return
	}

	category, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
