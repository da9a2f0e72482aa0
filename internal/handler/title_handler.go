package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yamdb-team/yamdb-api/internal/dto"
	"github.com/yamdb-team/yamdb-api/internal/repository"
	"github.com/yamdb-team/yamdb-api/internal/service"
	"github.com/yamdb-team/yamdb-api/pkg/response"
)

type TitleHandler struct {
	service service.TitleService
}

func NewTitleHandler(service service.TitleService) *TitleHandler {
	return &TitleHandler{service: service}
}

func (h *TitleHandler) ListTitles(c *gin.Context) {
	var query dto.TitleFilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ResponseValidationError(c, err)
		return
	}

	titles, err := h.service.List(c.Request.Context(), repository.TitleFilter{
		Category: query.Category,
		Genre:    query.Genre,
		Name:     query.Name,
		Year:     query.Year,
	})
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, titles)
}

func (h *TitleHandler) CreateTitle(c *gin.Context) {
	var req dto.CreateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseValidationError(c, err)
		return
	}

	title, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, title)
}

func (h *TitleHandler) GetTitle(c *gin.Context) {
	titleID, ok := parseUUIDParam(c, "title_id")
	if !ok {
		return
	}

	title, err := h.service.Get(c.Request.Context(), titleID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, title)
}

func (h *TitleHandler) UpdateTitle(c *gin.Context) {
	titleID, ok := parseUUIDParam(c, "title_id")
	if !ok {
		return
	}

	var req dto.UpdateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseValidationError(c, err)
		return
	}

	title, err := h.service.Update(c.Request.Context(), titleID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, title)
}

func (h *TitleHandler) DeleteTitle(c *gin.Context) {
	titleID, ok := parseUUIDParam(c, "title_id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), titleID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
