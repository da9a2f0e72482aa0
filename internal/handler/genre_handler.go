package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yamdb-team/yamdb-api/internal/dto"
	"github.com/yamdb-team/yamdb-api/internal/service"
	"github.com/yamdb-team/yamdb-api/pkg/response"
)

type GenreHandler struct {
	service service.GenreService
}

func NewGenreHandler(service service.GenreService) *GenreHandler {
	return &GenreHandler{service: service}
}

func (h *GenreHandler) ListGenres(c *gin.Context) {
	genres, err := h.service.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, genres)
}

func (h *GenreHandler) CreateGenre(c *gin.Context) {
	var req dto.CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseValidationError(c, err)
		return
	}

	genre, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, genre)
}

func (h *GenreHandler) DeleteGenre(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
