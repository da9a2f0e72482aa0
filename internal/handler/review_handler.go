package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yamdb-team/yamdb-api/internal/dto"
	"github.com/yamdb-team/yamdb-api/internal/service"
	"github.com/yamdb-team/yamdb-api/pkg/response"
)

type ReviewHandler struct {
	service service.ReviewService
}

func NewReviewHandler(service service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func (h *ReviewHandler) ListReviews(c *gin.Context) {
	titleID, ok := parseUUIDParam(c, "title_id")
	if !ok {
		return
	}

	reviews, err := h.service.List(c.Request.Context(), titleID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	titleID, ok := parseUUIDParam(c, "title_id")
	if !ok {
		return
	}

	authorID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseValidationError(c, err)
		return
	}

	review, err := h.service.Create(c.Request.Context(), titleID, authorID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	titleID, ok := parseUUIDParam(c, "title_id")
	if !ok {
		return
	}
	reviewID, ok := parseUUIDParam(c, "review_id")
	if !ok {
		return
	}

	review, err := h.service.Get(c.Request.Context(), titleID, reviewID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	titleID, ok := parseUUIDParam(c, "title_id")
	if !ok {
		return
	}
	reviewID, ok := parseUUIDParam(c, "review_id")
	if !ok {
		return
	}

	actorID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseValidationError(c, err)
		return
	}

	review, err := h.service.Update(c.Request.Context(), titleID, reviewID, actorID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	titleID, ok := parseUUIDParam(c, "title_id")
	if !ok {
		return
	}
	reviewID, ok := parseUUIDParam(c, "review_id")
	if !ok {
		return
	}

	actorID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), titleID, reviewID, actorID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
