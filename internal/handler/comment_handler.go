package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yamdb-team/yamdb-api/internal/dto"
	"github.com/yamdb-team/yamdb-api/internal/service"
	"github.com/yamdb-team/yamdb-api/pkg/response"
)

type CommentHandler struct {
	service service.CommentService
}

func NewCommentHandler(service service.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	titleID, ok := parseUUIDParam(c, "title_id")
	if !ok {
		return
	}
	reviewID, ok := parseUUIDParam(c, "review_id")
	if !ok {
		return
	}

	comments, err := h.service.List(c.Request.Context(), titleID, reviewID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	titleID, ok := parseUUIDParam(c, "title_id")
	if !ok {
		return
	}
	reviewID, ok := parseUUIDParam(c, "review_id")
	if !ok {
		return
	}

	authorID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseValidationError(c, err)
		return
	}

	comment, err := h.service.Create(c.Request.Context(), titleID, reviewID, authorID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) GetComment(c *gin.Context) {
	titleID, ok := parseUUIDParam(c, "title_id")
	if !ok {
		return
	}
	reviewID, ok := parseUUIDParam(c, "review_id")
	if !ok {
		return
	}
	commentID, ok := parseUUIDParam(c, "comment_id")
	if !ok {
		return
	}

	comment, err := h.service.Get(c.Request.Context(), titleID, reviewID, commentID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	titleID, ok := parseUUIDParam(c, "title_id")
	if !ok {
		return
	}
	reviewID, ok := parseUUIDParam(c, "review_id")
	if !ok {
		return
	}
	commentID, ok := parseUUIDParam(c, "comment_id")
	if !ok {
		return
	}

	actorID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseValidationError(c, err)
		return
	}

	comment, err := h.service.Update(c.Request.Context(), titleID, reviewID, commentID, actorID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	titleID, ok := parseUUIDParam(c, "title_id")
	if !ok {
		return
	}
	reviewID, ok := parseUUIDParam(c, "review_id")
	if !ok {
		return
	}
	commentID, ok := parseUUIDParam(c, "comment_id")
	if !ok {
		return
	}

	actorID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), titleID, reviewID, commentID, actorID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
