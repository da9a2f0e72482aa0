package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yamdb-team/yamdb-api/internal/dto"
	"github.com/yamdb-team/yamdb-api/internal/service"
	"github.com/yamdb-team/yamdb-api/pkg/response"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseValidationError(c, err)
		return
	}

	resp, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Token(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseValidationError(c, err)
		return
	}

	resp, err := h.service.Token(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
