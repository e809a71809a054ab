package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medibook/hospital-api/internal/handler"
	"github.com/medibook/hospital-api/internal/model"
	"github.com/medibook/hospital-api/internal/service/auth"
	apperrors "github.com/medibook/hospital-api/pkg/errors"
	"github.com/medibook/hospital-api/pkg/validator"
)

type Handler struct {
	service   *auth.Service
	validator validator.Validator
}

func NewHandler(service *auth.Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RenderError(c, apperrors.Validation("invalid request body", err))
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		handler.RenderError(c, apperrors.Validation(err.Error(), err))
		return
	}

	tokens, err := h.service.Signup(c.Request.Context(), &req)
	if err != nil {
		handler.RenderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessMessageResponse("account created successfully", tokens))
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RenderError(c, apperrors.Validation("invalid request body", err))
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		handler.RenderError(c, apperrors.Validation(err.Error(), err))
		return
	}

	tokens, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		handler.RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(tokens))
}
