package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/medibook/hospital-api/internal/handler"
	"github.com/medibook/hospital-api/internal/model"
	"github.com/medibook/hospital-api/internal/service/health"
	apperrors "github.com/medibook/hospital-api/pkg/errors"
	"github.com/medibook/hospital-api/pkg/validator"
)

type Handler struct {
	service   *health.Service
	validator validator.Validator
}

func NewHandler(service *health.Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Document saves hang off the appointment they belong to.
	r.POST("/appointments/:id/documents", h.SaveReports)

	healthGroup := r.Group("/health")
	{
		healthGroup.GET("/records", h.ListRecords)
		healthGroup.POST("/profile", h.UpsertProfile)
		healthGroup.GET("/profile/:userId", h.GetProfile)
	}
}

func (h *Handler) SaveReports(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handler.RenderError(c, apperrors.Validation("invalid appointment ID", err))
		return
	}

	var req model.SaveReportsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RenderError(c, apperrors.Validation("invalid request body", err))
		return
	}

	record, err := h.service.SaveReports(c.Request.Context(), id, &req)
	if err != nil {
		handler.RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessageResponse("reports saved successfully", record))
}

func (h *Handler) ListRecords(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		handler.RenderError(c, apperrors.Validation("invalid user ID", err))
		return
	}

	records, err := h.service.ListRecords(c.Request.Context(), userID)
	if err != nil {
		handler.RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(records))
}

func (h *Handler) UpsertProfile(c *gin.Context) {
	var req model.UpsertHealthProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RenderError(c, apperrors.Validation("invalid request body", err))
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		handler.RenderError(c, apperrors.Validation(err.Error(), err))
		return
	}

	profile, created, err := h.service.UpsertProfile(c.Request.Context(), &req)
	if err != nil {
		handler.RenderError(c, err)
		return
	}

	status := http.StatusOK
	message := "health profile updated successfully"
	if created {
		status = http.StatusCreated
		message = "health profile added successfully"
	}
	c.JSON(status, handler.NewSuccessMessageResponse(message, profile))
}

func (h *Handler) GetProfile(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		handler.RenderError(c, apperrors.Validation("invalid user ID", err))
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		handler.RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(profile))
}
