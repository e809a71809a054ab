package appointment

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/medibook/hospital-api/internal/handler"
	"github.com/medibook/hospital-api/internal/model"
	"github.com/medibook/hospital-api/internal/service/appointment"
	apperrors "github.com/medibook/hospital-api/pkg/errors"
)

type Handler struct {
	service *appointment.Service
}

func NewHandler(service *appointment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.POST("/schedule", h.Schedule)
		appointments.PATCH("/cancel/:id", h.Cancel)
		appointments.PATCH("/reschedule/:id", h.Reschedule)
		appointments.GET("/user/:userId", h.ListForUser)
		appointments.GET("/user/:userId/summary", h.Summary)
	}
}

func (h *Handler) Schedule(c *gin.Context) {
	var req model.ScheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RenderError(c, apperrors.Validation("invalid request body", err))
		return
	}

	created, err := h.service.Schedule(c.Request.Context(), &req)
	if err != nil {
		handler.RenderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessMessageResponse("appointment scheduled successfully", created))
}

func (h *Handler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handler.RenderError(c, apperrors.Validation("invalid appointment ID", err))
		return
	}

	cancelled, err := h.service.Cancel(c.Request.Context(), id)
	if err != nil {
		handler.RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessageResponse("appointment cancelled successfully", cancelled))
}

func (h *Handler) Reschedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handler.RenderError(c, apperrors.Validation("invalid appointment ID", err))
		return
	}

	var req model.RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RenderError(c, apperrors.Validation("new date is required", err))
		return
	}

	rescheduled, err := h.service.Reschedule(c.Request.Context(), id, req.NewDate)
	if err != nil {
		handler.RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessageResponse("appointment rescheduled successfully", rescheduled))
}

func (h *Handler) ListForUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		handler.RenderError(c, apperrors.Validation("invalid user ID", err))
		return
	}

	appointments, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		handler.RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}

func (h *Handler) Summary(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		handler.RenderError(c, apperrors.Validation("invalid user ID", err))
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), userID, time.Now())
	if err != nil {
		handler.RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(summary))
}
