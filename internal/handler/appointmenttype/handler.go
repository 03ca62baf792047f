package appointmenttype

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/handler"
	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/model"
	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/service/appointmenttype"
)

type Handler struct {
	service *appointmenttype.Service
}

func NewHandler(service *appointmenttype.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListTypes(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.List(c.Request.Context(), handler.UserID(c))))
}

func (h *Handler) GetType(c *gin.Context) {
	appointmentType, err := h.service.Get(c.Request.Context(), handler.UserID(c), c.Param("id"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointmentType))
}

func (h *Handler) CreateType(c *gin.Context) {
	var req model.CreateAppointmentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	appointmentType, err := h.service.Create(c.Request.Context(), handler.UserID(c), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(appointmentType))
}

func (h *Handler) UpdateType(c *gin.Context) {
	var req model.UpdateAppointmentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	appointmentType, err := h.service.Update(c.Request.Context(), handler.UserID(c), c.Param("id"), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointmentType))
}

func (h *Handler) DeleteType(c *gin.Context) {
	deleted := h.service.Delete(c.Request.Context(), handler.UserID(c), c.Param("id"))
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"deleted": deleted}))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	types := r.Group("/appointment-types")
	{
		types.POST("", h.CreateType)
		types.GET("", h.ListTypes)
		types.GET("/:id", h.GetType)
		types.PUT("/:id", h.UpdateType)
		types.DELETE("/:id", h.DeleteType)
	}
}
