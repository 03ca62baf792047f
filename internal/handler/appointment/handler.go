package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/handler"
	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/model"
	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/service/appointment"
)

type Handler struct {
	service *appointment.Service
}

func NewHandler(service *appointment.Service) *Handler {
	return &Handler{service: service}
}

// ListAppointments supports ?date=, ?from=&to=, ?client_id= and ?status=
// filters; without query parameters it returns the full list.
func (h *Handler) ListAppointments(c *gin.Context) {
	ctx := c.Request.Context()
	userID := handler.UserID(c)

	switch {
	case c.Query("date") != "":
		c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.ListByDate(ctx, userID, c.Query("date"))))
	case c.Query("from") != "" && c.Query("to") != "":
		c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.ListByDateRange(ctx, userID, c.Query("from"), c.Query("to"))))
	case c.Query("client_id") != "":
		c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.ListByClient(ctx, userID, c.Query("client_id"))))
	case c.Query("status") != "":
		c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.ListByStatus(ctx, userID, model.AppointmentStatus(c.Query("status")))))
	default:
		c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.List(ctx, userID)))
	}
}

func (h *Handler) GetAppointment(c *gin.Context) {
	appointment, err := h.service.Get(c.Request.Context(), handler.UserID(c), c.Param("id"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointment))
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	appointment, err := h.service.Create(c.Request.Context(), handler.UserID(c), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(appointment))
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	appointment, err := h.service.Update(c.Request.Context(), handler.UserID(c), c.Param("id"), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointment))
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	deleted := h.service.Delete(c.Request.Context(), handler.UserID(c), c.Param("id"))
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"deleted": deleted}))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.POST("", h.CreateAppointment)
		appointments.GET("", h.ListAppointments)
		appointments.GET("/:id", h.GetAppointment)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.DELETE("/:id", h.DeleteAppointment)
	}
}
