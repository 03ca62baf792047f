package attachment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/handler"
	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/model"
	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/service/attachment"
)

type Handler struct {
	service *attachment.Service
}

func NewHandler(service *attachment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListAttachments(c *gin.Context) {
	userID := handler.UserID(c)

	if clientID := c.Query("client_id"); clientID != "" {
		c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.ListByClient(c.Request.Context(), userID, clientID)))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.List(c.Request.Context(), userID)))
}

func (h *Handler) GetAttachment(c *gin.Context) {
	attachment, err := h.service.Get(c.Request.Context(), handler.UserID(c), c.Param("id"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(attachment))
}

func (h *Handler) CreateAttachment(c *gin.Context) {
	var req model.CreateAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	attachment, err := h.service.Create(c.Request.Context(), handler.UserID(c), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(attachment))
}

func (h *Handler) DeleteAttachment(c *gin.Context) {
	deleted := h.service.Delete(c.Request.Context(), handler.UserID(c), c.Param("id"))
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"deleted": deleted}))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	attachments := r.Group("/attachments")
	{
		attachments.POST("", h.CreateAttachment)
		attachments.GET("", h.ListAttachments)
		attachments.GET("/:id", h.GetAttachment)
		attachments.DELETE("/:id", h.DeleteAttachment)
	}
}
