package client

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/handler"
	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/model"
	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/service/client"
)

type Handler struct {
	service *client.Service
}

func NewHandler(service *client.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListClients(c *gin.Context) {
	userID := handler.UserID(c)

	if q, ok := c.GetQuery("q"); ok {
		c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.Search(c.Request.Context(), userID, q)))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.List(c.Request.Context(), userID)))
}

func (h *Handler) GetClient(c *gin.Context) {
	client, err := h.service.Get(c.Request.Context(), handler.UserID(c), c.Param("id"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(client))
}

func (h *Handler) CreateClient(c *gin.Context) {
	var req model.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	client, err := h.service.Create(c.Request.Context(), handler.UserID(c), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(client))
}

func (h *Handler) UpdateClient(c *gin.Context) {
	var req model.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	client, err := h.service.Update(c.Request.Context(), handler.UserID(c), c.Param("id"), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(client))
}

func (h *Handler) DeleteClient(c *gin.Context) {
	deleted := h.service.Delete(c.Request.Context(), handler.UserID(c), c.Param("id"))
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"deleted": deleted}))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	clients := r.Group("/clients")
	{
		clients.POST("", h.CreateClient)
		clients.GET("", h.ListClients)
		clients.GET("/:id", h.GetClient)
		clients.PUT("/:id", h.UpdateClient)
		clients.DELETE("/:id", h.DeleteClient)
	}
}
