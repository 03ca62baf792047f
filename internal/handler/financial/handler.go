package financial

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/handler"
	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/model"
	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/service/financial"
)

type Handler struct {
	service *financial.Service
}

func NewHandler(service *financial.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListRecords(c *gin.Context) {
	ctx := c.Request.Context()
	userID := handler.UserID(c)

	switch {
	case c.Query("from") != "" && c.Query("to") != "":
		records, err := h.service.ListByDateRange(ctx, userID, c.Query("from"), c.Query("to"))
		if err != nil {
			handler.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, handler.NewSuccessResponse(records))
	case c.Query("client_id") != "":
		c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.ListByClient(ctx, userID, c.Query("client_id"))))
	case c.Query("category") != "":
		c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.ListByCategory(ctx, userID, c.Query("category"))))
	default:
		c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.List(ctx, userID)))
	}
}

func (h *Handler) GetSummary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context(), handler.UserID(c), c.Query("from"), c.Query("to"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(summary))
}

func (h *Handler) GetRecord(c *gin.Context) {
	record, err := h.service.Get(c.Request.Context(), handler.UserID(c), c.Param("id"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(record))
}

func (h *Handler) CreateRecord(c *gin.Context) {
	var req model.CreateFinancialRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	record, err := h.service.Create(c.Request.Context(), handler.UserID(c), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(record))
}

func (h *Handler) UpdateRecord(c *gin.Context) {
	var req model.UpdateFinancialRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	record, err := h.service.Update(c.Request.Context(), handler.UserID(c), c.Param("id"), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(record))
}

func (h *Handler) DeleteRecord(c *gin.Context) {
	deleted := h.service.Delete(c.Request.Context(), handler.UserID(c), c.Param("id"))
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"deleted": deleted}))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	records := r.Group("/financial-records")
	{
		records.GET("/summary", h.GetSummary)
		records.POST("", h.CreateRecord)
		records.GET("", h.ListRecords)
		records.GET("/:id", h.GetRecord)
		records.PUT("/:id", h.UpdateRecord)
		records.DELETE("/:id", h.DeleteRecord)
	}
}
