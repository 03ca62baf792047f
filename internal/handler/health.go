package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, NewSuccessResponse(gin.H{"status": "healthy"}))
}

// ReadinessCheck has nothing external to probe; the store is in-process.
func ReadinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, NewSuccessResponse(gin.H{"status": "ready"}))
}
