package handler

import (
	"net/http"
	"time"

	"github.com/N05TR4/gdt-sistema/internal/platform/clock"

	"github.com/gin-gonic/gin"
)

const ServiceName = "gdt-declarations"

type HealthResponse struct {
	Status    string `json:"status" example:"Healthy"`
	Timestamp string `json:"timestamp" example:"2025-03-05T14:00:00Z"`
	Service   string `json:"service" example:"gdt-declarations"`
}

type HealthHandler struct {
	clock clock.Clock
}

func NewHealthHandler(clk clock.Clock) *HealthHandler {
	if clk == nil {
		clk = clock.Real()
	}
	return &HealthHandler{clock: clk}
}

func (h *HealthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", h.Health)
}

// Health reports liveness
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "Healthy",
		Timestamp: h.clock.Now().UTC().Format(time.RFC3339),
		Service:   ServiceName,
	})
}
