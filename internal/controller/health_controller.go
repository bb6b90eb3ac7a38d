package controller

import (
	"github.com/gin-gonic/gin"

	"lumina_lms_backend/internal/util"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// HealthCheck godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} util.Response{data=object}
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{"status": "ok"})
}
