package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"lumina_lms_backend/internal/service"
	"lumina_lms_backend/internal/util"
)

type GamificationController struct {
	GamificationService *service.GamificationService
}

func NewGamificationController(gamificationService *service.GamificationService) *GamificationController {
	return &GamificationController{GamificationService: gamificationService}
}

// GetBadges godoc
// @Summary The caller's earned badges
// @Tags gamification
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Achievement}
// @Router /api/achievements [get]
func (c *GamificationController) GetBadges(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	badges, err := c.GamificationService.Badges(claims.UserID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, badges)
}

// GetCatalog godoc
// @Summary Full badge catalog
// @Tags gamification
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Achievement}
// @Router /api/achievements/catalog [get]
func (c *GamificationController) GetCatalog(ctx *gin.Context) {
	catalog, err := c.GamificationService.Catalog()
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, catalog)
}

// Delta is a pointer so a zero delta still passes "required".
type PointsRequest struct {
	Delta *int `json:"delta" binding:"required"`
}

// AddPoints godoc
// @Summary Adjust the caller's points
// @Description Unbounded counter; negative deltas are accepted
// @Tags gamification
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body PointsRequest true "Point delta"
// @Success 200 {object} util.Response{data=object}
// @Router /api/achievements/points [post]
func (c *GamificationController) AddPoints(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req PointsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	total, err := c.GamificationService.AddPoints(claims.UserID, *req.Delta)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"points": total})
}

// GetLeaderboard godoc
// @Summary Points leaderboard
// @Tags gamification
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Max entries (default 10)"
// @Success 200 {object} util.Response{data=[]service.LeaderboardEntry}
// @Router /api/achievements/leaderboard [get]
func (c *GamificationController) GetLeaderboard(ctx *gin.Context) {
	limit := 10
	if v := ctx.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := c.GamificationService.Leaderboard(limit)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}
