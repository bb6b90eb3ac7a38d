package controller

import (
	"github.com/gin-gonic/gin"

	"lumina_lms_backend/internal/service"
	"lumina_lms_backend/internal/util"
)

type CommunityController struct {
	CommunityService *service.CommunityService
	AuthService      *service.AuthService
}

func NewCommunityController(communityService *service.CommunityService, authService *service.AuthService) *CommunityController {
	return &CommunityController{
		CommunityService: communityService,
		AuthService:      authService,
	}
}

// GetPosts godoc
// @Summary Community feed
// @Tags community
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Post}
// @Router /api/community/posts [get]
func (c *CommunityController) GetPosts(ctx *gin.Context) {
	posts, err := c.CommunityService.Posts()
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, posts)
}

type PostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CreatePost godoc
// @Summary Create a post
// @Tags community
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body PostRequest true "Title and content"
// @Success 201 {object} util.Response{data=model.Post}
// @Failure 400 {object} util.Response
// @Router /api/community/posts [post]
func (c *CommunityController) CreatePost(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req PostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	author, err := c.AuthService.GetProfile(claims.UserID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	post, err := c.CommunityService.CreatePost(author, req.Title, req.Content)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, post)
}

// ToggleLike godoc
// @Summary Like or unlike a post
// @Tags community
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Post id"
// @Success 200 {object} util.Response{data=model.Post}
// @Failure 404 {object} util.Response
// @Router /api/community/posts/{id}/like [post]
func (c *CommunityController) ToggleLike(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	post, err := c.CommunityService.ToggleLike(ctx.Param("id"), claims.UserID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, post)
}

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// AddComment godoc
// @Summary Comment on a post
// @Tags community
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Post id"
// @Param body body CommentRequest true "Comment content"
// @Success 201 {object} util.Response{data=model.Comment}
// @Failure 404 {object} util.Response
// @Router /api/community/posts/{id}/comments [post]
func (c *CommunityController) AddComment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	author, err := c.AuthService.GetProfile(claims.UserID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	comment, err := c.CommunityService.AddComment(ctx.Param("id"), author, req.Content)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, comment)
}

// AddReply godoc
// @Summary Reply to a comment
// @Description Replies attach to the named comment only; one level deep
// @Tags community
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Post id"
// @Param commentId path string true "Comment id"
// @Param body body CommentRequest true "Reply content"
// @Success 201 {object} util.Response{data=model.Reply}
// @Failure 404 {object} util.Response
// @Router /api/community/posts/{id}/comments/{commentId}/replies [post]
func (c *CommunityController) AddReply(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	author, err := c.AuthService.GetProfile(claims.UserID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	reply, err := c.CommunityService.AddReply(ctx.Param("id"), ctx.Param("commentId"), author, req.Content)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, reply)
}

// Share godoc
// @Summary Shareable post URL
// @Description Deterministic URL for external sharing; no state changes
// @Tags community
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Post id"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/community/posts/{id}/share [get]
func (c *CommunityController) Share(ctx *gin.Context) {
	url, err := c.CommunityService.ShareURL(ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"url": url})
}
