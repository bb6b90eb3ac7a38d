package controller

import (
	"github.com/gin-gonic/gin"

	"lumina_lms_backend/internal/model"
	"lumina_lms_backend/internal/service"
	"lumina_lms_backend/internal/util"
)

type CourseController struct {
	CourseService *service.CourseService
	AuthService   *service.AuthService
}

func NewCourseController(courseService *service.CourseService, authService *service.AuthService) *CourseController {
	return &CourseController{
		CourseService: courseService,
		AuthService:   authService,
	}
}

// GetCatalog godoc
// @Summary Course catalog
// @Description Published courses with the caller's progress; instructors and admins also see drafts
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses [get]
func (c *CourseController) GetCatalog(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	includeDrafts := claims.Role == model.Instructor || claims.Role == model.Admin
	courses, err := c.CourseService.Catalog(claims.UserID, includeDrafts)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// GetCourse godoc
// @Summary Course detail
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course id"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	course, err := c.CourseService.GetCourse(claims.UserID, ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// GetMyCourses godoc
// @Summary Enrolled courses
// @Description The caller's enrolled list, each entry carrying their progress
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/my/courses [get]
func (c *CourseController) GetMyCourses(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courses, err := c.CourseService.EnrolledCourses(claims.UserID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// Enroll godoc
// @Summary Enroll in a course
// @Description Idempotent; enrolling twice leaves a single enrollment
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.CourseService.Enroll(claims.UserID, ctx.Param("id")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

type ProgressRequest struct {
	Progress int `json:"progress"`
}

// UpdateProgress godoc
// @Summary Report course progress
// @Description Clamped to 0-100; progress on a course not yet joined enrolls implicitly
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course id"
// @Param body body ProgressRequest true "New progress"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/progress [patch]
func (c *CourseController) UpdateProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.CourseService.UpdateProgress(claims.UserID, ctx.Param("id"), req.Progress)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"progress": progress})
}

// CreateCourse godoc
// @Summary Author a new course
// @Description Starts as an unpublished draft with no modules
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CourseRequest true "Course fields"
// @Success 201 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response
// @Router /api/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	instructor, err := c.AuthService.GetProfile(claims.UserID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	course, err := c.CourseService.CreateCourse(req, instructor.Name)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

type ModuleRequest struct {
	Title string `json:"title" binding:"required"`
}

// AddModule godoc
// @Summary Append a module to a course
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course id"
// @Param body body ModuleRequest true "Module title"
// @Success 201 {object} util.Response{data=model.Module}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/modules [post]
func (c *CourseController) AddModule(ctx *gin.Context) {
	var req ModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	module, err := c.CourseService.AddModule(ctx.Param("id"), req.Title)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, module)
}

// AddLesson godoc
// @Summary Append a lesson to a module
// @Description The payload must match the lesson type (quiz questions, assignment instructions, video URL or reading content)
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course id"
// @Param moduleId path string true "Module id"
// @Param body body model.Lesson true "Lesson"
// @Success 201 {object} util.Response{data=model.Lesson}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/modules/{moduleId}/lessons [post]
func (c *CourseController) AddLesson(ctx *gin.Context) {
	var lesson model.Lesson
	if err := ctx.ShouldBindJSON(&lesson); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	created, err := c.CourseService.AddLesson(ctx.Param("id"), ctx.Param("moduleId"), lesson)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, created)
}

type PublishRequest struct {
	IsPublished *bool `json:"isPublished" binding:"required"`
}

// SetPublish godoc
// @Summary Set a course's publish state
// @Description Explicit set, used both for instructor self-publish and admin approve/reject
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course id"
// @Param body body PublishRequest true "Publish flag"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/publish [patch]
func (c *CourseController) SetPublish(ctx *gin.Context) {
	var req PublishRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.CourseService.SetPublished(ctx.Param("id"), *req.IsPublished); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"isPublished": *req.IsPublished})
}
