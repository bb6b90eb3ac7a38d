package controller

import (
	"github.com/gin-gonic/gin"

	"lumina_lms_backend/internal/service"
	"lumina_lms_backend/internal/util"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
	AuthService       *service.AuthService
}

func NewAssessmentController(assessmentService *service.AssessmentService, authService *service.AuthService) *AssessmentController {
	return &AssessmentController{
		AssessmentService: assessmentService,
		AuthService:       authService,
	}
}

// Submit godoc
// @Summary Submit an assignment
// @Description Appends a pending submission; resubmissions are retained
// @Tags assessment
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.SubmitRequest true "Submission"
// @Success 201 {object} util.Response{data=model.Submission}
// @Failure 400 {object} util.Response
// @Router /api/submissions [post]
func (c *AssessmentController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student, err := c.AuthService.GetProfile(claims.UserID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	submission, err := c.AssessmentService.Submit(student, req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, submission)
}

// GetSubmissions godoc
// @Summary List submissions
// @Description Instructor view; optional ?status=pending|graded filter
// @Tags assessment
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Status filter"
// @Success 200 {object} util.Response{data=[]model.Submission}
// @Router /api/submissions [get]
func (c *AssessmentController) GetSubmissions(ctx *gin.Context) {
	submissions, err := c.AssessmentService.Submissions(ctx.Query("status"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, submissions)
}

// GetMySubmissions godoc
// @Summary The caller's submissions
// @Description Optional ?lessonId= narrows to one lesson
// @Tags assessment
// @Produce json
// @Security ApiKeyAuth
// @Param lessonId query string false "Lesson id"
// @Success 200 {object} util.Response{data=[]model.Submission}
// @Router /api/submissions/my [get]
func (c *AssessmentController) GetMySubmissions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	submissions, err := c.AssessmentService.StudentSubmissions(claims.UserID, ctx.Query("lessonId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, submissions)
}

type GradeRequest struct {
	Grade    *int   `json:"grade" binding:"required"`
	Feedback string `json:"feedback"`
}

// Grade godoc
// @Summary Grade a submission
// @Description One-way pending to graded transition; grading twice is rejected
// @Tags assessment
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Submission id"
// @Param body body GradeRequest true "Grade and feedback"
// @Success 200 {object} util.Response{data=model.Submission}
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/submissions/{id}/grade [patch]
func (c *AssessmentController) Grade(ctx *gin.Context) {
	var req GradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submission, err := c.AssessmentService.Grade(ctx.Param("id"), *req.Grade, req.Feedback)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, submission)
}
