package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"lumina_lms_backend/internal/util"
)

// handleServiceError maps service sentinels onto the response
// envelope: unknown ids are 404, invalid input is 400, the one-way
// grading conflict is 409.
func handleServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrCourseNotFound),
		errors.Is(err, util.ErrModuleNotFound),
		errors.Is(err, util.ErrSubmissionNotFound),
		errors.Is(err, util.ErrPostNotFound),
		errors.Is(err, util.ErrCommentNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrEmptyField),
		errors.Is(err, util.ErrInvalidGrade),
		errors.Is(err, util.ErrInvalidLesson),
		errors.Is(err, util.ErrInvalidEvent):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrAlreadyGraded):
		util.Conflict(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
