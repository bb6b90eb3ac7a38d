package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrModuleNotFound     = errors.New("module not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrCommentNotFound    = errors.New("comment not found")

	ErrAlreadyGraded = errors.New("submission already graded")
	ErrInvalidGrade  = errors.New("grade must be between 0 and 100")
	ErrEmptyField    = errors.New("required field is empty")
	ErrInvalidLesson = errors.New("lesson payload does not match its type")
	ErrInvalidEvent  = errors.New("unknown calendar event type")
)
