package model

import "time"

type SubmissionStatus string

const (
	SubmissionPending SubmissionStatus = "pending"
	SubmissionGraded  SubmissionStatus = "graded"
)

// Submission is a learner's response to an assignment lesson. Grade
// and Feedback are set exactly once, when the status moves from
// pending to graded; there is no path back.
type Submission struct {
	ID          string           `json:"id"`
	LessonID    string           `json:"lessonId"`
	StudentID   string           `json:"studentId"`
	StudentName string           `json:"studentName"`
	SubmittedAt time.Time        `json:"submittedAt"`
	Content     string           `json:"content"`
	FileName    string           `json:"fileName,omitempty"`
	Status      SubmissionStatus `json:"status"`
	Grade       *int             `json:"grade,omitempty"`
	Feedback    string           `json:"feedback,omitempty"`
}
