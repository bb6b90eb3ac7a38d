package service

import (
	"strings"
	"time"

	"lumina_lms_backend/internal/model"
	"lumina_lms_backend/internal/repository"
	"lumina_lms_backend/internal/util"
)

// AssessmentService owns submissions and the grading transition. It
// reads lesson identity by id only; nothing here dereferences the
// catalog.
type AssessmentService struct {
	SubmissionRepo *repository.SubmissionRepository
}

func NewAssessmentService(submissionRepo *repository.SubmissionRepository) *AssessmentService {
	return &AssessmentService{SubmissionRepo: submissionRepo}
}

type SubmitRequest struct {
	LessonID string `json:"lessonId" binding:"required"`
	Content  string `json:"content" binding:"required"`
	FileName string `json:"fileName"`
}

// Submit appends a pending submission. Resubmission for the same
// lesson is allowed and retained; the query surface returns all of
// them in submission order.
func (s *AssessmentService) Submit(student *model.User, req SubmitRequest) (*model.Submission, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, util.ErrEmptyField
	}

	submission := &model.Submission{
		ID:          model.NewID(),
		LessonID:    req.LessonID,
		StudentID:   student.ID,
		StudentName: student.Name,
		SubmittedAt: time.Now(),
		Content:     req.Content,
		FileName:    req.FileName,
		Status:      model.SubmissionPending,
	}
	if err := s.SubmissionRepo.Create(submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// Grade moves a pending submission to graded with the given grade and
// feedback. Grading a graded submission fails; there is no un-grade.
func (s *AssessmentService) Grade(id string, grade int, feedback string) (*model.Submission, error) {
	if grade < 0 || grade > 100 {
		return nil, util.ErrInvalidGrade
	}
	return s.SubmissionRepo.Grade(id, grade, feedback)
}

func (s *AssessmentService) Submissions(status string) ([]model.Submission, error) {
	if status == "" {
		return s.SubmissionRepo.FindAll()
	}
	return s.SubmissionRepo.FindByStatus(model.SubmissionStatus(status))
}

func (s *AssessmentService) StudentSubmissions(studentID, lessonID string) ([]model.Submission, error) {
	if lessonID != "" {
		return s.SubmissionRepo.FindByLessonAndStudent(lessonID, studentID)
	}
	return s.SubmissionRepo.FindByStudent(studentID)
}
