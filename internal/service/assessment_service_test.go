package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumina_lms_backend/internal/model"
	"lumina_lms_backend/internal/repository"
	"lumina_lms_backend/internal/util"
	"lumina_lms_backend/pkg/database"
)

func newAssessmentService(t *testing.T) *AssessmentService {
	t.Helper()
	db := database.Open()
	require.NoError(t, database.Seed(db))
	return NewAssessmentService(repository.NewSubmissionRepository(db))
}

func TestSubmitThenGrade(t *testing.T) {
	s := newAssessmentService(t)
	student, err := seededUser("u1")
	require.NoError(t, err)

	submission, err := s.Submit(student, SubmitRequest{
		LessonID: "l5",
		Content:  "My answers to the reusability quiz.",
	})
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionPending, submission.Status)
	assert.Nil(t, submission.Grade)

	before, err := s.Submissions("")
	require.NoError(t, err)

	graded, err := s.Grade(submission.ID, 88, "Solid reasoning throughout.")
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionGraded, graded.Status)
	require.NotNil(t, graded.Grade)
	assert.Equal(t, 88, *graded.Grade)
	assert.Equal(t, "Solid reasoning throughout.", graded.Feedback)

	// Grading mutates in place; the list does not grow.
	after, err := s.Submissions("")
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestGradeIsOneWay(t *testing.T) {
	s := newAssessmentService(t)

	_, err := s.Grade("s1", 75, "Good essay.")
	require.NoError(t, err)

	_, err = s.Grade("s1", 90, "Actually even better.")
	assert.ErrorIs(t, err, util.ErrAlreadyGraded)

	// The first grade sticks.
	subs, err := s.Submissions(string(model.SubmissionGraded))
	require.NoError(t, err)
	require.Len(t, subs, 1)
	require.NotNil(t, subs[0].Grade)
	assert.Equal(t, 75, *subs[0].Grade)
}

func TestGradeRange(t *testing.T) {
	s := newAssessmentService(t)

	_, err := s.Grade("s1", -1, "")
	assert.ErrorIs(t, err, util.ErrInvalidGrade)

	_, err = s.Grade("s1", 101, "")
	assert.ErrorIs(t, err, util.ErrInvalidGrade)

	// Out-of-range attempts must not consume the pending state.
	subs, err := s.Submissions(string(model.SubmissionPending))
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestGradeUnknownSubmission(t *testing.T) {
	s := newAssessmentService(t)

	_, err := s.Grade("missing", 50, "")
	assert.ErrorIs(t, err, util.ErrSubmissionNotFound)
}

func TestSubmitRejectsEmptyContent(t *testing.T) {
	s := newAssessmentService(t)
	student, err := seededUser("u1")
	require.NoError(t, err)

	_, err = s.Submit(student, SubmitRequest{LessonID: "l5", Content: "   "})
	assert.ErrorIs(t, err, util.ErrEmptyField)
}

func TestStudentSubmissionsFilter(t *testing.T) {
	s := newAssessmentService(t)
	student, err := seededUser("u1")
	require.NoError(t, err)

	_, err = s.Submit(student, SubmitRequest{LessonID: "l5", Content: "quiz answers"})
	require.NoError(t, err)
	_, err = s.Submit(student, SubmitRequest{LessonID: "l5", Content: "revised quiz answers"})
	require.NoError(t, err)

	all, err := s.StudentSubmissions("u1", "")
	require.NoError(t, err)
	assert.Len(t, all, 3) // seeded s1 plus the two above

	byLesson, err := s.StudentSubmissions("u1", "l5")
	require.NoError(t, err)
	assert.Len(t, byLesson, 2)

	none, err := s.StudentSubmissions("u2", "")
	require.NoError(t, err)
	assert.Empty(t, none)
}
