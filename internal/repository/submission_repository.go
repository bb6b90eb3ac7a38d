package repository

import (
	"lumina_lms_backend/internal/model"
	"lumina_lms_backend/internal/util"
	"lumina_lms_backend/pkg/database"
)

type SubmissionRepository struct {
	DB *database.DB
}

func NewSubmissionRepository(db *database.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func cloneSubmission(s *model.Submission) model.Submission {
	cp := *s
	if s.Grade != nil {
		g := *s.Grade
		cp.Grade = &g
	}
	return cp
}

func (r *SubmissionRepository) Create(s *model.Submission) error {
	r.DB.Submissions.Lock()
	defer r.DB.Submissions.Unlock()

	cp := cloneSubmission(s)
	r.DB.Submissions.Rows = append(r.DB.Submissions.Rows, &cp)
	return nil
}

func (r *SubmissionRepository) FindAll() ([]model.Submission, error) {
	r.DB.Submissions.RLock()
	defer r.DB.Submissions.RUnlock()

	out := make([]model.Submission, 0, len(r.DB.Submissions.Rows))
	for _, s := range r.DB.Submissions.Rows {
		out = append(out, cloneSubmission(s))
	}
	return out, nil
}

func (r *SubmissionRepository) FindByID(id string) (*model.Submission, error) {
	r.DB.Submissions.RLock()
	defer r.DB.Submissions.RUnlock()

	for _, s := range r.DB.Submissions.Rows {
		if s.ID == id {
			cp := cloneSubmission(s)
			return &cp, nil
		}
	}
	return nil, util.ErrSubmissionNotFound
}

func (r *SubmissionRepository) FindByStatus(status model.SubmissionStatus) ([]model.Submission, error) {
	r.DB.Submissions.RLock()
	defer r.DB.Submissions.RUnlock()

	var out []model.Submission
	for _, s := range r.DB.Submissions.Rows {
		if s.Status == status {
			out = append(out, cloneSubmission(s))
		}
	}
	return out, nil
}

// FindByLessonAndStudent returns every retained submission for the
// pair, in submission order; the caller decides which one is relevant.
func (r *SubmissionRepository) FindByLessonAndStudent(lessonID, studentID string) ([]model.Submission, error) {
	r.DB.Submissions.RLock()
	defer r.DB.Submissions.RUnlock()

	var out []model.Submission
	for _, s := range r.DB.Submissions.Rows {
		if s.LessonID == lessonID && s.StudentID == studentID {
			out = append(out, cloneSubmission(s))
		}
	}
	return out, nil
}

func (r *SubmissionRepository) FindByStudent(studentID string) ([]model.Submission, error) {
	r.DB.Submissions.RLock()
	defer r.DB.Submissions.RUnlock()

	var out []model.Submission
	for _, s := range r.DB.Submissions.Rows {
		if s.StudentID == studentID {
			out = append(out, cloneSubmission(s))
		}
	}
	return out, nil
}

// Grade performs the one-way pending → graded transition atomically.
func (r *SubmissionRepository) Grade(id string, grade int, feedback string) (*model.Submission, error) {
	r.DB.Submissions.Lock()
	defer r.DB.Submissions.Unlock()

	for _, s := range r.DB.Submissions.Rows {
		if s.ID != id {
			continue
		}
		if s.Status == model.SubmissionGraded {
			return nil, util.ErrAlreadyGraded
		}
		s.Status = model.SubmissionGraded
		s.Grade = &grade
		s.Feedback = feedback
		cp := cloneSubmission(s)
		return &cp, nil
	}
	return nil, util.ErrSubmissionNotFound
}
