package repository

import (
	"time"

	"lumina_lms_backend/internal/model"
	"lumina_lms_backend/pkg/database"
)

type EnrollmentRepository struct {
	DB *database.DB
}

func NewEnrollmentRepository(db *database.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) FindByUser(userID string) ([]model.Enrollment, error) {
	r.DB.Enrollments.RLock()
	defer r.DB.Enrollments.RUnlock()

	var out []model.Enrollment
	for _, e := range r.DB.Enrollments.Rows {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *EnrollmentRepository) Find(userID, courseID string) (model.Enrollment, bool) {
	r.DB.Enrollments.RLock()
	defer r.DB.Enrollments.RUnlock()

	for _, e := range r.DB.Enrollments.Rows {
		if e.UserID == userID && e.CourseID == courseID {
			return *e, true
		}
	}
	return model.Enrollment{}, false
}

// CreateIfAbsent makes enrollment idempotent: a user is never enrolled
// in the same course twice.
func (r *EnrollmentRepository) CreateIfAbsent(userID, courseID string, progress int) bool {
	r.DB.Enrollments.Lock()
	defer r.DB.Enrollments.Unlock()

	for _, e := range r.DB.Enrollments.Rows {
		if e.UserID == userID && e.CourseID == courseID {
			return false
		}
	}
	r.DB.Enrollments.Rows = append(r.DB.Enrollments.Rows, &model.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		Progress:   progress,
		EnrolledAt: time.Now(),
	})
	return true
}

// SetProgress updates an existing enrollment, or creates one when the
// caller reports progress on a course the user never explicitly joined
// (no dangling progress).
func (r *EnrollmentRepository) SetProgress(userID, courseID string, progress int) {
	r.DB.Enrollments.Lock()
	defer r.DB.Enrollments.Unlock()

	for _, e := range r.DB.Enrollments.Rows {
		if e.UserID == userID && e.CourseID == courseID {
			e.Progress = progress
			return
		}
	}
	if progress > 0 {
		r.DB.Enrollments.Rows = append(r.DB.Enrollments.Rows, &model.Enrollment{
			UserID:     userID,
			CourseID:   courseID,
			Progress:   progress,
			EnrolledAt: time.Now(),
		})
	}
}
