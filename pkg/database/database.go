package database

import (
	"sync"

	"lumina_lms_backend/internal/model"
)

// DB is the process-memory state tree. Every table is owned by exactly
// one repository; cross-table consistency is the owning service's job,
// performed inside a single critical section on the tables it holds.
type (
	DB struct {
		Users        *UserTable
		Courses      *CourseTable
		Enrollments  *EnrollmentTable
		Submissions  *SubmissionTable
		Posts        *PostTable
		Achievements *AchievementTable
		Certificates *CertificateTable
		Events       *EventTable
	}

	UserTable struct {
		sync.RWMutex
		Rows map[string]*model.User
	}

	CourseTable struct {
		sync.RWMutex
		Rows []*model.Course
	}

	EnrollmentTable struct {
		sync.RWMutex
		Rows []*model.Enrollment
	}

	SubmissionTable struct {
		sync.RWMutex
		Rows []*model.Submission
	}

	PostTable struct {
		sync.RWMutex
		Rows []*model.Post
	}

	AchievementTable struct {
		sync.RWMutex
		Rows []model.Achievement
	}

	CertificateTable struct {
		sync.RWMutex
		Rows []*model.Certificate
	}

	EventTable struct {
		sync.RWMutex
		Rows []*model.CalendarEvent
	}
)

func Open() *DB {
	return &DB{
		Users:        &UserTable{Rows: make(map[string]*model.User)},
		Courses:      &CourseTable{},
		Enrollments:  &EnrollmentTable{},
		Submissions:  &SubmissionTable{},
		Posts:        &PostTable{},
		Achievements: &AchievementTable{},
		Certificates: &CertificateTable{},
		Events:       &EventTable{},
	}
}
