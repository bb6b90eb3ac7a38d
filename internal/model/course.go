package model

import (
	"time"

	"github.com/google/uuid"
)

type CourseLevel string

const (
	Beginner     CourseLevel = "Beginner"
	Intermediate CourseLevel = "Intermediate"
	Advanced     CourseLevel = "Advanced"
)

// Course is the canonical catalog entry. Progress is a per-user view
// field filled in from the caller's Enrollment at read time; the
// stored catalog row itself carries no progress.
type Course struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Instructor    string      `json:"instructor"`
	Thumbnail     string      `json:"thumbnail,omitempty"`
	Category      string      `json:"category"`
	Duration      string      `json:"duration"`
	Level         CourseLevel `json:"level"`
	Rating        float64     `json:"rating"`
	TotalStudents int         `json:"totalStudents"`
	Modules       []Module    `json:"modules"`
	Progress      int         `json:"progress"`
	IsPublished   bool        `json:"isPublished"`
}

type Module struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

// Enrollment records that a user joined a course, together with their
// progress through it. The "enrolled list" of a user is computed by
// joining these records against the catalog.
type Enrollment struct {
	UserID     string    `json:"userId"`
	CourseID   string    `json:"courseId"`
	Progress   int       `json:"progress"`
	EnrolledAt time.Time `json:"enrolledAt"`
}

func NewID() string {
	return uuid.NewString()
}
