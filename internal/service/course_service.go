package service

import (
	"strings"

	"lumina_lms_backend/internal/model"
	"lumina_lms_backend/internal/repository"
	"lumina_lms_backend/internal/util"
)

// CourseService is the catalog & enrollment engine. The catalog is
// canonical; per-user enrollment records carry progress, and every
// read joins the two so a course is never stored twice.
type CourseService struct {
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
}

func NewCourseService(courseRepo *repository.CourseRepository, enrollmentRepo *repository.EnrollmentRepository) *CourseService {
	return &CourseService{
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
	}
}

// Catalog returns the course list as seen by userID: drafts are
// filtered out unless includeDrafts (instructor/admin views), and each
// entry carries the caller's own progress.
func (s *CourseService) Catalog(userID string, includeDrafts bool) ([]model.Course, error) {
	courses, err := s.CourseRepo.FindAll()
	if err != nil {
		return nil, err
	}

	out := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		if !c.IsPublished && !includeDrafts {
			continue
		}
		if e, ok := s.EnrollmentRepo.Find(userID, c.ID); ok {
			c.Progress = e.Progress
		}
		out = append(out, c)
	}
	return out, nil
}

// EnrolledCourses joins the user's enrollments against the catalog, in
// enrollment order.
func (s *CourseService) EnrolledCourses(userID string) ([]model.Course, error) {
	enrollments, err := s.EnrollmentRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	out := make([]model.Course, 0, len(enrollments))
	for _, e := range enrollments {
		course, err := s.CourseRepo.FindByID(e.CourseID)
		if err != nil {
			continue
		}
		course.Progress = e.Progress
		out = append(out, *course)
	}
	return out, nil
}

func (s *CourseService) GetCourse(userID, courseID string) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	if e, ok := s.EnrollmentRepo.Find(userID, courseID); ok {
		course.Progress = e.Progress
	}
	return course, nil
}

// Enroll is idempotent: enrolling twice leaves a single record.
func (s *CourseService) Enroll(userID, courseID string) error {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		return err
	}
	s.EnrollmentRepo.CreateIfAbsent(userID, courseID, 0)
	return nil
}

// UpdateProgress clamps to [0,100] and writes the enrollment record.
// Reporting progress > 0 on a course the user never joined enrolls
// them implicitly. Monotonicity is not enforced.
func (s *CourseService) UpdateProgress(userID, courseID string, progress int) (int, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		return 0, err
	}

	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	s.EnrollmentRepo.SetProgress(userID, courseID, progress)
	return progress, nil
}

type CourseRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Duration    string            `json:"duration"`
	Level       model.CourseLevel `json:"level" binding:"required,oneof=Beginner Intermediate Advanced"`
	Thumbnail   string            `json:"thumbnail"`
}

// CreateCourse prepends an unpublished course with no modules; the
// authenticated instructor becomes its instructor of record.
func (s *CourseService) CreateCourse(req CourseRequest, instructorName string) (*model.Course, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, util.ErrEmptyField
	}

	course := &model.Course{
		ID:          model.NewID(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Instructor:  instructorName,
		Thumbnail:   req.Thumbnail,
		Category:    req.Category,
		Duration:    req.Duration,
		Level:       req.Level,
		Modules:     []model.Module{},
		IsPublished: false,
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) AddModule(courseID, title string) (*model.Module, error) {
	if strings.TrimSpace(title) == "" {
		return nil, util.ErrEmptyField
	}

	module := model.Module{
		ID:      model.NewID(),
		Title:   strings.TrimSpace(title),
		Lessons: []model.Lesson{},
	}
	if err := s.CourseRepo.AddModule(courseID, module); err != nil {
		return nil, err
	}
	return &module, nil
}

func (s *CourseService) AddLesson(courseID, moduleID string, lesson model.Lesson) (*model.Lesson, error) {
	if err := validateLesson(&lesson); err != nil {
		return nil, err
	}
	if lesson.ID == "" {
		lesson.ID = model.NewID()
	}
	if err := s.CourseRepo.AddLesson(courseID, moduleID, lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (s *CourseService) SetPublished(courseID string, published bool) error {
	return s.CourseRepo.SetPublished(courseID, published)
}

// validateLesson rejects payloads that do not match the lesson type at
// the authoring boundary; nothing is silently coerced.
func validateLesson(l *model.Lesson) error {
	if strings.TrimSpace(l.Title) == "" {
		return util.ErrEmptyField
	}

	switch l.Type {
	case model.LessonQuiz:
		if len(l.Questions) == 0 {
			return util.ErrInvalidLesson
		}
		for i := range l.Questions {
			q := &l.Questions[i]
			if len(q.Options) < 2 {
				return util.ErrInvalidLesson
			}
			if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
				return util.ErrInvalidLesson
			}
			if q.ID == "" {
				q.ID = model.NewID()
			}
		}
	case model.LessonAssignment:
		if strings.TrimSpace(l.AssignmentInstructions) == "" {
			return util.ErrInvalidLesson
		}
	case model.LessonVideo:
		if strings.TrimSpace(l.VideoURL) == "" {
			return util.ErrInvalidLesson
		}
	case model.LessonReading:
		if strings.TrimSpace(l.Content) == "" {
			return util.ErrInvalidLesson
		}
	default:
		return util.ErrInvalidLesson
	}
	return nil
}
