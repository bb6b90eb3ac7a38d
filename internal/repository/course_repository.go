package repository

import (
	"lumina_lms_backend/internal/model"
	"lumina_lms_backend/internal/util"
	"lumina_lms_backend/pkg/database"
)

type CourseRepository struct {
	DB *database.DB
}

func NewCourseRepository(db *database.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func cloneCourse(c *model.Course) model.Course {
	cp := *c
	cp.Modules = make([]model.Module, len(c.Modules))
	for i, m := range c.Modules {
		mod := m
		mod.Lessons = make([]model.Lesson, len(m.Lessons))
		for j, l := range m.Lessons {
			lesson := l
			lesson.Questions = append([]model.QuizQuestion(nil), l.Questions...)
			mod.Lessons[j] = lesson
		}
		cp.Modules[i] = mod
	}
	return cp
}

func (r *CourseRepository) FindAll() ([]model.Course, error) {
	r.DB.Courses.RLock()
	defer r.DB.Courses.RUnlock()

	courses := make([]model.Course, 0, len(r.DB.Courses.Rows))
	for _, c := range r.DB.Courses.Rows {
		courses = append(courses, cloneCourse(c))
	}
	return courses, nil
}

func (r *CourseRepository) FindByID(id string) (*model.Course, error) {
	r.DB.Courses.RLock()
	defer r.DB.Courses.RUnlock()

	for _, c := range r.DB.Courses.Rows {
		if c.ID == id {
			cp := cloneCourse(c)
			return &cp, nil
		}
	}
	return nil, util.ErrCourseNotFound
}

// Create prepends so newly authored courses surface first, matching
// catalog ordering expectations.
func (r *CourseRepository) Create(course *model.Course) error {
	r.DB.Courses.Lock()
	defer r.DB.Courses.Unlock()

	cp := cloneCourse(course)
	r.DB.Courses.Rows = append([]*model.Course{&cp}, r.DB.Courses.Rows...)
	return nil
}

func (r *CourseRepository) AddModule(courseID string, m model.Module) error {
	r.DB.Courses.Lock()
	defer r.DB.Courses.Unlock()

	for _, c := range r.DB.Courses.Rows {
		if c.ID == courseID {
			c.Modules = append(c.Modules, m)
			return nil
		}
	}
	return util.ErrCourseNotFound
}

func (r *CourseRepository) AddLesson(courseID, moduleID string, lesson model.Lesson) error {
	r.DB.Courses.Lock()
	defer r.DB.Courses.Unlock()

	for _, c := range r.DB.Courses.Rows {
		if c.ID != courseID {
			continue
		}
		for i := range c.Modules {
			if c.Modules[i].ID == moduleID {
				c.Modules[i].Lessons = append(c.Modules[i].Lessons, lesson)
				return nil
			}
		}
		return util.ErrModuleNotFound
	}
	return util.ErrCourseNotFound
}

// SetPublished is an explicit set, not a toggle: the same primitive
// backs instructor self-publish and admin approve/reject.
func (r *CourseRepository) SetPublished(courseID string, published bool) error {
	r.DB.Courses.Lock()
	defer r.DB.Courses.Unlock()

	for _, c := range r.DB.Courses.Rows {
		if c.ID == courseID {
			c.IsPublished = published
			return nil
		}
	}
	return util.ErrCourseNotFound
}
