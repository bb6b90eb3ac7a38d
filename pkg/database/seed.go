package database

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"lumina_lms_backend/internal/model"
)

// Seed installs the demo dataset: three fixed profiles (one per role),
// the course catalog, community posts, a pending submission and the
// administrative registries. Safe to call once on a fresh DB only.
func Seed(db *DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []*model.User{
		{
			ID:         "u1",
			Name:       "Alex Johnson",
			Email:      "alex@lumina.edu",
			Password:   string(hash),
			Role:       model.Student,
			Avatar:     "https://picsum.photos/id/64/200/200",
			Points:     1250,
			Level:      5,
			Badges:     []string{"quick-learner", "week-streak"},
			Bio:        "Computer Science sophomore passionate about AI and Web Development.",
			Department: "Computer Science",
			Phone:      "+255 123 456 789",
		},
		{
			ID:         "u2",
			Name:       "Sarah Drasner",
			Email:      "sarah@lumina.edu",
			Password:   string(hash),
			Role:       model.Instructor,
			Level:      10,
			Badges:     []string{"top-instructor"},
			Bio:        "Senior Lecturer with 10 years of industry experience in Full Stack Development.",
			Department: "Information Technology",
			Phone:      "+255 987 654 321",
		},
		{
			ID:         "u3",
			Name:       "System Admin",
			Email:      "admin@lumina.edu",
			Password:   string(hash),
			Role:       model.Admin,
			Level:      99,
			Badges:     []string{"admin-access"},
			Department: "IT Support",
		},
	}
	db.Users.Lock()
	for _, u := range users {
		db.Users.Rows[u.ID] = u
	}
	db.Users.Unlock()

	db.Achievements.Lock()
	db.Achievements.Rows = []model.Achievement{
		{ID: "quick-learner", Name: "Quick Learner", Icon: "🚀", Description: "Completed a module in under 1 hour"},
		{ID: "week-streak", Name: "7 Day Streak", Icon: "🔥", Description: "Logged in for 7 consecutive days"},
		{ID: "quiz-master", Name: "Quiz Master", Icon: "🧠", Description: "Scored 100% on a quiz"},
		{ID: "contributor", Name: "Top Contributor", Icon: "💬", Description: "100+ Community posts"},
		{ID: "early-bird", Name: "Early Bird", Icon: "🌅", Description: "Completed a lesson before 8 AM"},
	}
	db.Achievements.Unlock()

	db.Courses.Lock()
	db.Courses.Rows = []*model.Course{
		{
			ID:            "c1",
			Title:         "Advanced React Patterns",
			Description:   "Master modern React with advanced design patterns, performance optimization, and state management techniques.",
			Instructor:    "Sarah Drasner",
			Thumbnail:     "https://picsum.photos/id/1/800/600",
			Category:      "Development",
			Duration:      "6h 30m",
			Level:         model.Advanced,
			Rating:        4.8,
			TotalStudents: 1234,
			IsPublished:   true,
			Modules: []model.Module{
				{
					ID:    "m1",
					Title: "Compound Components",
					Lessons: []model.Lesson{
						{ID: "l1", Title: "Introduction to Compound Components", Type: model.LessonVideo, Duration: "10:00", Completed: true},
						{ID: "l2", Title: "Context API usage", Type: model.LessonVideo, Duration: "15:00", Completed: true},
						{ID: "l3", Title: "Implementation Exercise", Type: model.LessonReading, Duration: "5:00"},
					},
				},
				{
					ID:    "m2",
					Title: "Render Props",
					Lessons: []model.Lesson{
						{ID: "l4", Title: "Why Render Props?", Type: model.LessonVideo, Duration: "12:00"},
						{ID: "l5", Title: "Reusability Patterns", Type: model.LessonQuiz, Duration: "20:00"},
					},
				},
			},
		},
		{
			ID:            "c2",
			Title:         "UI/UX Design Fundamentals",
			Description:   "Learn the core principles of user interface and user experience design to build beautiful applications.",
			Instructor:    "Gary Simon",
			Thumbnail:     "https://picsum.photos/id/20/800/600",
			Category:      "Design",
			Duration:      "4h 15m",
			Level:         model.Beginner,
			Rating:        4.9,
			TotalStudents: 3400,
			IsPublished:   true,
			Modules: []model.Module{
				{
					ID:    "m1",
					Title: "Color Theory",
					Lessons: []model.Lesson{
						{ID: "l1", Title: "Understanding the Color Wheel", Type: model.LessonVideo, Duration: "08:00", Completed: true},
					},
				},
			},
		},
		{
			ID:            "c3",
			Title:         "Machine Learning Basics",
			Description:   "A gentle introduction to the world of AI and Machine Learning using Python.",
			Instructor:    "Andrew Ng",
			Thumbnail:     "https://picsum.photos/id/48/800/600",
			Category:      "Data Science",
			Duration:      "10h 00m",
			Level:         model.Beginner,
			Rating:        4.7,
			TotalStudents: 890,
			IsPublished:   true,
			Modules:       []model.Module{},
		},
		{
			ID:            "c4",
			Title:         "Fullstack Next.js",
			Description:   "Build production ready apps with the App Router and Server Actions.",
			Instructor:    "Lee Robinson",
			Thumbnail:     "https://picsum.photos/id/60/800/600",
			Category:      "Development",
			Duration:      "8h 45m",
			Level:         model.Intermediate,
			Rating:        4.9,
			TotalStudents: 2100,
			IsPublished:   false,
			Modules:       []model.Module{},
		},
	}
	db.Courses.Unlock()

	now := time.Now()
	db.Enrollments.Lock()
	db.Enrollments.Rows = []*model.Enrollment{
		{UserID: "u1", CourseID: "c1", Progress: 45, EnrolledAt: now},
		{UserID: "u1", CourseID: "c2", Progress: 10, EnrolledAt: now},
	}
	db.Enrollments.Unlock()

	db.Submissions.Lock()
	db.Submissions.Rows = []*model.Submission{
		{
			ID:          "s1",
			LessonID:    "l100",
			StudentID:   "u1",
			StudentName: "Alex Johnson",
			SubmittedAt: now,
			Content:     "Here is my essay on React Hooks.",
			Status:      model.SubmissionPending,
		},
	}
	db.Submissions.Unlock()

	// Like counters are kept equal to len(LikedBy) from the start so
	// the toggle invariant holds over the whole table lifetime.
	db.Posts.Lock()
	db.Posts.Rows = []*model.Post{
		{
			ID:      "p1",
			Author:  "Maria Garcia",
			Avatar:  "https://picsum.photos/id/65/200/200",
			Title:   "Tips for React Performance?",
			Content: "I am struggling with re-renders in a large list. Any advice on when to use useMemo vs React.memo?",
			LikedBy: []string{},
			Comments: []model.Comment{
				{
					ID:      "c1",
					Author:  "James Smith",
					Avatar:  "https://picsum.photos/id/68/200/200",
					Content: "Use React.memo for components that render often with same props.",
					Time:    "1h ago",
					Replies: []model.Reply{},
				},
			},
			Time: "2h ago",
		},
		{
			ID:       "p2",
			Author:   "James Smith",
			Avatar:   "https://picsum.photos/id/68/200/200",
			Title:    "Just finished the UX Course!",
			Content:  "Highly recommend the Color Theory module. It really changed how I look at interfaces.",
			Likes:    1,
			LikedBy:  []string{"u1"},
			Comments: []model.Comment{},
			Time:     "5h ago",
		},
	}
	db.Posts.Unlock()

	db.Certificates.Lock()
	db.Certificates.Rows = []*model.Certificate{
		{ID: "cert1", StudentName: "Maria Garcia", CourseTitle: "UI/UX Design Fundamentals", IssueDate: "2023-10-10", Code: "MUST-UI-2023-001"},
	}
	db.Certificates.Unlock()

	db.Events.Lock()
	db.Events.Rows = []*model.CalendarEvent{
		{ID: "ev1", Title: "System Maintenance", Date: "2023-10-28", Type: model.EventMaintenance},
		{ID: "ev2", Title: "End of Semester Exams", Date: "2023-11-15", Type: model.EventExam},
		{ID: "ev3", Title: "Public Holiday", Date: "2023-12-09", Type: model.EventHoliday},
	}
	db.Events.Unlock()

	return nil
}
