package model

type LessonType string

const (
	LessonVideo      LessonType = "video"
	LessonQuiz       LessonType = "quiz"
	LessonReading    LessonType = "reading"
	LessonAssignment LessonType = "assignment"
)

type Lesson struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Type      LessonType `json:"type"`
	Duration  string     `json:"duration"`
	Completed bool       `json:"completed"`

	// Type-conditional payloads, exactly one populated per Type.
	Questions              []QuizQuestion `json:"questions,omitempty"`
	AssignmentInstructions string         `json:"assignmentInstructions,omitempty"`
	VideoURL               string         `json:"videoUrl,omitempty"`
	Content                string         `json:"content,omitempty"`
}

type QuizQuestion struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}
