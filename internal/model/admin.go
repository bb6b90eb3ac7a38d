package model

type EventType string

const (
	EventCourse      EventType = "course"
	EventExam        EventType = "exam"
	EventHoliday     EventType = "holiday"
	EventMaintenance EventType = "maintenance"
)

type CalendarEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Type        EventType `json:"type"`
	Description string    `json:"description,omitempty"`
}

type Certificate struct {
	ID          string `json:"id"`
	StudentName string `json:"studentName"`
	CourseTitle string `json:"courseTitle"`
	IssueDate   string `json:"issueDate"`
	Code        string `json:"code"`
}
