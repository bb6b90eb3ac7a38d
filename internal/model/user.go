package model

type UserRole string

const (
	Student    UserRole = "student"
	Instructor UserRole = "instructor"
	Admin      UserRole = "admin"
)

type User struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Password   string   `json:"-"`
	Role       UserRole `json:"role"`
	Avatar     string   `json:"avatar,omitempty"`
	Points     int      `json:"points"`
	Level      int      `json:"level"`
	Badges     []string `json:"badges"`
	Bio        string   `json:"bio,omitempty"`
	Department string   `json:"department,omitempty"`
	Phone      string   `json:"phone,omitempty"`
}
