package model

type UserRole string

const (
	Instructor UserRole = "instructor"
	Student    UserRole = "student"
)

// swagger:model User
type User struct {
	UUIDBase
	Name     string   `gorm:"size:100;not null" json:"name"`
	Email    string   `gorm:"size:100;unique;not null" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"size:20;not null;default:'student'" json:"role"`
}

func (User) TableName() string {
	return "users"
}

// Actor 请求者身份，由 JWT claims 构造后传入各个 service。
type Actor struct {
	ID   string
	Role UserRole
}

func (a Actor) IsInstructor() bool {
	return a.Role == Instructor
}

func (a Actor) IsStudent() bool {
	return a.Role == Student
}
