package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enrollment 学生选课记录。(UserID, CourseID) 的唯一约束在存储层强制，
// 应用层的查重只是提前给出友好错误，不是并发下的正确性保证。
// swagger:model Enrollment
type Enrollment struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_enrollment_user_course" json:"userId"`
	CourseID  string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_enrollment_user_course" json:"courseId"`
	CreatedAt time.Time `json:"createdAt"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Course *Course `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"course,omitempty"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

func (e *Enrollment) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return
}

// QuizAttempt 测验作答历史，只追加、不去重、创建后不可变。
// swagger:model QuizAttempt
type QuizAttempt struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string    `gorm:"type:varchar(36);index;not null" json:"userId"`
	QuizID    string    `gorm:"type:varchar(36);index;not null" json:"quizId"`
	Score     float64   `gorm:"not null" json:"score"` // 0-100
	CreatedAt time.Time `json:"createdAt"`

	Quiz *Quiz `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

func (a *QuizAttempt) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}
