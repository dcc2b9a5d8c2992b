package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// swagger:model Quiz
type Quiz struct {
	UUIDBase
	Title     string     `gorm:"size:255;not null" json:"title"`
	LessonID  string     `gorm:"type:varchar(36);uniqueIndex;not null" json:"lessonId"` // 每个课时最多一个测验
	Questions []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// OptionList 选项的有序序列。领域层是真正的字符串切片，
// 只在持久化边界序列化为 JSON，且往返必须完全一致。
type OptionList []string

func (o OptionList) Value() (driver.Value, error) {
	if o == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(o))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (o *OptionList) Scan(value interface{}) error {
	if value == nil {
		*o = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported options column type %T", value)
	}
	var opts []string
	if err := json.Unmarshal(data, &opts); err != nil {
		return errors.New("options column is not a JSON string array")
	}
	*o = opts
	return nil
}

// swagger:model Question
type Question struct {
	UUIDBase
	Text          string     `gorm:"type:text;not null" json:"text"`
	Options       OptionList `gorm:"type:text;not null" json:"options"`
	CorrectAnswer int        `gorm:"not null" json:"correctAnswer"` // options 的下标，从 0 开始
	QuizID        string     `gorm:"type:varchar(36);index;not null" json:"quizId"`
}

func (Question) TableName() string {
	return "questions"
}
