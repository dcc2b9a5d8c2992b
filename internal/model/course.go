package model

// Course 由唯一一位讲师（创建者）拥有。Description/Thumbnail 为可选字段，
// 空白输入规范化为 NULL 而不是空字符串。
// swagger:model Course
type Course struct {
	UUIDBase
	Title        string   `gorm:"size:255;not null" json:"title"`
	Description  *string  `gorm:"type:text" json:"description,omitempty"`
	Thumbnail    *string  `gorm:"size:512" json:"thumbnail,omitempty"`
	InstructorID string   `gorm:"type:varchar(36);index;not null" json:"instructorId"`
	Instructor   *User    `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`
	Modules      []Module `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"modules,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// swagger:model Module
type Module struct {
	UUIDBase
	Title    string   `gorm:"size:255;not null" json:"title"`
	Order    int      `gorm:"column:sort_order;default:0" json:"order"`
	CourseID string   `gorm:"type:varchar(36);index;not null" json:"courseId"`
	Lessons  []Lesson `gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE" json:"lessons,omitempty"`
}

func (Module) TableName() string {
	return "modules"
}

// swagger:model Lesson
type Lesson struct {
	UUIDBase
	Title    string `gorm:"size:255;not null" json:"title"`
	Content  string `gorm:"type:text" json:"content"` // markdown 原文，渲染在前端完成
	Order    int    `gorm:"column:sort_order;default:0" json:"order"`
	ModuleID string `gorm:"type:varchar(36);index;not null" json:"moduleId"`
	Quiz     *Quiz  `gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE" json:"quiz,omitempty"`
}

func (Lesson) TableName() string {
	return "lessons"
}
