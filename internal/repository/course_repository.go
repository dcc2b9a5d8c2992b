package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id string) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, "id = ?", id).Error
	return &course, err
}

// FindOwned 所有权检查的入口：按 (id, instructorID) 查询，
// 未命中时由调用方统一当作 not found 处理，不区分"不存在"与"不属于你"。
func (r *CourseRepository) FindOwned(id, instructorID string) (*model.Course, error) {
	var course model.Course
	err := r.DB.Where("id = ? AND instructor_id = ?", id, instructorID).First(&course).Error
	return &course, err
}

func orderedModules(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}

func orderedLessons(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}

// FindOwnedWithTree 讲师编辑视图：Modules→Lessons→Quiz→Questions 全量嵌套，
// 每层按 order 升序。
func (r *CourseRepository) FindOwnedWithTree(id, instructorID string) (*model.Course, error) {
	var course model.Course
	err := r.DB.
		Preload("Modules", orderedModules).
		Preload("Modules.Lessons", orderedLessons).
		Preload("Modules.Lessons.Quiz").
		Preload("Modules.Lessons.Quiz.Questions").
		Where("id = ? AND instructor_id = ?", id, instructorID).
		First(&course).Error
	return &course, err
}

// FindWithTree 学生内容视图：和编辑视图同样的嵌套与排序，附带讲师信息。
func (r *CourseRepository) FindWithTree(id string) (*model.Course, error) {
	var course model.Course
	err := r.DB.
		Preload("Instructor").
		Preload("Modules", orderedModules).
		Preload("Modules.Lessons", orderedLessons).
		Preload("Modules.Lessons.Quiz").
		Preload("Modules.Lessons.Quiz.Questions").
		First(&course, "id = ?", id).Error
	return &course, err
}

// InstructorCourseRow 讲师课程列表行，附带选课人数
type InstructorCourseRow struct {
	model.Course
	EnrollmentCount int64 `json:"enrollmentCount"`
}

func (r *CourseRepository) ListByInstructor(instructorID string) ([]InstructorCourseRow, error) {
	var courses []model.Course
	err := r.DB.
		Preload("Modules", orderedModules).
		Preload("Modules.Lessons", orderedLessons).
		Where("instructor_id = ?", instructorID).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}

	rows := make([]InstructorCourseRow, 0, len(courses))
	for _, course := range courses {
		var count int64
		if err := r.DB.Model(&model.Enrollment{}).Where("course_id = ?", course.ID).Count(&count).Error; err != nil {
			return nil, err
		}
		rows = append(rows, InstructorCourseRow{Course: course, EnrollmentCount: count})
	}
	return rows, nil
}

// CatalogRow 课程目录行：讲师名 + 模块数 + 选课数
type CatalogRow struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     *string `json:"description,omitempty"`
	Thumbnail       *string `json:"thumbnail,omitempty"`
	InstructorID    string  `json:"instructorId"`
	InstructorName  string  `json:"instructorName"`
	ModuleCount     int64   `json:"moduleCount"`
	EnrollmentCount int64   `json:"enrollmentCount"`
}

// ListCatalog 全量课程目录，不做所有权过滤（对已登录学生公开）。
func (r *CourseRepository) ListCatalog() ([]CatalogRow, error) {
	var rows []CatalogRow
	err := r.DB.Model(&model.Course{}).
		Select("courses.id, courses.title, courses.description, courses.thumbnail, courses.instructor_id, " +
			"users.name AS instructor_name, " +
			"(SELECT COUNT(*) FROM modules WHERE modules.course_id = courses.id) AS module_count, " +
			"(SELECT COUNT(*) FROM enrollments WHERE enrollments.course_id = courses.id) AS enrollment_count").
		Joins("JOIN users ON users.id = courses.instructor_id").
		Order("courses.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// UpdateFields 部分更新，只写入显式提供的列
func (r *CourseRepository) UpdateFields(id string, fields map[string]interface{}) error {
	return r.DB.Model(&model.Course{}).Where("id = ?", id).Updates(fields).Error
}

func (r *CourseRepository) Delete(id string) error {
	return r.DB.Delete(&model.Course{}, "id = ?", id).Error
}
