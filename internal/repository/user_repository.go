package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id string) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, "id = ?", id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

// EmailTaken 跨角色的全局唯一性检查；excludeID 非空时排除该用户自己的记录
func (r *UserRepository) EmailTaken(email string, excludeID string) (bool, error) {
	query := r.DB.Model(&model.User{}).Where("email = ?", email)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) FindStudentByID(id string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("id = ? AND role = ?", id, model.Student).First(&user).Error
	return &user, err
}

// StudentRow 学生列表行，附带选课数与作答数
type StudentRow struct {
	model.User
	EnrollmentCount int64 `json:"enrollmentCount"`
	AttemptCount    int64 `json:"attemptCount"`
}

func (r *UserRepository) ListStudents() ([]StudentRow, error) {
	var rows []StudentRow
	err := r.DB.Model(&model.User{}).
		Select("users.*, "+
			"(SELECT COUNT(*) FROM enrollments WHERE enrollments.user_id = users.id) AS enrollment_count, "+
			"(SELECT COUNT(*) FROM quiz_attempts WHERE quiz_attempts.user_id = users.id) AS attempt_count").
		Where("users.role = ?", model.Student).
		Order("users.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// DeleteStudent 仅删除 role = student 的行；讲师 id 走到这里不会命中任何记录。
func (r *UserRepository) DeleteStudent(id string) (int64, error) {
	res := r.DB.Where("id = ? AND role = ?", id, model.Student).Delete(&model.User{})
	return res.RowsAffected, res.Error
}
