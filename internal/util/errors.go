package util

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// 错误分类。所有 service 只返回这些哨兵（或用 fmt.Errorf("%w: ...") 包装后的形式），
// controller 据此映射 HTTP 状态码。
var (
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound 同时覆盖"不存在"与"不归该讲师所有"两种情况，
	// 避免向其他讲师暴露资源是否存在。
	ErrNotFound             = errors.New("resource not found")
	ErrValidation           = errors.New("validation failed")
	ErrDuplicateEmail       = errors.New("该邮箱已被注册")
	ErrDuplicateEnrollment  = errors.New("already enrolled in this course")
	ErrNotEnrolled          = errors.New("not enrolled in this course")
	ErrQuizExists           = errors.New("lesson already has a quiz")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrStorageNotConfigured = errors.New("object storage is not configured")
)

// IsDuplicateKey 识别存储层唯一约束冲突。并发下应用层的查重不可靠，
// 插入时的约束冲突必须映射回同一个业务错误。
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || // MySQL 1062
		strings.Contains(msg, "UNIQUE constraint failed") // SQLite
}
