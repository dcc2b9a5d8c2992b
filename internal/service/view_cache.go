package service

import (
	"context"
	"time"

	"learnhub_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// 逻辑视图对应的缓存键。core 在每次写操作后标记哪些视图过期，
// 展示层按需刷新；这是 fire-and-forget 的通知，不是正确性依赖。
const (
	keyCatalog            = "views:catalog"
	keyInstructorCourses  = "views:instructor-courses:"  // + instructorID
	keyCourseEdit         = "views:course-edit:"         // + courseID
	keyCourseContent      = "views:course-content:"      // + courseID
	keyStudentEnrollments = "views:student-enrollments:" // + userID
	keyStudentRoster      = "views:student-roster"
	catalogCacheTTL       = 5 * time.Minute
)

type ViewCache struct {
	Redis *redis.Client
}

func NewViewCache(rdb *redis.Client) *ViewCache {
	return &ViewCache{Redis: rdb}
}

// invalidate 删除给定的视图键。Redis 不可用只记日志，绝不让写操作失败。
func (v *ViewCache) invalidate(keys ...string) {
	if v.Redis == nil || len(keys) == 0 {
		return
	}
	if err := v.Redis.Del(context.Background(), keys...).Err(); err != nil {
		logger.Log.Warn("view cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

func (v *ViewCache) InvalidateCatalog() {
	v.invalidate(keyCatalog)
}

func (v *ViewCache) InvalidateInstructorCourses(instructorID string) {
	v.invalidate(keyInstructorCourses+instructorID, keyCatalog)
}

func (v *ViewCache) InvalidateCourseEdit(courseID string) {
	v.invalidate(keyCourseEdit+courseID, keyCourseContent+courseID)
}

func (v *ViewCache) InvalidateStudentEnrollments(userID string) {
	v.invalidate(keyStudentEnrollments+userID, keyCatalog)
}

func (v *ViewCache) InvalidateCourseContent(courseID string) {
	v.invalidate(keyCourseContent + courseID)
}

func (v *ViewCache) InvalidateStudentRoster() {
	v.invalidate(keyStudentRoster)
}

// GetCatalog / SetCatalog 课程目录的 JSON 缓存，TTL 五分钟，
// 课程或选课发生变化时随 keyCatalog 一起失效。
func (v *ViewCache) GetCatalog(ctx context.Context) ([]byte, bool) {
	if v.Redis == nil {
		return nil, false
	}
	data, err := v.Redis.Get(ctx, keyCatalog).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Warn("catalog cache read failed", zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

func (v *ViewCache) SetCatalog(ctx context.Context, data []byte) {
	if v.Redis == nil {
		return
	}
	if err := v.Redis.Set(ctx, keyCatalog, data, catalogCacheTTL).Err(); err != nil {
		logger.Log.Warn("catalog cache write failed", zap.Error(err))
	}
}
