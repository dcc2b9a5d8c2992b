package database

import (
	"fmt"
	"log"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := seedInstructor(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate 建表并施加存储层约束：Course→Module→Lesson→{Quiz→Question} 的级联删除、
// Enrollment(user_id, course_id) 与 users.email 的唯一索引。
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Module{},
		&model.Lesson{},
		&model.Quiz{},
		&model.Question{},
		&model.Enrollment{},
		&model.QuizAttempt{},
	)
}

// seedInstructor 用户表为空时写入默认讲师账号，保证首次部署后能登录后台。
func seedInstructor(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	instructor := &model.User{
		Name:     "Admin Instructor",
		Email:    "admin@learnhub.local",
		Password: string(hashed),
		Role:     model.Instructor,
	}
	if err := db.Create(instructor).Error; err != nil {
		return err
	}

	log.Printf("Seeded default instructor account: %s", instructor.Email)
	return nil
}
