package services

import (
	"path/filepath"
	"testing"

	"portfolio-http-service/internal/domain/models"
	"portfolio-http-service/internal/infrastructure/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 建一个隔离的sqlite测试库
// TranslateError 与生产配置保持一致，唯一索引冲突才能转换为
// gorm.ErrDuplicatedKey；单连接让并发写在驱动层排队而不是报busy
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取底层连接失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Media{},
		&models.ContactMessage{},
		&models.SiteSettings{},
	); err != nil {
		t.Fatalf("迁移测试数据库失败: %v", err)
	}

	t.Cleanup(func() {
		sqlDB.Close()
	})
	return db
}

// newTestConfig 构造测试用配置，不经过环境变量
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		JWTSecretKey:       "test-secret-key",
		JWTExpirationHours: 24,
		UploadDir:          t.TempDir(),
		MaxUploadSize:      1 << 20,
	}
}
