// Package dbtest 为测试创建SQLite数据库(纯Go驱动,无需CGO和外部服务)
package dbtest

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/libreria/backoffice/internal/infrastructure/config"
	"github.com/libreria/backoffice/internal/infrastructure/persistence/database"
)

// New 创建已迁移的临时SQLite数据库,测试结束后自动关闭
// 1. 每个测试一个独立文件,互不干扰
// 2. 开启外键约束
// 3. busy_timeout + IMMEDIATE事务,并发写入时排队等待而不是直接报错
func New(t testing.TB) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "libreria.db")
	db, err := database.Open(config.DatabaseConfig{
		Driver: "sqlite",
		URL:    path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(10000)&_txlock=immediate",
	}, false)
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("迁移测试数据库失败: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
