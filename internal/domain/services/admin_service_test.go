package services

import (
	"errors"
	"testing"
)

func TestAdminServiceRegister(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, newTestConfig(t))

	admin, err := svc.Register("admin@example.com", "secret123")
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	if admin.ID == "" {
		t.Fatal("注册后未生成ID")
	}
	if admin.Email != "admin@example.com" {
		t.Fatalf("邮箱不匹配: %q", admin.Email)
	}
	if admin.PasswordHash == "secret123" {
		t.Fatal("密码以明文存储")
	}
}

func TestAdminServiceRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, newTestConfig(t))

	if _, err := svc.Register("admin@example.com", "secret123"); err != nil {
		t.Fatalf("首次注册失败: %v", err)
	}
	if _, err := svc.Register("admin@example.com", "other-password"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("重复邮箱注册应返回 ErrEmailTaken, 实际: %v", err)
	}
}

// 邮箱匹配是精确匹配，大小写不同视为不同账户
func TestAdminServiceEmailCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, newTestConfig(t))

	if _, err := svc.Register("Admin@Example.com", "secret123"); err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	if _, err := svc.GetAdminByEmail("admin@example.com"); !errors.Is(err, ErrAdminNotFound) {
		t.Fatalf("不同大小写的邮箱不应命中, 实际: %v", err)
	}
}

func TestAdminServiceVerifyCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, newTestConfig(t))

	registered, err := svc.Register("admin@example.com", "secret123")
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"正确凭证", "admin@example.com", "secret123", nil},
		{"密码错误", "admin@example.com", "wrong-password", ErrInvalidCredentials},
		{"邮箱不存在", "nobody@example.com", "secret123", ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			admin, err := svc.VerifyCredentials(tt.email, tt.password)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("期望错误 %v, 实际: %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("校验失败: %v", err)
			}
			if admin.ID != registered.ID {
				t.Fatalf("返回的管理员不匹配: %s != %s", admin.ID, registered.ID)
			}
		})
	}
}

func TestAdminServiceGetAdminByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, newTestConfig(t))

	registered, err := svc.Register("admin@example.com", "secret123")
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	admin, err := svc.GetAdminByID(registered.ID)
	if err != nil {
		t.Fatalf("按ID查询失败: %v", err)
	}
	if admin.Email != "admin@example.com" {
		t.Fatalf("邮箱不匹配: %q", admin.Email)
	}

	if _, err := svc.GetAdminByID("no-such-id"); !errors.Is(err, ErrAdminNotFound) {
		t.Fatalf("不存在的ID应返回 ErrAdminNotFound, 实际: %v", err)
	}
}

func TestAdminServiceCountAdmins(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, newTestConfig(t))

	count, err := svc.CountAdmins()
	if err != nil {
		t.Fatalf("统计失败: %v", err)
	}
	if count != 0 {
		t.Fatalf("空库应为0, 实际: %d", count)
	}

	if _, err := svc.Register("admin@example.com", "secret123"); err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	count, err = svc.CountAdmins()
	if err != nil {
		t.Fatalf("统计失败: %v", err)
	}
	if count != 1 {
		t.Fatalf("应为1, 实际: %d", count)
	}
}
