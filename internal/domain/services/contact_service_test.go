package services

import (
	"fmt"
	"testing"
	"time"

	"portfolio-http-service/internal/domain/models"
)

func TestContactServiceCreateMessage(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db, newTestConfig(t))

	msg := &models.ContactMessage{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Booking",
		Message: "Are you available in June?",
		Read:    true, // 客户端传入的已读标记被忽略
	}
	if err := svc.CreateMessage(msg); err != nil {
		t.Fatalf("保存失败: %v", err)
	}
	if msg.ID == "" {
		t.Fatal("未生成ID")
	}
	if msg.Read {
		t.Fatal("新留言应为未读")
	}
}

func TestContactServiceListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db, newTestConfig(t))

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		msg := &models.ContactMessage{
			Name:    fmt.Sprintf("sender-%d", i),
			Email:   "a@example.com",
			Message: "hi",
		}
		msg.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := svc.CreateMessage(msg); err != nil {
			t.Fatalf("保存失败: %v", err)
		}
	}

	messages, err := svc.ListMessages()
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("应有3条留言, 实际: %d", len(messages))
	}
	if messages[0].Name != "sender-2" || messages[2].Name != "sender-0" {
		t.Fatalf("留言应按提交时间倒序: %s ... %s", messages[0].Name, messages[2].Name)
	}
}

// 列表最多返回 MaxContactMessages 条，最老的被挤出
func TestContactServiceListCapped(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db, newTestConfig(t))

	base := time.Now().Add(-24 * time.Hour)
	for i := 0; i < MaxContactMessages+5; i++ {
		msg := &models.ContactMessage{
			Name:    fmt.Sprintf("sender-%d", i),
			Email:   "a@example.com",
			Message: "hi",
		}
		msg.CreatedAt = base.Add(time.Duration(i) * time.Second)
		if err := svc.CreateMessage(msg); err != nil {
			t.Fatalf("保存失败: %v", err)
		}
	}

	messages, err := svc.ListMessages()
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(messages) != MaxContactMessages {
		t.Fatalf("应截断到 %d 条, 实际: %d", MaxContactMessages, len(messages))
	}
	// 最新的一条在最前，最老的5条不出现
	if messages[0].Name != fmt.Sprintf("sender-%d", MaxContactMessages+4) {
		t.Fatalf("最新留言应在最前, 实际: %s", messages[0].Name)
	}
	if messages[len(messages)-1].Name != "sender-5" {
		t.Fatalf("最老的留言应被挤出, 末尾实际: %s", messages[len(messages)-1].Name)
	}
}
