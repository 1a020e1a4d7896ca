// Package worker - test notifier phản ứng đúng sự kiện và bỏ qua phần còn lại.
package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"gopkg.in/gomail.v2"

	"outlet_catalog/config"
	"outlet_catalog/internal/catalog/models"
	"outlet_catalog/internal/catalog/store"
)

func newTestNotifier() (*ApplicationNotifier, *int, *sync.Mutex) {
	sent := 0
	var mu sync.Mutex
	n := NewApplicationNotifier(&config.Configuration{
		SMTPHost:      "smtp.example.com",
		SMTPPort:      587,
		SMTPFromEmail: "noreply@example.com",
		AdminEmail:    "admin@example.com",
	})
	n.send = func(msg *gomail.Message) error {
		mu.Lock()
		sent++
		mu.Unlock()
		return nil
	}
	return n, &sent, &mu
}

func sentCount(sent *int, mu *sync.Mutex) int {
	mu.Lock()
	defer mu.Unlock()
	return *sent
}

func TestApplicationNotifier_SendsOnNewApplication(t *testing.T) {
	n, sent, mu := newTestNotifier()
	bus := store.NewChangeBus()
	n.Register(bus)

	bus.Emit(context.Background(), store.ChangeEvent{
		Collection: models.CollectionCareerApplications,
		Operation:  store.OpInsert,
		DocumentID: "abc",
		Document: map[string]interface{}{
			"fullName": "Nguyen Van A",
			"email":    "a@example.com",
			"careerId": "career-1",
		},
	})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && sentCount(sent, mu) == 0 {
		time.Sleep(5 * time.Millisecond)
	}
	if got := sentCount(sent, mu); got != 1 {
		t.Fatalf("phải gửi đúng 1 email, nhận %d", got)
	}
}

func TestApplicationNotifier_IgnoresOtherEvents(t *testing.T) {
	n, sent, mu := newTestNotifier()
	bus := store.NewChangeBus()
	n.Register(bus)

	// Update hồ sơ và insert collection khác đều không kích hoạt email
	bus.Emit(context.Background(), store.ChangeEvent{
		Collection: models.CollectionCareerApplications,
		Operation:  store.OpUpdate,
		DocumentID: "abc",
	})
	bus.Emit(context.Background(), store.ChangeEvent{
		Collection: models.CollectionMenus,
		Operation:  store.OpInsert,
		DocumentID: "def",
	})

	time.Sleep(50 * time.Millisecond)
	if got := sentCount(sent, mu); got != 0 {
		t.Fatalf("không được gửi email, nhận %d", got)
	}
}

func TestApplicationNotifier_SkipsWithoutSMTPConfig(t *testing.T) {
	n := NewApplicationNotifier(&config.Configuration{})
	called := false
	n.send = func(msg *gomail.Message) error {
		called = true
		return nil
	}
	bus := store.NewChangeBus()
	n.Register(bus)

	bus.Emit(context.Background(), store.ChangeEvent{
		Collection: models.CollectionCareerApplications,
		Operation:  store.OpInsert,
		DocumentID: "abc",
		Document:   map[string]interface{}{"fullName": "X"},
	})

	time.Sleep(50 * time.Millisecond)
	if called {
		t.Fatal("SMTP chưa cấu hình thì không được gọi đường gửi")
	}
}
