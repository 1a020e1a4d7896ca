package store

import (
	"context"
	"sync"
)

// OpInsert, OpUpdate, OpDelete là các loại thao tác ghi qua adapter.
const (
	OpInsert = "insert"
	OpUpdate = "update"
	OpDelete = "delete"
)

// ChangeEvent mô tả sự kiện thay đổi dữ liệu của một collection.
// Document là bản ghi sau khi thay đổi dưới dạng map (nil nếu delete).
type ChangeEvent struct {
	Collection string
	Operation  string
	DocumentID string
	Document   map[string]interface{}
}

// ChangeHandler xử lý sự kiện thay đổi dữ liệu.
type ChangeHandler func(ctx context.Context, e ChangeEvent)

// ChangeBus là bus sự kiện thay đổi dữ liệu của một adapter.
// Các subscription của adapter refresh qua bus này; logic phản ứng khác
// (worker thông báo, cache invalidation, ...) đăng ký qua OnChange.
type ChangeBus struct {
	mu       sync.RWMutex
	handlers []ChangeHandler
}

// NewChangeBus tạo bus mới
func NewChangeBus() *ChangeBus {
	return &ChangeBus{}
}

// OnChange đăng ký handler. Gọi khi init (ví dụ từ worker package).
func (b *ChangeBus) OnChange(h ChangeHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Emit phát sự kiện tới mọi handler đã đăng ký.
// Mỗi handler chạy trong goroutine riêng, panic được recover để không
// ảnh hưởng handler khác.
func (b *ChangeBus) Emit(ctx context.Context, e ChangeEvent) {
	b.mu.RLock()
	list := make([]ChangeHandler, len(b.handlers))
	copy(list, b.handlers)
	b.mu.RUnlock()

	for _, h := range list {
		go func(fn ChangeHandler) {
			defer func() {
				if r := recover(); r != nil {
					_ = r
				}
			}()
			fn(ctx, e)
		}(h)
	}
}
