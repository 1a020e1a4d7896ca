// Package store định nghĩa ranh giới Remote Store Adapter: một document store
// hỗ trợ truy vấn có filter/sắp xếp và primitive subscribe-for-changes phát
// snapshot toàn bộ result set (không phát diff).
package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
)

// OrderBy mô tả thứ tự sắp xếp của một truy vấn hoặc subscription
type OrderBy struct {
	Field      string
	Descending bool
}

// Filter là điều kiện lọc equality, ví dụ {"outletId": "..."}
type Filter map[string]interface{}

// Adapter là hợp đồng của remote document store.
// Mọi mutation qua adapter sẽ khiến các subscription đang mở trên cùng
// collection nhận một snapshot mới (toàn bộ result set, theo thứ tự orderBy).
type Adapter interface {
	// Subscribe mở một subscription trên collection. Snapshot đầu tiên được
	// phát ngay sau khi đăng ký thành công.
	Subscribe(ctx context.Context, collection string, filter Filter, orderBy *OrderBy) (*Subscription, error)

	// AddDocument thêm document mới, trả về id do store cấp
	AddDocument(ctx context.Context, collection string, payload map[string]interface{}) (string, error)

	// UpdateDocument cập nhật một phần document theo id
	UpdateDocument(ctx context.Context, collection string, id string, partial map[string]interface{}) error

	// DeleteDocument xóa document theo id
	DeleteDocument(ctx context.Context, collection string, id string) error

	// GetDocument đọc một document theo id
	GetDocument(ctx context.Context, collection string, id string) (bson.Raw, error)

	// QueryOnce đọc one-shot không live update. limit <= 0 nghĩa là không giới hạn
	QueryOnce(ctx context.Context, collection string, filter Filter, orderBy *OrderBy, limit int64) ([]bson.Raw, error)
}

// Subscription đại diện cho một subscription đang mở.
// Snapshot được phát tuần tự trên một channel duy nhất - thứ tự phát
// trong một subscription được bảo toàn.
type Subscription struct {
	snapshots chan []bson.Raw
	errs      chan error
	refresh   chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	onClose   func()
}

func newSubscription(onClose func()) *Subscription {
	return &Subscription{
		snapshots: make(chan []bson.Raw, 8),
		errs:      make(chan error, 1),
		refresh:   make(chan struct{}, 1),
		done:      make(chan struct{}),
		onClose:   onClose,
	}
}

// Snapshots trả về channel nhận snapshot toàn bộ result set
func (s *Subscription) Snapshots() <-chan []bson.Raw {
	return s.snapshots
}

// Errors trả về channel nhận lỗi subscription (permission, network, ...)
func (s *Subscription) Errors() <-chan error {
	return s.errs
}

// Close đóng subscription. Idempotent - gọi nhiều lần an toàn.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		if s.onClose != nil {
			s.onClose()
		}
	})
}

// notify đánh dấu subscription cần re-query. Non-blocking - các notify
// dồn dập được gộp lại thành một lần refresh.
func (s *Subscription) notify() {
	select {
	case s.refresh <- struct{}{}:
	default:
	}
}

// run là vòng lặp phát snapshot của subscription, chạy trong goroutine riêng
// để bảo đảm thứ tự phát. query thực hiện truy vấn hiện hành của subscription.
func (s *Subscription) run(ctx context.Context, query func(context.Context) ([]bson.Raw, error)) {
	defer func() {
		if r := recover(); r != nil {
			// Không để panic trong vòng phát làm sập process
			_ = r
		}
	}()

	for {
		select {
		case <-s.done:
			return
		case <-ctx.Done():
			return
		case <-s.refresh:
			docs, err := query(ctx)
			if err != nil {
				select {
				case s.errs <- err:
				default:
				}
				continue
			}
			select {
			case s.snapshots <- docs:
			case <-s.done:
				return
			case <-ctx.Done():
				return
			}
		}
	}
}
