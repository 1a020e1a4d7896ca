// Package mirror cung cấp Collection Mirror: bản sao cục bộ, chỉ đọc,
// liên tục hội tụ về nội dung hiện hành của một collection trên store.
// Một engine generic thay cho việc lặp lại từng collection một.
package mirror

import (
	"context"
	"sync"

	"outlet_catalog/internal/catalog/store"
	"outlet_catalog/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// Status là trạng thái của Mirror
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSynced
	StatusError
)

// String trả về tên trạng thái
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSynced:
		return "synced"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// Mirror duy trì danh sách cục bộ có thứ tự hội tụ về nội dung collection.
// Máy trạng thái: Idle -> Loading (subscribe) -> Synced (snapshot đầu tiên)
// -> Synced (các snapshot sau); lỗi subscription ở bất kỳ trạng thái nào
// chuyển sang Error và xóa items; đổi scope hoặc Close quay về Idle sau khi
// subscription cũ được teardown hoàn toàn.
//
// Mỗi snapshot thay thế toàn bộ items - không merge từng phần. Consumer
// không được giả định items giữ nguyên identity giữa hai snapshot, và không
// được tự sửa danh sách ngoài đường snapshot-replace này.
type Mirror[T any] struct {
	adapter    store.Adapter
	collection string
	scopeField string // field filter equality; "" nếu collection không scoped
	orderBy    *store.OrderBy

	mu      sync.RWMutex
	items   []T
	status  Status
	lastErr error

	sub      *store.Subscription
	stop     chan struct{}
	loopDone chan struct{}
}

// New tạo Mirror cho collection với scope field và thứ tự cho trước.
// scopeField rỗng nghĩa là mirror toàn bộ collection (ví dụ Tax).
func New[T any](adapter store.Adapter, collection, scopeField string, orderBy *store.OrderBy) *Mirror[T] {
	return &Mirror[T]{
		adapter:    adapter,
		collection: collection,
		scopeField: scopeField,
		orderBy:    orderBy,
		status:     StatusIdle,
	}
}

// Open mở subscription với scope mới. Subscription cũ (nếu có) luôn được
// teardown xong trước khi subscription mới mở - không bao giờ tồn tại hai
// subscription sống cho cùng một mirror.
//
// Với collection scoped, scope rỗng trả về ngay danh sách rỗng ở trạng thái
// Synced mà không subscribe - tránh một phép đọc không giới hạn phạm vi.
func (m *Mirror[T]) Open(ctx context.Context, scope string) error {
	m.teardown()

	if m.scopeField != "" && scope == "" {
		m.mu.Lock()
		m.items = []T{}
		m.status = StatusSynced
		m.lastErr = nil
		m.mu.Unlock()
		return nil
	}

	m.mu.Lock()
	m.items = nil
	m.status = StatusLoading
	m.lastErr = nil
	m.mu.Unlock()

	filter := store.Filter{}
	if m.scopeField != "" {
		filter[m.scopeField] = scope
	}

	sub, err := m.adapter.Subscribe(ctx, m.collection, filter, m.orderBy)
	if err != nil {
		m.mu.Lock()
		m.items = nil
		m.status = StatusError
		m.lastErr = err
		m.mu.Unlock()
		return err
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	m.mu.Lock()
	m.sub = sub
	m.stop = stop
	m.loopDone = done
	m.mu.Unlock()

	go m.consume(sub, stop, done)
	return nil
}

// consume là vòng nhận snapshot của một subscription. Chạy đến khi có lỗi
// subscription hoặc teardown; thứ tự áp snapshot đúng thứ tự adapter phát.
func (m *Mirror[T]) consume(sub *store.Subscription, stop chan struct{}, done chan struct{}) {
	defer close(done)

	for {
		select {
		case <-stop:
			return
		case snapshot := <-sub.Snapshots():
			items, err := decodeSnapshot[T](snapshot)
			if err != nil {
				// Snapshot không decode được coi như lỗi subscription
				m.fail(err)
				sub.Close()
				return
			}
			m.mu.Lock()
			m.items = items
			m.status = StatusSynced
			m.lastErr = nil
			m.mu.Unlock()
		case err := <-sub.Errors():
			m.fail(err)
			sub.Close()
			return
		}
	}
}

// fail chuyển mirror sang Error và xóa items. Không retry - mở lại là
// quyết định của caller qua Open.
func (m *Mirror[T]) fail(err error) {
	logger.GetErrorLogger().WithError(err).WithField("collection", m.collection).Error("Subscription gặp lỗi")
	m.mu.Lock()
	m.items = nil
	m.status = StatusError
	m.lastErr = err
	m.mu.Unlock()
}

// Close đóng subscription hiện tại và quay về Idle
func (m *Mirror[T]) Close() {
	m.teardown()
	m.mu.Lock()
	m.items = nil
	m.status = StatusIdle
	m.lastErr = nil
	m.mu.Unlock()
}

// teardown đóng subscription cũ và chờ vòng consume thoát hẳn,
// bảo đảm không còn snapshot cũ nào được áp sau khi teardown trả về
func (m *Mirror[T]) teardown() {
	m.mu.Lock()
	sub := m.sub
	stop := m.stop
	done := m.loopDone
	m.sub = nil
	m.stop = nil
	m.loopDone = nil
	m.mu.Unlock()

	if sub == nil {
		return
	}
	sub.Close()
	close(stop)
	<-done
}

// Items trả về bản sao danh sách hiện tại
func (m *Mirror[T]) Items() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out
}

// Status trả về trạng thái hiện tại
func (m *Mirror[T]) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// Err trả về lỗi subscription gần nhất, nil nếu không ở trạng thái Error
func (m *Mirror[T]) Err() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}

func decodeSnapshot[T any](snapshot []bson.Raw) ([]T, error) {
	items := make([]T, 0, len(snapshot))
	for _, raw := range snapshot {
		var item T
		if err := bson.Unmarshal(raw, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
