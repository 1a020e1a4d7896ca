package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"outlet_catalog/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryAdapter hiện thực Adapter hoàn toàn trong bộ nhớ với cùng ngữ nghĩa
// snapshot như MongoAdapter. Dùng cho unit test và chạy local không cần Mongo.
type MemoryAdapter struct {
	bus *ChangeBus

	mu       sync.Mutex
	data     map[string]map[string]map[string]interface{} // collection -> id -> document
	seq      map[string]map[string]int64                  // thứ tự insert, dùng làm tie-break khi sort
	seqNext  int64
	subs     map[string]map[*Subscription]struct{}
	queryErr map[string]error // fault injection cho đường lỗi subscription
}

// NewMemoryAdapter tạo adapter trong bộ nhớ
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{
		bus:      NewChangeBus(),
		data:     make(map[string]map[string]map[string]interface{}),
		seq:      make(map[string]map[string]int64),
		subs:     make(map[string]map[*Subscription]struct{}),
		queryErr: make(map[string]error),
	}
}

// Bus trả về change bus của adapter
func (a *MemoryAdapter) Bus() *ChangeBus {
	return a.bus
}

// SetQueryError cài lỗi cho mọi truy vấn tiếp theo trên collection
// (mô phỏng mất quyền / mất mạng). err = nil để gỡ.
func (a *MemoryAdapter) SetQueryError(collection string, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err == nil {
		delete(a.queryErr, collection)
		return
	}
	a.queryErr[collection] = err
	for sub := range a.subs[collection] {
		sub.notify()
	}
}

// OpenSubscriptions trả về số subscription đang mở trên collection
func (a *MemoryAdapter) OpenSubscriptions(collection string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.subs[collection])
}

// Subscribe mở subscription trên collection. Snapshot đầu tiên được phát
// ngay sau khi đăng ký.
func (a *MemoryAdapter) Subscribe(ctx context.Context, collection string, filter Filter, orderBy *OrderBy) (*Subscription, error) {
	if collection == "" {
		return nil, common.NewError(common.ErrCodeSubscription, "tên collection rỗng", common.StatusBadRequest, nil)
	}

	var sub *Subscription
	sub = newSubscription(func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		if set, ok := a.subs[collection]; ok {
			delete(set, sub)
		}
	})

	a.mu.Lock()
	if a.subs[collection] == nil {
		a.subs[collection] = make(map[*Subscription]struct{})
	}
	a.subs[collection][sub] = struct{}{}
	a.mu.Unlock()

	query := func(qctx context.Context) ([]bson.Raw, error) {
		docs, err := a.QueryOnce(qctx, collection, filter, orderBy, 0)
		if err != nil {
			return nil, common.NewSubscriptionError(err)
		}
		return docs, nil
	}

	go sub.run(context.WithoutCancel(ctx), query)
	sub.notify()
	return sub, nil
}

func (a *MemoryAdapter) notifySubscribers(collection string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for sub := range a.subs[collection] {
		sub.notify()
	}
}

// AddDocument thêm document mới, trả về id sinh tự động
func (a *MemoryAdapter) AddDocument(ctx context.Context, collection string, payload map[string]interface{}) (string, error) {
	oid := primitive.NewObjectID()
	id := oid.Hex()

	doc := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		doc[k] = v
	}
	// Lưu _id dạng ObjectID để snapshot decode vào model giống hệt Mongo
	doc["_id"] = oid

	a.mu.Lock()
	if a.data[collection] == nil {
		a.data[collection] = make(map[string]map[string]interface{})
		a.seq[collection] = make(map[string]int64)
	}
	a.data[collection][id] = doc
	a.seqNext++
	a.seq[collection][id] = a.seqNext
	a.mu.Unlock()

	a.notifySubscribers(collection)
	a.bus.Emit(ctx, ChangeEvent{Collection: collection, Operation: OpInsert, DocumentID: id, Document: doc})
	return id, nil
}

// UpdateDocument cập nhật một phần document theo id
func (a *MemoryAdapter) UpdateDocument(ctx context.Context, collection string, id string, partial map[string]interface{}) error {
	a.mu.Lock()
	doc, ok := a.data[collection][id]
	if !ok {
		a.mu.Unlock()
		return common.ErrNotFound
	}
	for k, v := range partial {
		doc[k] = v
	}
	a.mu.Unlock()

	a.notifySubscribers(collection)
	a.bus.Emit(ctx, ChangeEvent{Collection: collection, Operation: OpUpdate, DocumentID: id, Document: partial})
	return nil
}

// DeleteDocument xóa document theo id
func (a *MemoryAdapter) DeleteDocument(ctx context.Context, collection string, id string) error {
	a.mu.Lock()
	if _, ok := a.data[collection][id]; !ok {
		a.mu.Unlock()
		return common.ErrNotFound
	}
	delete(a.data[collection], id)
	delete(a.seq[collection], id)
	a.mu.Unlock()

	a.notifySubscribers(collection)
	a.bus.Emit(ctx, ChangeEvent{Collection: collection, Operation: OpDelete, DocumentID: id})
	return nil
}

// GetDocument đọc một document theo id
func (a *MemoryAdapter) GetDocument(ctx context.Context, collection string, id string) (bson.Raw, error) {
	a.mu.Lock()
	doc, ok := a.data[collection][id]
	if !ok {
		a.mu.Unlock()
		return nil, common.ErrNotFound
	}
	clone := cloneDocument(doc)
	a.mu.Unlock()

	raw, err := bson.Marshal(clone)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	return raw, nil
}

// QueryOnce đọc one-shot không live update
func (a *MemoryAdapter) QueryOnce(ctx context.Context, collection string, filter Filter, orderBy *OrderBy, limit int64) ([]bson.Raw, error) {
	a.mu.Lock()
	if err := a.queryErr[collection]; err != nil {
		a.mu.Unlock()
		return nil, err
	}

	matched := make([]map[string]interface{}, 0)
	seqs := make(map[string]int64, len(a.seq[collection]))
	for id, s := range a.seq[collection] {
		seqs[id] = s
	}
	for _, doc := range a.data[collection] {
		if matchesFilter(doc, filter) {
			matched = append(matched, cloneDocument(doc))
		}
	}
	a.mu.Unlock()

	// Sort theo orderBy, tie-break theo thứ tự insert để kết quả ổn định
	sort.SliceStable(matched, func(i, j int) bool {
		if orderBy != nil {
			cmp := compareValues(matched[i][orderBy.Field], matched[j][orderBy.Field])
			if cmp != 0 {
				if orderBy.Descending {
					return cmp > 0
				}
				return cmp < 0
			}
		}
		return seqs[asString(matched[i]["_id"])] < seqs[asString(matched[j]["_id"])]
	})

	if limit > 0 && int64(len(matched)) > limit {
		matched = matched[:limit]
	}

	docs := make([]bson.Raw, 0, len(matched))
	for _, doc := range matched {
		raw, err := bson.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("bson marshal failed: %w", err)
		}
		docs = append(docs, raw)
	}
	return docs, nil
}

func cloneDocument(doc map[string]interface{}) map[string]interface{} {
	clone := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		clone[k] = v
	}
	return clone
}

func matchesFilter(doc map[string]interface{}, filter Filter) bool {
	for field, want := range filter {
		if !reflect.DeepEqual(doc[field], want) {
			return false
		}
	}
	return true
}

func asString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case primitive.ObjectID:
		return s.Hex()
	}
	return ""
}

// compareValues so sánh hai giá trị field để sort: -1 nếu a < b, 1 nếu a > b
func compareValues(a, b interface{}) int {
	switch av := a.(type) {
	case int:
		return compareFloat(float64(av), toFloat(b))
	case int32:
		return compareFloat(float64(av), toFloat(b))
	case int64:
		return compareFloat(float64(av), toFloat(b))
	case float64:
		return compareFloat(av, toFloat(b))
	case string:
		bv, _ := b.(string)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	}
	return 0
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
