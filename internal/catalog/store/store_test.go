package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"outlet_catalog/internal/common"
)

// waitSnapshot chờ snapshot kế tiếp của subscription, fail nếu quá hạn
func waitSnapshot(t *testing.T, sub *Subscription) []bson.Raw {
	t.Helper()
	select {
	case docs := <-sub.Snapshots():
		return docs
	case err := <-sub.Errors():
		t.Fatalf("unexpected subscription error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
	}
	return nil
}

func TestSubscribe_EmitsInitialSnapshot(t *testing.T) {
	adapter := NewMemoryAdapter()
	ctx := context.Background()

	if _, err := adapter.AddDocument(ctx, "menus", map[string]interface{}{"name": "Cà phê sữa"}); err != nil {
		t.Fatalf("AddDocument: %v", err)
	}

	sub, err := adapter.Subscribe(ctx, "menus", nil, nil)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer sub.Close()

	docs := waitSnapshot(t, sub)
	if len(docs) != 1 {
		t.Fatalf("initial snapshot has %d docs, want 1", len(docs))
	}
}

func TestSubscribe_EmptyCollectionNameRejected(t *testing.T) {
	adapter := NewMemoryAdapter()

	_, err := adapter.Subscribe(context.Background(), "", nil, nil)
	if err == nil {
		t.Fatal("Subscribe with empty collection should fail")
	}
	var cerr *common.Error
	if !errors.As(err, &cerr) || cerr.Code.Code != common.ErrCodeSubscription.Code {
		t.Fatalf("error = %v, want code %s", err, common.ErrCodeSubscription.Code)
	}
}

func TestSubscription_SnapshotReflectsMutations(t *testing.T) {
	adapter := NewMemoryAdapter()
	ctx := context.Background()

	sub, err := adapter.Subscribe(ctx, "menus", nil, nil)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer sub.Close()
	waitSnapshot(t, sub) // snapshot đầu tiên, rỗng

	id, err := adapter.AddDocument(ctx, "menus", map[string]interface{}{"name": "Bạc xỉu", "basePrice": float64(25000)})
	if err != nil {
		t.Fatalf("AddDocument: %v", err)
	}

	// Snapshot sau insert phải chứa document mới
	deadline := time.After(2 * time.Second)
	for {
		var docs []bson.Raw
		select {
		case docs = <-sub.Snapshots():
		case <-deadline:
			t.Fatal("never observed inserted document")
		}
		if len(docs) == 1 {
			break
		}
	}

	if err := adapter.DeleteDocument(ctx, "menus", id); err != nil {
		t.Fatalf("DeleteDocument: %v", err)
	}
	for {
		var docs []bson.Raw
		select {
		case docs = <-sub.Snapshots():
		case <-time.After(2 * time.Second):
			t.Fatal("never observed deletion")
		}
		if len(docs) == 0 {
			return
		}
	}
}

func TestSubscription_CloseUnregisters(t *testing.T) {
	adapter := NewMemoryAdapter()

	sub, err := adapter.Subscribe(context.Background(), "menus", nil, nil)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if got := adapter.OpenSubscriptions("menus"); got != 1 {
		t.Fatalf("OpenSubscriptions = %d, want 1", got)
	}

	sub.Close()
	sub.Close() // idempotent
	if got := adapter.OpenSubscriptions("menus"); got != 0 {
		t.Fatalf("OpenSubscriptions after Close = %d, want 0", got)
	}
}

func TestQueryOnce_OrderAndLimit(t *testing.T) {
	adapter := NewMemoryAdapter()
	ctx := context.Background()

	for _, m := range []map[string]interface{}{
		{"name": "A", "orderCount": int64(3)},
		{"name": "B", "orderCount": int64(9)},
		{"name": "C", "orderCount": int64(6)},
	} {
		if _, err := adapter.AddDocument(ctx, "menus", m); err != nil {
			t.Fatalf("AddDocument: %v", err)
		}
	}

	docs, err := adapter.QueryOnce(ctx, "menus", nil, &OrderBy{Field: "orderCount", Descending: true}, 2)
	if err != nil {
		t.Fatalf("QueryOnce: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("len = %d, want 2", len(docs))
	}

	var first, second struct {
		Name string `bson:"name"`
	}
	if err := bson.Unmarshal(docs[0], &first); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := bson.Unmarshal(docs[1], &second); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if first.Name != "B" || second.Name != "C" {
		t.Fatalf("order = %s,%s; want B,C", first.Name, second.Name)
	}
}

func TestQueryOnce_InjectedErrorReachesSubscription(t *testing.T) {
	adapter := NewMemoryAdapter()
	ctx := context.Background()

	sub, err := adapter.Subscribe(ctx, "menus", nil, nil)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer sub.Close()
	waitSnapshot(t, sub)

	adapter.SetQueryError("menus", errors.New("permission denied"))

	select {
	case err := <-sub.Errors():
		var cerr *common.Error
		if !errors.As(err, &cerr) || cerr.Code.Code != common.ErrCodeSubscription.Code {
			t.Fatalf("error = %v, want subscription error code", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for subscription error")
	}
}

func TestGetDocument_NotFound(t *testing.T) {
	adapter := NewMemoryAdapter()

	_, err := adapter.GetDocument(context.Background(), "menus", "000000000000000000000000")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestChangeBus_DeliversToAllHandlers(t *testing.T) {
	bus := NewChangeBus()

	var mu sync.Mutex
	got := make([]string, 0, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	for i := 0; i < 2; i++ {
		bus.OnChange(func(ctx context.Context, e ChangeEvent) {
			mu.Lock()
			got = append(got, e.DocumentID)
			mu.Unlock()
			wg.Done()
		})
	}

	bus.Emit(context.Background(), ChangeEvent{Collection: "menus", Operation: OpInsert, DocumentID: "abc"})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handlers never ran")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 2 || got[0] != "abc" || got[1] != "abc" {
		t.Fatalf("handler deliveries = %v", got)
	}
}

func TestChangeBus_HandlerPanicDoesNotCrash(t *testing.T) {
	bus := NewChangeBus()

	bus.OnChange(func(ctx context.Context, e ChangeEvent) {
		panic("boom")
	})
	ran := make(chan struct{})
	bus.OnChange(func(ctx context.Context, e ChangeEvent) {
		close(ran)
	})

	bus.Emit(context.Background(), ChangeEvent{Collection: "menus", Operation: OpDelete, DocumentID: "x"})

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("second handler never ran after first panicked")
	}
}
