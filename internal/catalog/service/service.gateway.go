// Package catalogsvc cung cấp Mutation Gateway và các service theo entity.
// Mọi thao tác ghi đi qua Remote Store Adapter; hiệu ứng của một mutation
// chỉ quan sát được qua snapshot kế tiếp của mirror, không có optimistic
// update cục bộ.
package catalogsvc

import (
	"context"
	"sync/atomic"
	"time"

	"outlet_catalog/internal/catalog/store"
	"outlet_catalog/internal/common"
	"outlet_catalog/internal/logger"
	"outlet_catalog/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
)

// Gateway thực hiện create/update/delete trên một collection.
//
// Mỗi lời gọi bật cờ mutationInFlight trong suốt thời gian chạy và tắt khi
// hoàn tất (thành công hay thất bại). Cờ này độc lập hoàn toàn với trạng
// thái của Collection Mirror: Create trả về xong KHÔNG bảo đảm mirror đã
// quan sát được bản ghi mới - khoảng eventual-consistency này là có chủ
// đích và được giữ nguyên thay vì giả lập đồng bộ bằng patch cục bộ.
type Gateway[T any] struct {
	adapter    store.Adapter
	collection string
	inFlight   atomic.Int64
}

// NewGateway tạo gateway cho một collection
func NewGateway[T any](adapter store.Adapter, collection string) *Gateway[T] {
	return &Gateway[T]{
		adapter:    adapter,
		collection: collection,
	}
}

// Collection trả về tên collection của gateway
func (g *Gateway[T]) Collection() string {
	return g.collection
}

// MutationInFlight cho biết có mutation nào đang chạy không
func (g *Gateway[T]) MutationInFlight() bool {
	return g.inFlight.Load() > 0
}

// Create thêm bản ghi mới, trả về id do store cấp.
// createdAt được gán theo đồng hồ client tại thời điểm gọi nếu model chưa có.
func (g *Gateway[T]) Create(ctx context.Context, model T) (string, error) {
	g.inFlight.Add(1)
	defer g.inFlight.Add(-1)

	doc, err := utility.ToMap(model)
	if err != nil {
		return "", common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err)
	}
	delete(doc, "_id")

	now := time.Now().UnixMilli()
	if created, ok := doc["createdAt"].(int64); !ok || created == 0 {
		doc["createdAt"] = now
	}
	doc["updatedAt"] = now

	id, err := g.adapter.AddDocument(ctx, g.collection, doc)
	if err != nil {
		return "", err
	}

	logger.GetAuditLogger().WithField("collection", g.collection).WithField("id", id).Info("Tạo bản ghi")
	return id, nil
}

// Update cập nhật một phần bản ghi theo id. patch là struct patch của entity
// (các field pointer, omitempty) - chỉ field khác nil được đưa vào $set.
func (g *Gateway[T]) Update(ctx context.Context, id string, patch interface{}) error {
	g.inFlight.Add(1)
	defer g.inFlight.Add(-1)

	partial, err := utility.ToMap(patch)
	if err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err)
	}
	delete(partial, "_id")
	partial["updatedAt"] = time.Now().UnixMilli()

	if err := g.adapter.UpdateDocument(ctx, g.collection, id, partial); err != nil {
		return err
	}

	logger.GetAuditLogger().WithField("collection", g.collection).WithField("id", id).Info("Cập nhật bản ghi")
	return nil
}

// Delete xóa bản ghi theo id. Không cascade sang entity tham chiếu -
// tham chiếu mồ côi được phía đọc bỏ qua trong im lặng.
func (g *Gateway[T]) Delete(ctx context.Context, id string) error {
	g.inFlight.Add(1)
	defer g.inFlight.Add(-1)

	if err := g.adapter.DeleteDocument(ctx, g.collection, id); err != nil {
		return err
	}

	logger.GetAuditLogger().WithField("collection", g.collection).WithField("id", id).Info("Xóa bản ghi")
	return nil
}

// FindByID đọc một bản ghi theo id
func (g *Gateway[T]) FindByID(ctx context.Context, id string) (T, error) {
	var model T
	raw, err := g.adapter.GetDocument(ctx, g.collection, id)
	if err != nil {
		return model, err
	}
	if err := bson.Unmarshal(raw, &model); err != nil {
		return model, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusInternalServerError, err)
	}
	return model, nil
}

// QueryOnce đọc one-shot không live update, dùng cho các phép đọc một lần
// như bảng thuế hay xếp hạng món bán chạy
func (g *Gateway[T]) QueryOnce(ctx context.Context, filter store.Filter, orderBy *store.OrderBy, limit int64) ([]T, error) {
	raws, err := g.adapter.QueryOnce(ctx, g.collection, filter, orderBy, limit)
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, len(raws))
	for _, raw := range raws {
		var model T
		if err := bson.Unmarshal(raw, &model); err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusInternalServerError, err)
		}
		items = append(items, model)
	}
	return items, nil
}
