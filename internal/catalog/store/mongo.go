package store

import (
	"context"
	"sync"

	"outlet_catalog/internal/common"
	"outlet_catalog/internal/logger"
	"outlet_catalog/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAdapter hiện thực Adapter trên MongoDB.
// MongoDB không có primitive push snapshot như mong muốn, nên adapter ghép
// từ hai phần: một change bus in-process (mọi mutation qua adapter phát sự
// kiện) và re-query - mỗi subscription khi nhận sự kiện trên collection của
// nó sẽ truy vấn lại và phát toàn bộ result set theo thứ tự.
type MongoAdapter struct {
	db  *mongo.Database
	bus *ChangeBus

	mu   sync.Mutex
	subs map[string]map[*Subscription]struct{} // collection -> subscriptions đang mở
}

// NewMongoAdapter tạo adapter trên một database handle.
// Bus được chia sẻ cho các consumer ngoài (worker, ...) qua Bus().
func NewMongoAdapter(db *mongo.Database) *MongoAdapter {
	return &MongoAdapter{
		db:   db,
		bus:  NewChangeBus(),
		subs: make(map[string]map[*Subscription]struct{}),
	}
}

// Bus trả về change bus của adapter để đăng ký handler ngoài
func (a *MongoAdapter) Bus() *ChangeBus {
	return a.bus
}

// Subscribe mở subscription trên collection. Snapshot đầu tiên được phát
// ngay sau khi đăng ký.
func (a *MongoAdapter) Subscribe(ctx context.Context, collection string, filter Filter, orderBy *OrderBy) (*Subscription, error) {
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

// notifySubscribers đánh thức mọi subscription đang mở trên collection
func (a *MongoAdapter) notifySubscribers(collection string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for sub := range a.subs[collection] {
		sub.notify()
	}
}

// AddDocument thêm document mới, trả về id do store cấp
func (a *MongoAdapter) AddDocument(ctx context.Context, collection string, payload map[string]interface{}) (string, error) {
	result, err := a.db.Collection(collection).InsertOne(ctx, payload)
	if err != nil {
		return "", common.ConvertMongoError(err)
	}

	id := ""
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		id = oid.Hex()
	}

	a.notifySubscribers(collection)
	a.bus.Emit(ctx, ChangeEvent{Collection: collection, Operation: OpInsert, DocumentID: id, Document: payload})
	return id, nil
}

// UpdateDocument cập nhật một phần document theo id qua $set
func (a *MongoAdapter) UpdateDocument(ctx context.Context, collection string, id string, partial map[string]interface{}) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return common.ErrInvalidFormat
	}

	var customBson utility.CustomBson
	update, err := customBson.Set(partial)
	if err != nil {
		return common.ErrInvalidFormat
	}

	result, err := a.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		return common.ErrNotFound
	}

	a.notifySubscribers(collection)
	a.bus.Emit(ctx, ChangeEvent{Collection: collection, Operation: OpUpdate, DocumentID: id, Document: partial})
	return nil
}

// DeleteDocument xóa document theo id.
// Không cascade - tham chiếu từ entity khác được phía đọc tự bỏ qua.
func (a *MongoAdapter) DeleteDocument(ctx context.Context, collection string, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return common.ErrInvalidFormat
	}

	result, err := a.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}

	a.notifySubscribers(collection)
	a.bus.Emit(ctx, ChangeEvent{Collection: collection, Operation: OpDelete, DocumentID: id})
	return nil
}

// GetDocument đọc một document theo id
func (a *MongoAdapter) GetDocument(ctx context.Context, collection string, id string) (bson.Raw, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrInvalidFormat
	}

	raw, err := a.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Raw()
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return raw, nil
}

// QueryOnce đọc one-shot không live update
func (a *MongoAdapter) QueryOnce(ctx context.Context, collection string, filter Filter, orderBy *OrderBy, limit int64) ([]bson.Raw, error) {
	query := bson.M{}
	for field, value := range filter {
		query[field] = value
	}

	opts := options.Find()
	if orderBy != nil {
		dir := 1
		if orderBy.Descending {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: orderBy.Field, Value: dir}})
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := a.db.Collection(collection).Find(ctx, query, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	docs := make([]bson.Raw, 0)
	for cursor.Next(ctx) {
		raw := make(bson.Raw, len(cursor.Current))
		copy(raw, cursor.Current)
		docs = append(docs, raw)
	}
	if err := cursor.Err(); err != nil {
		logger.GetErrorLogger().WithError(err).WithField("collection", collection).Error("Lỗi cursor khi truy vấn")
		return nil, common.ConvertMongoError(err)
	}
	return docs, nil
}
