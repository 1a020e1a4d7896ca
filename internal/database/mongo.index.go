package database

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"outlet_catalog/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes tạo index cho collection dựa trên struct tag `index` của model.
// Hỗ trợ các dạng tag:
//   - index:"single:1" / index:"single:-1" — index đơn theo thứ tự tăng/giảm
//   - index:"unique"                       — index unique
//   - index:"unique,sparse"                — index unique sparse
//   - index:"text"                         — text index
//
// Index đã tồn tại đúng tên được bỏ qua, không drop-and-replace.
func CreateIndexes(ctx context.Context, collection *mongo.Collection, model interface{}) error {
	log := logger.GetAppLogger()

	modelType := reflect.TypeOf(model)
	if modelType.Kind() == reflect.Ptr {
		modelType = modelType.Elem()
	}

	// Lấy danh sách index hiện có
	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("không thể lấy danh sách index: %w", err)
	}
	defer cursor.Close(ctx)

	existing := map[string]bool{}
	for cursor.Next(ctx) {
		var indexInfo bson.M
		if err := cursor.Decode(&indexInfo); err != nil {
			return fmt.Errorf("không thể giải mã thông tin index: %w", err)
		}
		if name, ok := indexInfo["name"].(string); ok {
			existing[name] = true
		}
	}

	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		tag, ok := field.Tag.Lookup("index")
		if !ok {
			continue
		}

		bsonField := strings.TrimSpace(strings.Split(field.Tag.Get("bson"), ",")[0])
		if bsonField == "" || bsonField == "-" {
			continue
		}

		var (
			indexName string
			keys      bson.D
			opts      *options.IndexOptions
		)

		switch {
		case strings.HasPrefix(tag, "single:"):
			order := 1
			if strings.HasSuffix(tag, "-1") {
				order = -1
			}
			indexName = bsonField + "_single"
			keys = bson.D{{Key: bsonField, Value: order}}
			opts = options.Index().SetName(indexName)
		case strings.HasPrefix(tag, "unique"):
			indexName = bsonField + "_unique"
			keys = bson.D{{Key: bsonField, Value: 1}}
			opts = options.Index().SetName(indexName).SetUnique(true)
			if strings.Contains(tag, "sparse") {
				opts = opts.SetSparse(true)
			}
		case tag == "text":
			indexName = bsonField + "_text"
			keys = bson.D{{Key: bsonField, Value: "text"}}
			opts = options.Index().SetName(indexName)
		default:
			continue
		}

		if existing[indexName] {
			continue
		}

		if _, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys, Options: opts}); err != nil {
			if isIndexExistsError(err) {
				continue
			}
			return fmt.Errorf("không thể tạo index %s: %w", indexName, err)
		}
		log.WithField("index", indexName).WithField("collection", collection.Name()).Debug("Đã tạo index")
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
