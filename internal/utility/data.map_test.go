package utility

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type menuPatchFixture struct {
	Name      *string `bson:"name,omitempty"`
	BasePrice *int64  `bson:"basePrice,omitempty"`
	UpdatedAt int64   `bson:"updatedAt"`
}

// lookupField đọc một field từ document đã decode, chấp nhận cả hai dạng
// driver trả về cho document lồng nhau (map hoặc primitive.D)
func lookupField(doc interface{}, key string) (interface{}, bool) {
	switch d := doc.(type) {
	case map[string]interface{}:
		v, ok := d[key]
		return v, ok
	case primitive.M:
		v, ok := d[key]
		return v, ok
	case primitive.D:
		for _, e := range d {
			if e.Key == key {
				return e.Value, true
			}
		}
	}
	return nil, false
}

func TestToMap_OmitsNilPatchFields(t *testing.T) {
	name := "Cà phê sữa"
	patch := menuPatchFixture{Name: &name, UpdatedAt: 1700000000000}

	m, err := ToMap(patch)
	if err != nil {
		t.Fatalf("ToMap: %v", err)
	}
	if m["name"] != "Cà phê sữa" {
		t.Errorf("name = %v", m["name"])
	}
	if _, ok := m["basePrice"]; ok {
		t.Errorf("field nil không được xuất hiện trong map: %v", m)
	}
	if m["updatedAt"] != int64(1700000000000) {
		t.Errorf("updatedAt = %v (%T)", m["updatedAt"], m["updatedAt"])
	}
}

func TestCustomBson_SetWrapsPayload(t *testing.T) {
	var cb CustomBson
	update, err := cb.Set(map[string]interface{}{"name": "Bạc xỉu"})
	if err != nil {
		t.Fatalf("Set: %v", err)
	}

	inner, ok := update["$set"]
	if !ok {
		t.Fatalf("update thiếu khóa $set: %v", update)
	}
	if name, ok := lookupField(inner, "name"); !ok || name != "Bạc xỉu" {
		t.Errorf("$set.name = %v", name)
	}
	if _, ok := update["$unset"]; ok {
		t.Errorf("Set không được sinh $unset: %v", update)
	}
}

func TestCustomBson_UnsetWrapsPayload(t *testing.T) {
	var cb CustomBson
	update, err := cb.Unset(map[string]interface{}{"imageUrl": ""})
	if err != nil {
		t.Fatalf("Unset: %v", err)
	}
	if _, ok := update["$unset"]; !ok {
		t.Fatalf("update thiếu khóa $unset: %v", update)
	}
}
