package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BundlingMenuItem tham chiếu một Menu trong combo theo id kèm số lượng hiển thị.
// Không có ràng buộc toàn vẹn với Menu - món bị xóa để lại tham chiếu mồ côi,
// phía đọc tự bỏ qua.
type BundlingMenuItem struct {
	MenuRef  string `json:"menuRef" bson:"menuRef" validate:"required,objectid"`
	Quantity int    `json:"quantity" bson:"quantity" validate:"gte=1"`
}

// Bundling định nghĩa mô hình combo, thuộc về đúng một Outlet.
// Giá hiệu lực tính như Menu: từ (price, taxIds, bảng Tax hiện hành).
type Bundling struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" index:"text"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price" validate:"gte=0"`
	TaxIDs      []string           `json:"taxIds" bson:"taxIds"`
	OutletID    string             `json:"outletId" bson:"outletId" validate:"objectid" index:"single:1"`
	ImageURL    string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	MenuItems   []BundlingMenuItem `json:"menuItems" bson:"menuItems"`
	IsAvailable bool               `json:"isAvailable" bson:"isAvailable"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// BundlingPatch chứa các trường có thể cập nhật của Bundling
type BundlingPatch struct {
	Name        *string             `json:"name,omitempty" bson:"name,omitempty"`
	Description *string             `json:"description,omitempty" bson:"description,omitempty"`
	Price       *float64            `json:"price,omitempty" bson:"price,omitempty"`
	TaxIDs      *[]string           `json:"taxIds,omitempty" bson:"taxIds,omitempty"`
	ImageURL    *string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	MenuItems   *[]BundlingMenuItem `json:"menuItems,omitempty" bson:"menuItems,omitempty"`
	IsAvailable *bool               `json:"isAvailable,omitempty" bson:"isAvailable,omitempty"`
	UpdatedAt   int64               `json:"-" bson:"updatedAt"`
}

// BundlingCreateInput là dữ liệu đầu vào khi tạo Bundling
type BundlingCreateInput struct {
	Name        string             `json:"name" validate:"required"`
	Description string             `json:"description"`
	Price       float64            `json:"price" validate:"gte=0"`
	TaxIDs      []string           `json:"taxIds" validate:"dive,objectid"`
	OutletID    string             `json:"outletId" validate:"required,objectid"`
	ImageURL    string             `json:"imageUrl"`
	MenuItems   []BundlingMenuItem `json:"menuItems" validate:"dive"`
	IsAvailable bool               `json:"isAvailable"`
}
