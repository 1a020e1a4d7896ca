package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Menu định nghĩa mô hình món, thuộc về đúng một Outlet.
// Price là giá gốc chưa thuế; giá hiệu lực luôn được tính tại thời điểm đọc
// từ (price, taxIds, bảng Tax hiện hành), không bao giờ lưu xuống DB.
type Menu struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" index:"text"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price" validate:"gte=0"`
	TaxIDs      []string           `json:"taxIds" bson:"taxIds"`
	OutletID    string             `json:"outletId" bson:"outletId" validate:"objectid" index:"single:1"`
	ImageURL    string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	IsAvailable bool               `json:"isAvailable" bson:"isAvailable"`
	Category    string             `json:"category,omitempty" bson:"category,omitempty" index:"single:1"`
	OrderCount  int64              `json:"orderCount" bson:"orderCount" index:"single:-1"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// MenuPatch chứa các trường có thể cập nhật của Menu
type MenuPatch struct {
	Name        *string   `json:"name,omitempty" bson:"name,omitempty"`
	Description *string   `json:"description,omitempty" bson:"description,omitempty"`
	Price       *float64  `json:"price,omitempty" bson:"price,omitempty"`
	TaxIDs      *[]string `json:"taxIds,omitempty" bson:"taxIds,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	IsAvailable *bool     `json:"isAvailable,omitempty" bson:"isAvailable,omitempty"`
	Category    *string   `json:"category,omitempty" bson:"category,omitempty"`
	OrderCount  *int64    `json:"orderCount,omitempty" bson:"orderCount,omitempty"`
	UpdatedAt   int64     `json:"-" bson:"updatedAt"`
}

// MenuCreateInput là dữ liệu đầu vào khi tạo Menu
type MenuCreateInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	TaxIDs      []string `json:"taxIds" validate:"dive,objectid"`
	OutletID    string   `json:"outletId" validate:"required,objectid"`
	ImageURL    string   `json:"imageUrl"`
	IsAvailable bool     `json:"isAvailable"`
	Category    string   `json:"category"`
}
