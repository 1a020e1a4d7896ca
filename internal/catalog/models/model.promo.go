package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PromoCategory là khung giờ áp dụng khuyến mãi
type PromoCategory string

const (
	PromoCategoryMorning   PromoCategory = "morning"
	PromoCategoryAfternoon PromoCategory = "afternoon"
	PromoCategoryEvening   PromoCategory = "evening"
	PromoCategoryNight     PromoCategory = "night"
)

// Promo định nghĩa mô hình khuyến mãi, thuộc về đúng một Outlet.
// Promo không có taxIds - giá hiển thị luôn là giá gốc, khác với Menu/Bundling.
type Promo struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" index:"text"`
	Description string             `json:"description" bson:"description"`
	Category    PromoCategory      `json:"category" bson:"category" validate:"oneof=morning afternoon evening night" index:"single:1"`
	Price       float64            `json:"price" bson:"price" validate:"gte=0"`
	OutletID    string             `json:"outletId" bson:"outletId" validate:"objectid" index:"single:1"`
	ImageURL    string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	IsActive    bool               `json:"isActive" bson:"isActive" index:"single:1"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// PromoPatch chứa các trường có thể cập nhật của Promo
type PromoPatch struct {
	Name        *string        `json:"name,omitempty" bson:"name,omitempty"`
	Description *string        `json:"description,omitempty" bson:"description,omitempty"`
	Category    *PromoCategory `json:"category,omitempty" bson:"category,omitempty"`
	Price       *float64       `json:"price,omitempty" bson:"price,omitempty"`
	ImageURL    *string        `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	IsActive    *bool          `json:"isActive,omitempty" bson:"isActive,omitempty"`
	UpdatedAt   int64          `json:"-" bson:"updatedAt"`
}

// PromoCreateInput là dữ liệu đầu vào khi tạo Promo
type PromoCreateInput struct {
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description"`
	Category    PromoCategory `json:"category" validate:"required,oneof=morning afternoon evening night"`
	Price       float64       `json:"price" validate:"gte=0"`
	OutletID    string        `json:"outletId" validate:"required,objectid"`
	ImageURL    string        `json:"imageUrl"`
	IsActive    bool          `json:"isActive"`
}
