// Package models - các model thuộc domain catalog.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tên các collection trong MongoDB
const (
	CollectionOutlets            = "outlets"
	CollectionTaxes              = "taxes"
	CollectionMenus              = "menus"
	CollectionBundlings          = "bundlings"
	CollectionPromos             = "promos"
	CollectionCareers            = "careers"
	CollectionBlogPosts          = "blog_posts"
	CollectionCareerApplications = "career_applications"
)

// Outlet định nghĩa mô hình cửa hàng.
// Outlet là scope gốc cho Menu/Bundling/Promo. Xóa outlet không cascade
// sang các entity phụ thuộc - tham chiếu mồ côi được chấp nhận và bị bỏ qua
// khi đọc.
type Outlet struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" index:"text"`
	Address   string             `json:"address" bson:"address"`
	Phone     string             `json:"phone" bson:"phone"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// OutletPatch chứa các trường có thể cập nhật của Outlet.
// Field nil sẽ không được đưa vào truy vấn $set.
type OutletPatch struct {
	Name      *string `json:"name,omitempty" bson:"name,omitempty"`
	Address   *string `json:"address,omitempty" bson:"address,omitempty"`
	Phone     *string `json:"phone,omitempty" bson:"phone,omitempty"`
	UpdatedAt int64   `json:"-" bson:"updatedAt"`
}

// OutletCreateInput là dữ liệu đầu vào khi tạo Outlet
type OutletCreateInput struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone" validate:"omitempty,min=8,max=20"`
}
