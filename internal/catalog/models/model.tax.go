package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tax định nghĩa mô hình thuế, áp dụng toàn hệ thống (không theo outlet).
// Menu/Bundling tham chiếu thuế qua tập taxIds chứ không nhúng bản sao,
// nên thay đổi rate ảnh hưởng hồi tố tới giá hiển thị của mọi item tham chiếu.
// Lưu ý: IsActive không loại thuế khỏi việc tính giá - xem package pricing.
type Tax struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Rate        float64            `json:"rate" bson:"rate" validate:"tax_rate"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	IsActive    bool               `json:"isActive" bson:"isActive" index:"single:1"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// TaxPatch chứa các trường có thể cập nhật của Tax
type TaxPatch struct {
	Name        *string  `json:"name,omitempty" bson:"name,omitempty"`
	Rate        *float64 `json:"rate,omitempty" bson:"rate,omitempty"`
	Description *string  `json:"description,omitempty" bson:"description,omitempty"`
	IsActive    *bool    `json:"isActive,omitempty" bson:"isActive,omitempty"`
	UpdatedAt   int64    `json:"-" bson:"updatedAt"`
}

// TaxCreateInput là dữ liệu đầu vào khi tạo Tax
type TaxCreateInput struct {
	Name        string  `json:"name" validate:"required"`
	Rate        float64 `json:"rate" validate:"tax_rate"`
	Description string  `json:"description"`
	IsActive    bool    `json:"isActive"`
}
