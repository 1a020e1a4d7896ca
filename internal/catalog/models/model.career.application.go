package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CareerApplication định nghĩa hồ sơ ứng tuyển cho một tin tuyển dụng.
// ResumeURL trỏ tới file CV đã upload qua blob storage; hệ thống không
// đọc nội dung file.
type CareerApplication struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CareerID  string             `json:"careerId" bson:"careerId" validate:"objectid" index:"single:1"`
	FullName  string             `json:"fullName" bson:"fullName"`
	Email     string             `json:"email" bson:"email" validate:"email"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	ResumeURL string             `json:"resumeUrl,omitempty" bson:"resumeUrl,omitempty"`
	Message   string             `json:"message,omitempty" bson:"message,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// CareerApplicationPatch chứa các trường có thể cập nhật của CareerApplication
type CareerApplicationPatch struct {
	FullName  *string `json:"fullName,omitempty" bson:"fullName,omitempty"`
	Email     *string `json:"email,omitempty" bson:"email,omitempty"`
	Phone     *string `json:"phone,omitempty" bson:"phone,omitempty"`
	ResumeURL *string `json:"resumeUrl,omitempty" bson:"resumeUrl,omitempty"`
	Message   *string `json:"message,omitempty" bson:"message,omitempty"`
	UpdatedAt int64   `json:"-" bson:"updatedAt"`
}

// CareerApplicationCreateInput là dữ liệu đầu vào khi nộp hồ sơ
type CareerApplicationCreateInput struct {
	CareerID  string `json:"careerId" validate:"required,objectid"`
	FullName  string `json:"fullName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	ResumeURL string `json:"resumeUrl" validate:"omitempty,url"`
	Message   string `json:"message"`
}
