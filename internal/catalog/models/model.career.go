package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Career định nghĩa tin tuyển dụng
type Career struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title        string             `json:"title" bson:"title" index:"text"`
	Description  string             `json:"description" bson:"description"`
	Location     string             `json:"location" bson:"location"`
	Requirements []string           `json:"requirements" bson:"requirements"`
	IsOpen       bool               `json:"isOpen" bson:"isOpen" index:"single:1"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}

// CareerPatch chứa các trường có thể cập nhật của Career
type CareerPatch struct {
	Title        *string   `json:"title,omitempty" bson:"title,omitempty"`
	Description  *string   `json:"description,omitempty" bson:"description,omitempty"`
	Location     *string   `json:"location,omitempty" bson:"location,omitempty"`
	Requirements *[]string `json:"requirements,omitempty" bson:"requirements,omitempty"`
	IsOpen       *bool     `json:"isOpen,omitempty" bson:"isOpen,omitempty"`
	UpdatedAt    int64     `json:"-" bson:"updatedAt"`
}

// CareerCreateInput là dữ liệu đầu vào khi tạo Career
type CareerCreateInput struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Requirements []string `json:"requirements"`
	IsOpen       bool     `json:"isOpen"`
}
