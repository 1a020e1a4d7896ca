package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost định nghĩa bài viết blog
type BlogPost struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title" index:"text"`
	Slug      string             `json:"slug" bson:"slug" index:"unique,sparse"`
	Content   string             `json:"content" bson:"content"`
	Author    string             `json:"author" bson:"author"`
	ImageURL  string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Published bool               `json:"published" bson:"published" index:"single:1"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// BlogPostPatch chứa các trường có thể cập nhật của BlogPost
type BlogPostPatch struct {
	Title     *string `json:"title,omitempty" bson:"title,omitempty"`
	Slug      *string `json:"slug,omitempty" bson:"slug,omitempty"`
	Content   *string `json:"content,omitempty" bson:"content,omitempty"`
	Author    *string `json:"author,omitempty" bson:"author,omitempty"`
	ImageURL  *string `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Published *bool   `json:"published,omitempty" bson:"published,omitempty"`
	UpdatedAt int64   `json:"-" bson:"updatedAt"`
}

// BlogPostCreateInput là dữ liệu đầu vào khi tạo BlogPost
type BlogPostCreateInput struct {
	Title     string `json:"title" validate:"required"`
	Slug      string `json:"slug" validate:"omitempty,lowercase"`
	Content   string `json:"content" validate:"required"`
	Author    string `json:"author"`
	ImageURL  string `json:"imageUrl"`
	Published bool   `json:"published"`
}
