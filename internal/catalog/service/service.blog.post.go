package catalogsvc

import (
	"context"

	"outlet_catalog/internal/catalog/models"
	"outlet_catalog/internal/catalog/store"
	"outlet_catalog/internal/common"
	"outlet_catalog/internal/global"
)

// BlogPostService quản lý CRUD cho bài viết blog
type BlogPostService struct {
	*Gateway[models.BlogPost]
}

// NewBlogPostService tạo service cho BlogPost
func NewBlogPostService(adapter store.Adapter) *BlogPostService {
	return &BlogPostService{NewGateway[models.BlogPost](adapter, models.CollectionBlogPosts)}
}

// Create tạo bài viết mới
func (s *BlogPostService) Create(ctx context.Context, input models.BlogPostCreateInput) (string, error) {
	if err := global.Validate.Struct(input); err != nil {
		return "", common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	post := models.BlogPost{
		Title:     input.Title,
		Slug:      input.Slug,
		Content:   input.Content,
		Author:    input.Author,
		ImageURL:  input.ImageURL,
		Published: input.Published,
	}
	return s.Gateway.Create(ctx, post)
}

// Update cập nhật bài viết theo patch
func (s *BlogPostService) Update(ctx context.Context, id string, patch models.BlogPostPatch) error {
	return s.Gateway.Update(ctx, id, patch)
}
