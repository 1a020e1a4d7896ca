package catalogsvc

import (
	"context"

	"outlet_catalog/internal/catalog/models"
	"outlet_catalog/internal/catalog/store"
	"outlet_catalog/internal/common"
	"outlet_catalog/internal/global"
)

// BundlingService quản lý CRUD cho Bundling.
// menuItems chỉ tham chiếu Menu theo id - không có kiểm tra toàn vẹn với
// Menu đang sống, món bị xóa để lại tham chiếu mồ côi cho phía đọc bỏ qua.
type BundlingService struct {
	*Gateway[models.Bundling]
}

// NewBundlingService tạo service cho Bundling
func NewBundlingService(adapter store.Adapter) *BundlingService {
	return &BundlingService{NewGateway[models.Bundling](adapter, models.CollectionBundlings)}
}

// Create tạo combo mới thuộc một outlet
func (s *BundlingService) Create(ctx context.Context, input models.BundlingCreateInput) (string, error) {
	if err := global.Validate.Struct(input); err != nil {
		return "", common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	bundling := models.Bundling{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		TaxIDs:      input.TaxIDs,
		OutletID:    input.OutletID,
		ImageURL:    input.ImageURL,
		MenuItems:   input.MenuItems,
		IsAvailable: input.IsAvailable,
	}
	return s.Gateway.Create(ctx, bundling)
}

// Update cập nhật combo theo patch
func (s *BundlingService) Update(ctx context.Context, id string, patch models.BundlingPatch) error {
	return s.Gateway.Update(ctx, id, patch)
}
