package catalogsvc

import (
	"context"

	"outlet_catalog/internal/catalog/models"
	"outlet_catalog/internal/catalog/store"
	"outlet_catalog/internal/common"
	"outlet_catalog/internal/global"
)

// MenuService quản lý CRUD cho Menu
type MenuService struct {
	*Gateway[models.Menu]
}

// NewMenuService tạo service cho Menu
func NewMenuService(adapter store.Adapter) *MenuService {
	return &MenuService{NewGateway[models.Menu](adapter, models.CollectionMenus)}
}

// Create tạo món mới thuộc một outlet
func (s *MenuService) Create(ctx context.Context, input models.MenuCreateInput) (string, error) {
	if err := global.Validate.Struct(input); err != nil {
		return "", common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	menu := models.Menu{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		TaxIDs:      input.TaxIDs,
		OutletID:    input.OutletID,
		ImageURL:    input.ImageURL,
		IsAvailable: input.IsAvailable,
		Category:    input.Category,
	}
	return s.Gateway.Create(ctx, menu)
}

// Update cập nhật món theo patch
func (s *MenuService) Update(ctx context.Context, id string, patch models.MenuPatch) error {
	return s.Gateway.Update(ctx, id, patch)
}

// PopularMenus đọc one-shot các món bán chạy của một outlet, xếp theo
// orderCount giảm dần. limit <= 0 dùng mặc định 10.
func (s *MenuService) PopularMenus(ctx context.Context, outletID string, limit int64) ([]models.Menu, error) {
	if outletID == "" {
		return nil, common.ErrRequiredField
	}
	if limit <= 0 {
		limit = 10
	}
	return s.QueryOnce(ctx,
		store.Filter{"outletId": outletID},
		&store.OrderBy{Field: "orderCount", Descending: true},
		limit)
}
