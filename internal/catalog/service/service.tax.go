package catalogsvc

import (
	"context"

	"outlet_catalog/internal/catalog/models"
	"outlet_catalog/internal/catalog/store"
	"outlet_catalog/internal/common"
	"outlet_catalog/internal/global"
)

// TaxService quản lý CRUD cho Tax. Tax áp dụng toàn hệ thống, không theo
// outlet; đổi rate ảnh hưởng hồi tố tới giá hiển thị của mọi item tham chiếu.
type TaxService struct {
	*Gateway[models.Tax]
}

// NewTaxService tạo service cho Tax
func NewTaxService(adapter store.Adapter) *TaxService {
	return &TaxService{NewGateway[models.Tax](adapter, models.CollectionTaxes)}
}

// Create tạo thuế mới
func (s *TaxService) Create(ctx context.Context, input models.TaxCreateInput) (string, error) {
	if err := global.Validate.Struct(input); err != nil {
		return "", common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	tax := models.Tax{
		Name:        input.Name,
		Rate:        input.Rate,
		Description: input.Description,
		IsActive:    input.IsActive,
	}
	return s.Gateway.Create(ctx, tax)
}

// Update cập nhật thuế theo patch
func (s *TaxService) Update(ctx context.Context, id string, patch models.TaxPatch) error {
	return s.Gateway.Update(ctx, id, patch)
}

// ListOnce đọc one-shot toàn bộ bảng thuế theo thứ tự tạo giảm dần,
// dùng khi không cần live update
func (s *TaxService) ListOnce(ctx context.Context) ([]models.Tax, error) {
	return s.QueryOnce(ctx, store.Filter{}, &store.OrderBy{Field: "createdAt", Descending: true}, 0)
}
