package catalogsvc

import (
	"context"

	"outlet_catalog/internal/catalog/models"
	"outlet_catalog/internal/catalog/store"
	"outlet_catalog/internal/common"
	"outlet_catalog/internal/global"
)

// OutletService quản lý CRUD cho Outlet
type OutletService struct {
	*Gateway[models.Outlet]
}

// NewOutletService tạo service cho Outlet
func NewOutletService(adapter store.Adapter) *OutletService {
	return &OutletService{NewGateway[models.Outlet](adapter, models.CollectionOutlets)}
}

// Create tạo outlet mới từ dữ liệu đầu vào đã validate
func (s *OutletService) Create(ctx context.Context, input models.OutletCreateInput) (string, error) {
	if err := global.Validate.Struct(input); err != nil {
		return "", common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	outlet := models.Outlet{
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
	}
	return s.Gateway.Create(ctx, outlet)
}

// Update cập nhật outlet theo patch
func (s *OutletService) Update(ctx context.Context, id string, patch models.OutletPatch) error {
	return s.Gateway.Update(ctx, id, patch)
}
