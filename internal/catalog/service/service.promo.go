package catalogsvc

import (
	"context"

	"outlet_catalog/internal/catalog/models"
	"outlet_catalog/internal/catalog/store"
	"outlet_catalog/internal/common"
	"outlet_catalog/internal/global"
)

// PromoService quản lý CRUD cho Promo. Promo không có taxIds.
type PromoService struct {
	*Gateway[models.Promo]
}

// NewPromoService tạo service cho Promo
func NewPromoService(adapter store.Adapter) *PromoService {
	return &PromoService{NewGateway[models.Promo](adapter, models.CollectionPromos)}
}

// Create tạo khuyến mãi mới thuộc một outlet
func (s *PromoService) Create(ctx context.Context, input models.PromoCreateInput) (string, error) {
	if err := global.Validate.Struct(input); err != nil {
		return "", common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	promo := models.Promo{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		OutletID:    input.OutletID,
		ImageURL:    input.ImageURL,
		IsActive:    input.IsActive,
	}
	return s.Gateway.Create(ctx, promo)
}

// Update cập nhật khuyến mãi theo patch
func (s *PromoService) Update(ctx context.Context, id string, patch models.PromoPatch) error {
	return s.Gateway.Update(ctx, id, patch)
}
