package catalogsvc

import (
	"context"

	"outlet_catalog/internal/catalog/models"
	"outlet_catalog/internal/catalog/store"
	"outlet_catalog/internal/common"
	"outlet_catalog/internal/global"
)

// CareerService quản lý CRUD cho tin tuyển dụng
type CareerService struct {
	*Gateway[models.Career]
}

// NewCareerService tạo service cho Career
func NewCareerService(adapter store.Adapter) *CareerService {
	return &CareerService{NewGateway[models.Career](adapter, models.CollectionCareers)}
}

// Create tạo tin tuyển dụng mới
func (s *CareerService) Create(ctx context.Context, input models.CareerCreateInput) (string, error) {
	if err := global.Validate.Struct(input); err != nil {
		return "", common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	career := models.Career{
		Title:        input.Title,
		Description:  input.Description,
		Location:     input.Location,
		Requirements: input.Requirements,
		IsOpen:       input.IsOpen,
	}
	return s.Gateway.Create(ctx, career)
}

// Update cập nhật tin tuyển dụng theo patch
func (s *CareerService) Update(ctx context.Context, id string, patch models.CareerPatch) error {
	return s.Gateway.Update(ctx, id, patch)
}
