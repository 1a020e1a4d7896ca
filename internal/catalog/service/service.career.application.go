package catalogsvc

import (
	"context"

	"outlet_catalog/internal/catalog/models"
	"outlet_catalog/internal/catalog/store"
	"outlet_catalog/internal/common"
	"outlet_catalog/internal/global"
)

// CareerApplicationService quản lý hồ sơ ứng tuyển.
// Hồ sơ mới qua change bus sẽ kích hoạt worker gửi email thông báo admin.
type CareerApplicationService struct {
	*Gateway[models.CareerApplication]
}

// NewCareerApplicationService tạo service cho CareerApplication
func NewCareerApplicationService(adapter store.Adapter) *CareerApplicationService {
	return &CareerApplicationService{NewGateway[models.CareerApplication](adapter, models.CollectionCareerApplications)}
}

// Create nộp hồ sơ ứng tuyển mới
func (s *CareerApplicationService) Create(ctx context.Context, input models.CareerApplicationCreateInput) (string, error) {
	if err := global.Validate.Struct(input); err != nil {
		return "", common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	application := models.CareerApplication{
		CareerID:  input.CareerID,
		FullName:  input.FullName,
		Email:     input.Email,
		Phone:     input.Phone,
		ResumeURL: input.ResumeURL,
		Message:   input.Message,
	}
	return s.Gateway.Create(ctx, application)
}

// Update cập nhật hồ sơ theo patch
func (s *CareerApplicationService) Update(ctx context.Context, id string, patch models.CareerApplicationPatch) error {
	return s.Gateway.Update(ctx, id, patch)
}

// ListByCareer đọc one-shot hồ sơ của một tin tuyển dụng
func (s *CareerApplicationService) ListByCareer(ctx context.Context, careerID string) ([]models.CareerApplication, error) {
	if careerID == "" {
		return nil, common.ErrRequiredField
	}
	return s.QueryOnce(ctx,
		store.Filter{"careerId": careerID},
		&store.OrderBy{Field: "createdAt", Descending: true},
		0)
}
