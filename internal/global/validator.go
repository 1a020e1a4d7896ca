package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	// objectid: chuỗi phải là một ObjectID hex hợp lệ (dùng cho các field tham chiếu)
	_ = Validate.RegisterValidation("objectid", validateObjectID)
	// tax_rate: phần trăm thuế trong [0,100]
	_ = Validate.RegisterValidation("tax_rate", validateTaxRate)
	// pin4: mã PIN gồm đúng 4 chữ số
	_ = Validate.RegisterValidation("pin4", validatePIN4)
}

// validateObjectID kiểm tra chuỗi là ObjectID hex hợp lệ
func validateObjectID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // optional field, required xử lý riêng
	}
	_, err := primitive.ObjectIDFromHex(value)
	return err == nil
}

// validateTaxRate kiểm tra rate nằm trong khoảng [0,100]
func validateTaxRate(fl validator.FieldLevel) bool {
	rate := fl.Field().Float()
	return rate >= 0 && rate <= 100
}

// validatePIN4 kiểm tra PIN gồm đúng 4 chữ số
func validatePIN4(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) != 4 {
		return false
	}
	for _, c := range value {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
