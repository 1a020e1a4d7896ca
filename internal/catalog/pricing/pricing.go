// Package pricing tính giá hiển thị đã gồm thuế cho Menu/Bundling từ bảng
// Tax đang mirror. Giá hiệu lực là hàm thuần của (price, taxIds, bảng Tax) -
// không bao giờ lưu xuống store, luôn tính tại thời điểm đọc.
package pricing

import (
	"github.com/shopspring/decimal"

	"outlet_catalog/internal/catalog/models"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// EffectivePrice tính giá gồm thuế theo chính sách lũy kế (compounding):
// duyệt bảng taxes theo đúng thứ tự mirror (createdAt giảm dần), với mỗi
// thuế được item tham chiếu: effective *= (1 + rate/100).
//
// Hai hành vi cần giữ nguyên:
//   - Thuế isActive=false VẪN được áp. Nguồn dữ liệu không loại thuế ngừng
//     hoạt động khỏi phép tính và phía đọc cũng không.
//   - taxId không còn resolve được trong bảng taxes bị bỏ qua trong im lặng,
//     không phải lỗi.
//
// Bảng taxes rỗng (mirror chưa hội tụ) cho ra giá gốc.
func EffectivePrice(basePrice float64, taxIDs []string, taxes []models.Tax) float64 {
	if len(taxIDs) == 0 || len(taxes) == 0 {
		return basePrice
	}

	refs := make(map[string]struct{}, len(taxIDs))
	for _, id := range taxIDs {
		refs[id] = struct{}{}
	}

	effective := decimal.NewFromFloat(basePrice)
	applied := false
	for _, tax := range taxes {
		if _, ok := refs[tax.ID.Hex()]; !ok {
			continue
		}
		factor := one.Add(decimal.NewFromFloat(tax.Rate).Div(hundred))
		effective = effective.Mul(factor)
		applied = true
	}
	if !applied {
		return basePrice
	}

	result, _ := effective.Float64()
	return result
}

// MenuPrice tính giá hiển thị của một Menu
func MenuPrice(menu models.Menu, taxes []models.Tax) float64 {
	return EffectivePrice(menu.Price, menu.TaxIDs, taxes)
}

// BundlingPrice tính giá hiển thị của một Bundling
func BundlingPrice(bundling models.Bundling, taxes []models.Tax) float64 {
	return EffectivePrice(bundling.Price, bundling.TaxIDs, taxes)
}

// PromoPrice trả về giá hiển thị của Promo. Promo không có taxIds -
// giá hiển thị luôn là giá gốc, một bất đối xứng có chủ đích so với
// Menu/Bundling.
func PromoPrice(promo models.Promo) float64 {
	return promo.Price
}
