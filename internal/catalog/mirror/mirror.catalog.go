package mirror

import (
	"outlet_catalog/internal/catalog/models"
	"outlet_catalog/internal/catalog/store"
)

// orderCreatedDesc là thứ tự mặc định của mọi mirror: mới tạo trước.
// Riêng với Tax, thứ tự này đồng thời là thứ tự áp thuế của pricing engine.
var orderCreatedDesc = &store.OrderBy{Field: "createdAt", Descending: true}

// NewOutletMirror mirror toàn bộ outlets
func NewOutletMirror(adapter store.Adapter) *Mirror[models.Outlet] {
	return New[models.Outlet](adapter, models.CollectionOutlets, "", orderCreatedDesc)
}

// NewTaxMirror mirror toàn bộ taxes. Đây là shared state đọc bởi nhiều
// consumer pricing; chỉ có một writer là store qua đường snapshot.
func NewTaxMirror(adapter store.Adapter) *Mirror[models.Tax] {
	return New[models.Tax](adapter, models.CollectionTaxes, "", orderCreatedDesc)
}

// NewMenuMirror mirror menus theo outlet
func NewMenuMirror(adapter store.Adapter) *Mirror[models.Menu] {
	return New[models.Menu](adapter, models.CollectionMenus, "outletId", orderCreatedDesc)
}

// NewBundlingMirror mirror bundlings theo outlet
func NewBundlingMirror(adapter store.Adapter) *Mirror[models.Bundling] {
	return New[models.Bundling](adapter, models.CollectionBundlings, "outletId", orderCreatedDesc)
}

// NewPromoMirror mirror promos theo outlet
func NewPromoMirror(adapter store.Adapter) *Mirror[models.Promo] {
	return New[models.Promo](adapter, models.CollectionPromos, "outletId", orderCreatedDesc)
}

// NewCareerMirror mirror toàn bộ tin tuyển dụng
func NewCareerMirror(adapter store.Adapter) *Mirror[models.Career] {
	return New[models.Career](adapter, models.CollectionCareers, "", orderCreatedDesc)
}

// NewBlogPostMirror mirror toàn bộ bài viết blog
func NewBlogPostMirror(adapter store.Adapter) *Mirror[models.BlogPost] {
	return New[models.BlogPost](adapter, models.CollectionBlogPosts, "", orderCreatedDesc)
}

// NewCareerApplicationMirror mirror hồ sơ ứng tuyển theo tin tuyển dụng
func NewCareerApplicationMirror(adapter store.Adapter) *Mirror[models.CareerApplication] {
	return New[models.CareerApplication](adapter, models.CollectionCareerApplications, "careerId", orderCreatedDesc)
}
