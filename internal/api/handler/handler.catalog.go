package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"outlet_catalog/internal/catalog/models"
	"outlet_catalog/internal/catalog/service"
	"outlet_catalog/internal/catalog/store"
)

// Catalog gom toàn bộ handler CRUD của API, mỗi entity một bộ
type Catalog struct {
	Outlets      *CrudHandler[models.Outlet, models.OutletCreateInput, models.OutletPatch]
	Taxes        *CrudHandler[models.Tax, models.TaxCreateInput, models.TaxPatch]
	Menus        *CrudHandler[models.Menu, models.MenuCreateInput, models.MenuPatch]
	Bundlings    *CrudHandler[models.Bundling, models.BundlingCreateInput, models.BundlingPatch]
	Promos       *CrudHandler[models.Promo, models.PromoCreateInput, models.PromoPatch]
	Careers      *CrudHandler[models.Career, models.CareerCreateInput, models.CareerPatch]
	BlogPosts    *CrudHandler[models.BlogPost, models.BlogPostCreateInput, models.BlogPostPatch]
	Applications *CrudHandler[models.CareerApplication, models.CareerApplicationCreateInput, models.CareerApplicationPatch]

	menuService *catalogsvc.MenuService
}

// NewCatalog khởi tạo toàn bộ service và handler trên một adapter
func NewCatalog(adapter store.Adapter) *Catalog {
	outletSvc := catalogsvc.NewOutletService(adapter)
	taxSvc := catalogsvc.NewTaxService(adapter)
	menuSvc := catalogsvc.NewMenuService(adapter)
	bundlingSvc := catalogsvc.NewBundlingService(adapter)
	promoSvc := catalogsvc.NewPromoService(adapter)
	careerSvc := catalogsvc.NewCareerService(adapter)
	blogSvc := catalogsvc.NewBlogPostService(adapter)
	applicationSvc := catalogsvc.NewCareerApplicationService(adapter)

	return &Catalog{
		Outlets:      NewCrudHandler(outletSvc.Gateway, outletSvc.Create, outletSvc.Update, ""),
		Taxes:        NewCrudHandler(taxSvc.Gateway, taxSvc.Create, taxSvc.Update, ""),
		Menus:        NewCrudHandler(menuSvc.Gateway, menuSvc.Create, menuSvc.Update, "outletId"),
		Bundlings:    NewCrudHandler(bundlingSvc.Gateway, bundlingSvc.Create, bundlingSvc.Update, "outletId"),
		Promos:       NewCrudHandler(promoSvc.Gateway, promoSvc.Create, promoSvc.Update, "outletId"),
		Careers:      NewCrudHandler(careerSvc.Gateway, careerSvc.Create, careerSvc.Update, ""),
		BlogPosts:    NewCrudHandler(blogSvc.Gateway, blogSvc.Create, blogSvc.Update, ""),
		Applications: NewCrudHandler(applicationSvc.Gateway, applicationSvc.Create, applicationSvc.Update, "careerId"),
		menuService:  menuSvc,
	}
}

// PopularMenus xử lý GET bảng xếp hạng món bán chạy của một outlet
// theo orderCount giảm dần
func (h *Catalog) PopularMenus(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		var limit int64
		if raw := c.Query("limit"); raw != "" {
			if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
				limit = parsed
			}
		}
		items, err := h.menuService.PopularMenus(c.Context(), c.Query("outletId"), limit)
		HandleResponse(c, items, err)
		return nil
	})
}
