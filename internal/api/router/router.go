// Package router đăng ký toàn bộ route của API catalog.
// Đường đọc công khai; mọi mutation và hồ sơ ứng tuyển (trừ nộp hồ sơ)
// yêu cầu xác thực.
package router

import (
	"github.com/gofiber/fiber/v3"

	"outlet_catalog/internal/api/handler"
	"outlet_catalog/internal/api/middleware"
	"outlet_catalog/internal/catalog/store"
)

// Register đăng ký tất cả route lên app dưới prefix /api/v1
func Register(app *fiber.App, adapter store.Adapter) {
	catalog := handler.NewCatalog(adapter)
	auth := middleware.RequireAuth()

	v1 := app.Group("/api/v1")

	v1.Get("/system/health", func(c fiber.Ctx) error {
		return handler.JSONResponse(c, fiber.StatusOK, fiber.Map{"status": "ok"})
	})

	// Xếp hạng món bán chạy - đọc công khai.
	// Đăng ký trước /menus/:id để không bị route param nuốt mất.
	v1.Get("/menus/popular", catalog.PopularMenus)

	registerCrud(v1, "/outlets", auth, catalog.Outlets)
	registerCrud(v1, "/taxes", auth, catalog.Taxes)
	registerCrud(v1, "/menus", auth, catalog.Menus)
	registerCrud(v1, "/bundlings", auth, catalog.Bundlings)
	registerCrud(v1, "/promos", auth, catalog.Promos)
	registerCrud(v1, "/careers", auth, catalog.Careers)
	registerCrud(v1, "/blog-posts", auth, catalog.BlogPosts)

	// Hồ sơ ứng tuyển: nộp hồ sơ công khai, đọc/sửa/xóa cần xác thực
	v1.Post("/career-applications", catalog.Applications.Create)
	v1.Get("/career-applications", catalog.Applications.List, auth)
	v1.Get("/career-applications/:id", catalog.Applications.FindByID, auth)
	v1.Patch("/career-applications/:id", catalog.Applications.Update, auth)
	v1.Delete("/career-applications/:id", catalog.Applications.Delete, auth)

	// Upload blob (ảnh món, CV) - cần xác thực
	v1.Post("/uploads", handler.Upload, auth)
}

// registerCrud đăng ký bộ route CRUD chuẩn cho một entity:
// đọc công khai, mutation qua middleware xác thực
func registerCrud[T any, CreateInput any, Patch any](
	v1 fiber.Router,
	prefix string,
	auth fiber.Handler,
	h *handler.CrudHandler[T, CreateInput, Patch],
) {
	v1.Get(prefix, h.List)
	v1.Get(prefix+"/:id", h.FindByID)
	v1.Post(prefix, h.Create, auth)
	v1.Patch(prefix+"/:id", h.Update, auth)
	v1.Delete(prefix+"/:id", h.Delete, auth)
}
