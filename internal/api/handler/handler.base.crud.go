package handler

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"outlet_catalog/internal/catalog/service"
	"outlet_catalog/internal/catalog/store"
)

// CrudHandler cung cấp bộ handler CRUD chung cho một entity.
// Type Parameters:
//   - T: Kiểu model của entity
//   - CreateInput: DTO tạo mới (validate trong service)
//   - Patch: struct patch các field cập nhật được
type CrudHandler[T any, CreateInput any, Patch any] struct {
	gateway    *catalogsvc.Gateway[T]
	createFn   func(context.Context, CreateInput) (string, error)
	updateFn   func(context.Context, string, Patch) error
	scopeParam string // query param scope (ví dụ outletId); "" nếu entity không scoped
}

// NewCrudHandler tạo bộ handler CRUD cho một entity
func NewCrudHandler[T any, CreateInput any, Patch any](
	gateway *catalogsvc.Gateway[T],
	createFn func(context.Context, CreateInput) (string, error),
	updateFn func(context.Context, string, Patch) error,
	scopeParam string,
) *CrudHandler[T, CreateInput, Patch] {
	return &CrudHandler[T, CreateInput, Patch]{
		gateway:    gateway,
		createFn:   createFn,
		updateFn:   updateFn,
		scopeParam: scopeParam,
	}
}

// Create xử lý POST tạo bản ghi mới, trả về id do store cấp
func (h *CrudHandler[T, CreateInput, Patch]) Create(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		var input CreateInput
		if err := ParseRequestBody(c, &input); err != nil {
			HandleResponse(c, nil, err)
			return nil
		}
		id, err := h.createFn(c.Context(), input)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}
		HandleResponse(c, fiber.Map{"id": id}, nil)
		return nil
	})
}

// FindByID xử lý GET một bản ghi theo id
func (h *CrudHandler[T, CreateInput, Patch]) FindByID(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		data, err := h.gateway.FindByID(c.Context(), c.Params("id"))
		HandleResponse(c, data, err)
		return nil
	})
}

// List xử lý GET danh sách, đọc one-shot theo thứ tự tạo giảm dần.
// Entity scoped thiếu scope trong query trả về danh sách rỗng thay vì
// một phép đọc không giới hạn phạm vi.
func (h *CrudHandler[T, CreateInput, Patch]) List(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter := store.Filter{}
		if h.scopeParam != "" {
			scope := c.Query(h.scopeParam)
			if scope == "" {
				HandleResponse(c, []T{}, nil)
				return nil
			}
			filter[h.scopeParam] = scope
		}

		var limit int64
		if raw := c.Query("limit"); raw != "" {
			if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
				limit = parsed
			}
		}

		items, err := h.gateway.QueryOnce(c.Context(), filter,
			&store.OrderBy{Field: "createdAt", Descending: true}, limit)
		HandleResponse(c, items, err)
		return nil
	})
}

// Update xử lý PATCH cập nhật một phần bản ghi theo id
func (h *CrudHandler[T, CreateInput, Patch]) Update(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		var patch Patch
		if err := ParseRequestBody(c, &patch); err != nil {
			HandleResponse(c, nil, err)
			return nil
		}
		err := h.updateFn(c.Context(), c.Params("id"), patch)
		HandleResponse(c, nil, err)
		return nil
	})
}

// Delete xử lý DELETE bản ghi theo id
func (h *CrudHandler[T, CreateInput, Patch]) Delete(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		err := h.gateway.Delete(c.Context(), c.Params("id"))
		HandleResponse(c, nil, err)
		return nil
	})
}
