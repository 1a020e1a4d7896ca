package handler

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v3"

	"outlet_catalog/internal/common"
	"outlet_catalog/internal/utility"
)

// maxUploadSize giới hạn kích thước file upload (5MB)
const maxUploadSize = 5 << 20

// Upload xử lý POST multipart upload ảnh món / CV ứng tuyển lên blob
// storage và trả về URL công khai. Hệ thống không đọc nội dung file -
// URL được client đưa vào imageUrl/resumeUrl trước khi gọi mutation.
func Upload(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput, "Thiếu file upload", common.StatusBadRequest, err.Error()))
			return nil
		}
		if fileHeader.Size > maxUploadSize {
			HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput, "File vượt quá kích thước cho phép", common.StatusBadRequest, nil))
			return nil
		}

		file, err := fileHeader.Open()
		if err != nil {
			HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer, "Không đọc được file upload", common.StatusInternalServerError, err.Error()))
			return nil
		}
		defer file.Close()

		folder := c.Query("folder", "uploads")
		objectPath := fmt.Sprintf("%s/%d%s", folder, time.Now().UnixNano(), filepath.Ext(fileHeader.Filename))
		contentType := fileHeader.Header.Get("Content-Type")

		url, err := utility.UploadBlob(c.Context(), objectPath, contentType, file)
		if err != nil {
			HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer, "Upload thất bại", common.StatusInternalServerError, err.Error()))
			return nil
		}
		HandleResponse(c, fiber.Map{"url": url}, nil)
		return nil
	})
}
