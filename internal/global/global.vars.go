package global

import (
	"outlet_catalog/config"
	"outlet_catalog/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogCollectionName chứa tên các collection trong MongoDB
type CatalogCollectionName struct {
	Outlets            string // Tên collection cho cửa hàng
	Taxes              string // Tên collection cho thuế
	Menus              string // Tên collection cho món
	Bundlings          string // Tên collection cho combo
	Promos             string // Tên collection cho khuyến mãi
	Careers            string // Tên collection cho tin tuyển dụng
	BlogPosts          string // Tên collection cho bài viết blog
	CareerApplications string // Tên collection cho hồ sơ ứng tuyển
}

// Các biến toàn cục
var Validate *validator.Validate             // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client            // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration       // Cấu hình của server
var ColNames CatalogCollectionName           // Tên các collection

// RegistryCollections chứa các collection handle, đăng ký một lần khi khởi động
var RegistryCollections = registry.NewRegistry[*mongo.Collection]()
