package main

import (
	"context"

	"outlet_catalog/config"
	"outlet_catalog/internal/catalog/models"
	"outlet_catalog/internal/database"
	"outlet_catalog/internal/global"
	"outlet_catalog/internal/utility"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initFirebase()         // Khởi tạo Firebase
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.ColNames.Outlets = models.CollectionOutlets
	global.ColNames.Taxes = models.CollectionTaxes
	global.ColNames.Menus = models.CollectionMenus
	global.ColNames.Bundlings = models.CollectionBundlings
	global.ColNames.Promos = models.CollectionPromos
	global.ColNames.Careers = models.CollectionCareers
	global.ColNames.BlogPosts = models.CollectionBlogPosts
	global.ColNames.CareerApplications = models.CollectionCareerApplications

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (global.InitValidator đăng ký custom validators: objectid, tax_rate, pin4)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database và index cho các collection
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Outlets), models.Outlet{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Taxes), models.Tax{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Menus), models.Menu{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Bundlings), models.Bundling{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Promos), models.Promo{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Careers), models.Career{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.BlogPosts), models.BlogPost{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.CareerApplications), models.CareerApplication{})
	logrus.Info("Ensured collection indexes")
}

// initFirebase khởi tạo Firebase Admin SDK.
// Firebase là tùy chọn: thiếu cấu hình thì auth chỉ còn JWT và upload bị tắt.
func initFirebase() {
	cfg := global.ServerConfig
	if cfg.FirebaseProjectID == "" || cfg.FirebaseCredentialsPath == "" {
		logrus.Warn("Firebase not configured, identity fallback and blob upload disabled")
		return
	}

	if err := utility.InitFirebase(cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath, cfg.FirebaseStorageBucket); err != nil {
		logrus.Errorf("Failed to initialize Firebase: %v", err)
		return
	}
	logrus.Info("Initialized Firebase Admin SDK")
}
