package utility

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var (
	firebaseApp    *firebase.App
	firebaseAuth   *auth.Client
	firebaseBucket string
)

// resolveCredentialsPath resolve đường dẫn credentials tương đối
// từ thư mục project (nơi chứa config/env)
func resolveCredentialsPath(credentialsPath string) (string, error) {
	if filepath.IsAbs(credentialsPath) {
		return credentialsPath, nil
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(currentDir, credentialsPath), nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", fmt.Errorf("không tìm thấy thư mục project")
		}
		currentDir = parentDir
	}
}

// InitFirebase khởi tạo Firebase Admin SDK với service account credentials.
// storageBucket có thể rỗng nếu không dùng tính năng upload.
func InitFirebase(projectID, credentialsPath, storageBucket string) error {
	resolved, err := resolveCredentialsPath(credentialsPath)
	if err != nil {
		return fmt.Errorf("không thể resolve đường dẫn credentials: %w", err)
	}

	if _, err := os.Stat(resolved); os.IsNotExist(err) {
		return fmt.Errorf("firebase credentials file not found: %s", resolved)
	}

	cfg := &firebase.Config{
		ProjectID:     projectID,
		StorageBucket: storageBucket,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	app, err := firebase.NewApp(ctx, cfg, option.WithCredentialsFile(resolved))
	if err != nil {
		return fmt.Errorf("không thể khởi tạo Firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return fmt.Errorf("không thể khởi tạo Firebase auth client: %w", err)
	}

	firebaseApp = app
	firebaseAuth = authClient
	firebaseBucket = storageBucket
	return nil
}

// IsFirebaseInitialized kiểm tra Firebase đã được khởi tạo chưa
func IsFirebaseInitialized() bool {
	return firebaseApp != nil && firebaseAuth != nil
}

// VerifyFirebaseToken xác thực Firebase ID token và trả về thông tin token
func VerifyFirebaseToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if firebaseAuth == nil {
		return nil, fmt.Errorf("firebase chưa được khởi tạo")
	}
	token, err := firebaseAuth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("token không hợp lệ: %w", err)
	}
	return token, nil
}

// UploadBlob upload dữ liệu lên Firebase Storage và trả về URL công khai.
// objectPath là đường dẫn object trong bucket, ví dụ "menus/espresso.jpg"
func UploadBlob(ctx context.Context, objectPath, contentType string, data io.Reader) (string, error) {
	if firebaseApp == nil {
		return "", fmt.Errorf("firebase chưa được khởi tạo")
	}
	if firebaseBucket == "" {
		return "", fmt.Errorf("storage bucket chưa được cấu hình")
	}

	storageClient, err := firebaseApp.Storage(ctx)
	if err != nil {
		return "", fmt.Errorf("không thể khởi tạo storage client: %w", err)
	}

	bucket, err := storageClient.Bucket(firebaseBucket)
	if err != nil {
		return "", fmt.Errorf("không thể lấy bucket handle: %w", err)
	}

	writer := bucket.Object(objectPath).NewWriter(ctx)
	writer.ContentType = contentType
	if _, err := io.Copy(writer, data); err != nil {
		writer.Close()
		return "", fmt.Errorf("không thể ghi dữ liệu lên storage: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("không thể hoàn tất upload: %w", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", firebaseBucket, objectPath), nil
}
