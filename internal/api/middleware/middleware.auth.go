// Package middleware chứa các middleware xác thực cho các route admin.
// Core không tự phân quyền chi tiết - nó tin danh tính caller do middleware
// này gắn vào context.
package middleware

import (
	"fmt"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"

	"outlet_catalog/internal/common"
	"outlet_catalog/internal/global"
	"outlet_catalog/internal/logger"
	"outlet_catalog/internal/utility"
)

// RequireAuth xác thực Bearer token cho các đường mutation admin.
// Thử JWT nội bộ (ký HMAC bằng JwtSecret) trước, fallback sang Firebase
// ID token nếu Firebase đã được khởi tạo. Danh tính được gắn vào
// c.Locals("user_id") cho các handler phía sau.
func RequireAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return common.ErrTokenMissing
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return common.ErrTokenMissing
		}

		// JWT nội bộ
		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("phương thức ký không được hỗ trợ: %v", t.Header["alg"])
			}
			return []byte(global.ServerConfig.JwtSecret), nil
		})
		if err == nil && token.Valid {
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if sub, ok := claims["sub"].(string); ok {
					c.Locals("user_id", sub)
				}
				return c.Next()
			}
		}

		// Fallback Firebase ID token
		if utility.IsFirebaseInitialized() {
			if fbToken, fbErr := utility.VerifyFirebaseToken(c.Context(), tokenString); fbErr == nil {
				c.Locals("user_id", fbToken.UID)
				return c.Next()
			}
		}

		logger.GetAuditLogger().WithField("path", c.Path()).Warn("Từ chối token không hợp lệ")

		ve, ok := err.(*jwt.ValidationError)
		if ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return common.ErrTokenExpired
		}
		return common.ErrTokenInvalid
	}
}
