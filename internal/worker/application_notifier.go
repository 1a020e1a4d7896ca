// Package worker chứa các tiến trình nền phản ứng theo sự kiện thay đổi
// dữ liệu của store.
package worker

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"outlet_catalog/config"
	"outlet_catalog/internal/catalog/models"
	"outlet_catalog/internal/catalog/store"
	"outlet_catalog/internal/logger"
)

// sendMailFunc cho phép test thay đường gửi SMTP thật
type sendMailFunc func(msg *gomail.Message) error

// ApplicationNotifier gửi email cho admin khi có hồ sơ ứng tuyển mới.
// Notifier tiêu thụ change bus của adapter - cùng đường push mà các
// subscription dùng, không poll collection.
type ApplicationNotifier struct {
	cfg  *config.Configuration
	send sendMailFunc
}

// NewApplicationNotifier tạo notifier với cấu hình SMTP
func NewApplicationNotifier(cfg *config.Configuration) *ApplicationNotifier {
	n := &ApplicationNotifier{cfg: cfg}
	n.send = func(msg *gomail.Message) error {
		dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
		return dialer.DialAndSend(msg)
	}
	return n
}

// Register đăng ký notifier vào change bus của adapter
func (n *ApplicationNotifier) Register(bus *store.ChangeBus) {
	bus.OnChange(n.handle)
}

// handle lọc sự kiện insert của collection hồ sơ ứng tuyển và gửi thông báo
func (n *ApplicationNotifier) handle(ctx context.Context, e store.ChangeEvent) {
	if e.Collection != models.CollectionCareerApplications || e.Operation != store.OpInsert {
		return
	}

	if n.cfg.SMTPHost == "" || n.cfg.AdminEmail == "" {
		logger.GetAppLogger().Debug("Bỏ qua thông báo hồ sơ ứng tuyển: SMTP chưa được cấu hình")
		return
	}

	fullName, _ := e.Document["fullName"].(string)
	email, _ := e.Document["email"].(string)
	careerID, _ := e.Document["careerId"].(string)
	resumeURL, _ := e.Document["resumeUrl"].(string)

	msg := gomail.NewMessage()
	msg.SetHeader("From", n.cfg.SMTPFromEmail)
	msg.SetHeader("To", n.cfg.AdminEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Hồ sơ ứng tuyển mới từ %s", fullName))
	msg.SetBody("text/html", fmt.Sprintf(
		"<p>Có hồ sơ ứng tuyển mới.</p>"+
			"<ul><li>Họ tên: %s</li><li>Email: %s</li><li>Tin tuyển dụng: %s</li><li>CV: %s</li></ul>",
		fullName, email, careerID, resumeURL))

	if err := n.send(msg); err != nil {
		logger.GetErrorLogger().WithError(err).WithField("applicationId", e.DocumentID).
			Error("Không gửi được email thông báo hồ sơ ứng tuyển")
		return
	}
	logger.GetAppLogger().WithField("applicationId", e.DocumentID).Info("Đã gửi thông báo hồ sơ ứng tuyển")
}
