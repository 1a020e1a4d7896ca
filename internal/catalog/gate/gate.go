// Package gate hiện thực máy trạng thái PIN bảo vệ lối vào trang quản lý
// bundling theo outlet. Mỗi outlet gắn với một mã PIN 4 chữ số; mapping
// fragment-tên-outlet -> secret nằm trong cấu hình cố định.
package gate

import (
	"strings"
	"sync"

	"outlet_catalog/internal/global"
	"outlet_catalog/internal/logger"
)

// State là trạng thái của gate
type State int

const (
	StateLocked State = iota
	StateEntering
	StateVerifying
	StateUnlocked
	StateFailed
)

// String trả về tên trạng thái
func (s State) String() string {
	switch s {
	case StateLocked:
		return "locked"
	case StateEntering:
		return "entering"
	case StateVerifying:
		return "verifying"
	case StateUnlocked:
		return "unlocked"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// PinLength là độ dài mã PIN
const PinLength = 4

// DefaultSecrets là mapping mặc định fragment tên outlet -> PIN.
// So khớp substring không phân biệt hoa thường trên tên outlet.
var DefaultSecrets = map[string]string{
	"tebet":   "1101",
	"kemang":  "2202",
	"senayan": "3303",
}

// Gate là máy trạng thái PIN cho một phiên làm việc.
// Unlocked chỉ có hiệu lực với đúng một outlet; chọn outlet khác quay về
// Locked và phải nhập lại, không có unlock bền vững trong session.
type Gate struct {
	secrets map[string]string

	mu       sync.Mutex
	state    State
	outlet   string // tên outlet đang thao tác
	expected string // PIN kỳ vọng; rỗng nghĩa là không fragment nào khớp
	digits   []rune
}

// New tạo gate với mapping secret cho trước; nil dùng DefaultSecrets.
// Secret không đúng dạng 4 chữ số là lỗ hổng cấu hình: fragment đó bị loại
// khỏi mapping (outlet khớp nó sẽ không bao giờ mở được) và được cảnh báo.
func New(secrets map[string]string) *Gate {
	if secrets == nil {
		secrets = DefaultSecrets
	}

	valid := make(map[string]string, len(secrets))
	for fragment, pin := range secrets {
		if global.Validate != nil {
			if err := global.Validate.Var(pin, "pin4"); err != nil {
				logger.GetAppLogger().WithField("fragment", fragment).
					Warn("PIN cấu hình không đúng dạng 4 chữ số - loại fragment khỏi mapping")
				continue
			}
		}
		valid[fragment] = pin
	}

	return &Gate{
		secrets: valid,
		state:   StateLocked,
	}
}

// resolveSecret tìm PIN kỳ vọng cho tên outlet bằng so khớp substring
// không phân biệt hoa thường. Trả về chuỗi rỗng nếu không fragment nào khớp.
func (g *Gate) resolveSecret(outletName string) string {
	lowered := strings.ToLower(outletName)
	for fragment, secret := range g.secrets {
		if strings.Contains(lowered, strings.ToLower(fragment)) {
			return secret
		}
	}
	return ""
}

// SelectOutlet chọn outlet cần mở khóa và bắt đầu nhập PIN.
// Nếu đang Unlocked cho outlet khác, gate quay về bắt đầu lại từ đầu
// cho outlet mới - không giữ unlock cũ.
func (g *Gate) SelectOutlet(outletName string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.outlet = outletName
	g.expected = g.resolveSecret(outletName)
	g.digits = g.digits[:0]
	g.state = StateEntering

	if g.expected == "" {
		// Lỗ hổng cấu hình: outlet không khớp fragment nào thì không mã nào
		// mở được. Cảnh báo thay vì lặng lẽ cho qua.
		logger.GetAppLogger().WithField("outlet", outletName).
			Warn("Outlet không khớp fragment PIN nào trong cấu hình - gate sẽ không thể mở")
	}
}

// EnterDigit nhập một chữ số. Bỏ qua nếu không ở trạng thái Entering,
// nếu ký tự không phải chữ số, hoặc đã đủ 4 chữ số.
func (g *Gate) EnterDigit(d rune) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StateFailed {
		// Failed tự reset về Entering với cursor 0 khi người dùng gõ tiếp
		g.digits = g.digits[:0]
		g.state = StateEntering
	}
	if g.state != StateEntering {
		return
	}
	if d < '0' || d > '9' {
		return
	}
	if len(g.digits) >= PinLength {
		return
	}
	g.digits = append(g.digits, d)
}

// Submit xác minh PIN đã nhập. Chỉ hợp lệ khi đã đủ 4 chữ số.
// Khớp secret -> Unlocked(outlet); lệch -> Failed rồi xóa toàn bộ chữ số
// đã nhập (cursor về 0). Outlet không có secret cấu hình không bao giờ khớp.
func (g *Gate) Submit() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateEntering || len(g.digits) != PinLength {
		return g.state
	}

	g.state = StateVerifying
	entered := string(g.digits)

	if g.expected != "" && entered == g.expected {
		g.state = StateUnlocked
		g.digits = g.digits[:0]
		logger.GetAuditLogger().WithField("outlet", g.outlet).Info("Gate mở khóa")
		return g.state
	}

	g.state = StateFailed
	g.digits = g.digits[:0]
	return g.state
}

// Cancel đóng challenge, quay về Locked không side effect
func (g *Gate) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = StateLocked
	g.digits = g.digits[:0]
	g.outlet = ""
	g.expected = ""
}

// State trả về trạng thái hiện tại
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Outlet trả về tên outlet đang thao tác (outlet đã unlock nếu Unlocked)
func (g *Gate) Outlet() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.outlet
}

// Cursor trả về số chữ số đã nhập
func (g *Gate) Cursor() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.digits)
}
