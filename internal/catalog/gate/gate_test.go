// Package gate - test máy trạng thái PIN.
package gate

import (
	"os"
	"testing"

	"outlet_catalog/internal/global"
)

func enterPin(g *Gate, pin string) {
	for _, d := range pin {
		g.EnterDigit(d)
	}
}

func TestGate_CorrectPinUnlocks(t *testing.T) {
	g := New(map[string]string{"tebet": "1101"})

	g.SelectOutlet("911 Coffee Tebet")
	if g.State() != StateEntering {
		t.Fatalf("sau khi chọn outlet phải là Entering, nhận %s", g.State())
	}

	enterPin(g, "1101")
	if g.Cursor() != 4 {
		t.Fatalf("đã nhập 4 chữ số, cursor phải là 4, nhận %d", g.Cursor())
	}

	if got := g.Submit(); got != StateUnlocked {
		t.Errorf("PIN đúng phải cho Unlocked, nhận %s", got)
	}
	if g.Outlet() != "911 Coffee Tebet" {
		t.Errorf("Unlocked phải scoped về outlet đã chọn, nhận %q", g.Outlet())
	}
}

func TestGate_FragmentMatchIsCaseInsensitive(t *testing.T) {
	g := New(map[string]string{"TEBET": "1101"})

	g.SelectOutlet("911 coffee tebet")
	enterPin(g, "1101")
	if got := g.Submit(); got != StateUnlocked {
		t.Errorf("so khớp fragment không phân biệt hoa thường, nhận %s", got)
	}
}

func TestGate_WrongPinFailsAndResetsCursor(t *testing.T) {
	g := New(map[string]string{"tebet": "1101"})

	g.SelectOutlet("911 Coffee Tebet")
	enterPin(g, "9999")
	if got := g.Submit(); got != StateFailed {
		t.Fatalf("PIN sai phải cho Failed, nhận %s", got)
	}
	if g.Cursor() != 0 {
		t.Errorf("sau Failed cursor phải về 0, nhận %d", g.Cursor())
	}

	// Gõ tiếp sau Failed bắt đầu lượt nhập mới
	g.EnterDigit('1')
	if g.State() != StateEntering {
		t.Errorf("gõ tiếp sau Failed phải quay về Entering, nhận %s", g.State())
	}
	if g.Cursor() != 1 {
		t.Errorf("lượt nhập mới phải bắt đầu từ chữ số vừa gõ, cursor nhận %d", g.Cursor())
	}

	enterPin(g, "101")
	if got := g.Submit(); got != StateUnlocked {
		t.Errorf("nhập đúng sau Failed phải mở được, nhận %s", got)
	}
}

func TestGate_UnknownOutletNeverUnlocks(t *testing.T) {
	g := New(map[string]string{"tebet": "1101"})

	// Outlet không khớp fragment nào: lỗ hổng cấu hình, mọi PIN đều Failed
	g.SelectOutlet("911 Coffee Bandung")
	for _, pin := range []string{"0000", "1101", "9999"} {
		enterPin(g, pin)
		if got := g.Submit(); got != StateFailed {
			t.Errorf("outlet không cấu hình secret phải luôn Failed với PIN %s, nhận %s", pin, got)
		}
	}
}

func TestGate_SelectingSecondOutletRelocks(t *testing.T) {
	g := New(map[string]string{"tebet": "1101", "kemang": "2202"})

	g.SelectOutlet("911 Coffee Tebet")
	enterPin(g, "1101")
	if got := g.Submit(); got != StateUnlocked {
		t.Fatalf("outlet thứ nhất phải mở được, nhận %s", got)
	}

	// Chọn outlet khác: unlock cũ không còn hiệu lực, phải nhập lại
	g.SelectOutlet("911 Coffee Kemang")
	if g.State() != StateEntering {
		t.Errorf("chọn outlet mới phải yêu cầu nhập lại, nhận %s", g.State())
	}
	if g.Cursor() != 0 {
		t.Errorf("lượt nhập cho outlet mới phải bắt đầu từ 0, nhận %d", g.Cursor())
	}

	// PIN của outlet cũ không mở được outlet mới
	enterPin(g, "1101")
	if got := g.Submit(); got != StateFailed {
		t.Errorf("PIN của outlet cũ phải Failed với outlet mới, nhận %s", got)
	}
	enterPin(g, "2202")
	if got := g.Submit(); got != StateUnlocked {
		t.Errorf("PIN đúng của outlet mới phải mở được, nhận %s", got)
	}
}

func TestGate_CancelReturnsToLocked(t *testing.T) {
	g := New(nil)

	g.SelectOutlet("911 Coffee Tebet")
	enterPin(g, "11")
	g.Cancel()

	if g.State() != StateLocked {
		t.Errorf("Cancel phải quay về Locked, nhận %s", g.State())
	}
	if g.Cursor() != 0 {
		t.Errorf("Cancel phải xóa chữ số đã nhập, cursor nhận %d", g.Cursor())
	}

	// Nhập khi chưa chọn outlet không có tác dụng
	g.EnterDigit('1')
	if g.Cursor() != 0 {
		t.Error("không được nhận chữ số khi đang Locked")
	}
}

func TestGate_SubmitRequiresFourDigits(t *testing.T) {
	g := New(map[string]string{"tebet": "1101"})

	g.SelectOutlet("911 Coffee Tebet")
	enterPin(g, "110")
	if got := g.Submit(); got != StateEntering {
		t.Errorf("Submit khi chưa đủ 4 chữ số phải giữ Entering, nhận %s", got)
	}

	// Ký tự không phải chữ số và chữ số thứ 5 đều bị bỏ qua
	g.EnterDigit('x')
	if g.Cursor() != 3 {
		t.Errorf("ký tự không phải chữ số phải bị bỏ qua, cursor nhận %d", g.Cursor())
	}
	g.EnterDigit('1')
	g.EnterDigit('9')
	if g.Cursor() != 4 {
		t.Errorf("chữ số thứ 5 phải bị bỏ qua, cursor nhận %d", g.Cursor())
	}
}

func TestGate_MalformedSecretIsDropped(t *testing.T) {
	g := New(map[string]string{
		"tebet":  "11a1", // không phải 4 chữ số
		"kemang": "2202",
	})

	// Fragment có PIN sai dạng bị loại: outlet khớp nó coi như không cấu hình
	g.SelectOutlet("911 Coffee Tebet")
	enterPin(g, "11a1")
	if g.Cursor() == 4 {
		t.Fatal("ký tự không phải chữ số không được tính vào PIN")
	}
	g.Cancel()
	g.SelectOutlet("911 Coffee Tebet")
	enterPin(g, "1101")
	if got := g.Submit(); got != StateFailed {
		t.Errorf("outlet có secret sai dạng phải luôn Failed, nhận %s", got)
	}

	// Fragment hợp lệ trong cùng mapping vẫn hoạt động
	g.SelectOutlet("911 Coffee Kemang")
	enterPin(g, "2202")
	if got := g.Submit(); got != StateUnlocked {
		t.Errorf("fragment hợp lệ phải mở được, nhận %s", got)
	}
}

func TestMain(m *testing.M) {
	global.InitValidator()
	os.Exit(m.Run())
}
