package logger

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

// Entry đưa vào Fire bị logrus tái sử dụng ngay sau khi Fire trả về;
// hook phải ghi nội dung tại thời điểm Fire, không phải nội dung về sau.
func TestAsyncHook_FireCopiesEntry(t *testing.T) {
	var buf bytes.Buffer
	hook := NewAsyncHookWithWriters([]io.Writer{&buf}, 10)

	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true})

	entry := logrus.NewEntry(log)
	entry.Level = logrus.InfoLevel
	entry.Message = "ban ghi goc"

	if err := hook.Fire(entry); err != nil {
		t.Fatalf("Fire: %v", err)
	}

	// Mô phỏng logrus ghi đè entry sau khi Fire trả về
	entry.Message = "da bi ghi de"
	entry.Data["k"] = "v"

	hook.Close() // chờ goroutine ghi xong

	out := buf.String()
	if !strings.Contains(out, "ban ghi goc") {
		t.Fatalf("output thiếu message tại thời điểm Fire: %q", out)
	}
	if strings.Contains(out, "da bi ghi de") {
		t.Fatalf("output chứa nội dung bị ghi đè sau Fire: %q", out)
	}
}

func TestAsyncHook_FireAfterCloseWritesDirectly(t *testing.T) {
	var buf bytes.Buffer
	hook := NewAsyncHookWithWriters([]io.Writer{&buf}, 10)
	hook.Close()

	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true})

	entry := logrus.NewEntry(log)
	entry.Level = logrus.WarnLevel
	entry.Message = "sau khi dong"

	if err := hook.Fire(entry); err != nil {
		t.Fatalf("Fire sau Close: %v", err)
	}
	if !strings.Contains(buf.String(), "sau khi dong") {
		t.Fatalf("fallback sau Close không ghi entry: %q", buf.String())
	}
}
