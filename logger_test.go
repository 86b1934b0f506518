package framebuf

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	var out bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	if _, err := New(make([]byte, 1), 4, 4, GS8); err == nil {
		t.Fatal("New() with a short buffer should fail")
	}
	if !strings.Contains(out.String(), "rejected geometry") {
		t.Errorf("log output = %q, want a rejected geometry record", out.String())
	}

	out.Reset()
	if _, err := New(make([]byte, 16), 4, 4, GS8); err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !strings.Contains(out.String(), "format=GS8") {
		t.Errorf("log output = %q, want format=GS8", out.String())
	}

	SetLogger(nil)
	out.Reset()
	New(make([]byte, 1), 4, 4, GS8)
	if out.Len() != 0 {
		t.Errorf("log output after SetLogger(nil) = %q, want none", out.String())
	}
}
