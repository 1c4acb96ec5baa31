package logger

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"
)

// capture redirects log output to a buffer for the duration of the test.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose_Toggles(t *testing.T) {
	t.Cleanup(func() { SetVerbose(false) })

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose off initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose on after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose off after SetVerbose(false)")
	}
}

func TestVerboseLevels_Format(t *testing.T) {
	tests := []struct {
		name string
		log  func()
		want string
	}{
		{"debug", func() { Debug("discovered %d topics", 12) }, "[DEBUG] discovered 12 topics\n"},
		{"info", func() { Info("cache warm after %s", "1.2s") }, "[INFO] cache warm after 1.2s\n"},
		{"warn", func() { Warn("no title for %s", "oomkilled") }, "[WARN] no title for oomkilled\n"},
		{"section", func() { Section("Index Scrape") }, "\n=== Index Scrape ===\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t)
			SetVerbose(true)

			tt.log()

			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVerboseLevels_SilentByDefault(t *testing.T) {
	buf := capture(t)
	SetVerbose(false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Section("hidden")

	if buf.Len() > 0 {
		t.Errorf("expected no output without --verbose, got %q", buf.String())
	}
}

func TestError_AlwaysPrints(t *testing.T) {
	buf := capture(t)
	SetVerbose(false)

	Error("fetch failed: %s", "timeout")

	if got := buf.String(); got != "[ERROR] fetch failed: timeout\n" {
		t.Errorf("unexpected error output: %q", got)
	}
}

func TestConcurrentAccess(t *testing.T) {
	// io.Discard keeps concurrent writes race-free
	SetOutput(io.Discard)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			SetVerbose(true)
			Debug("concurrent %d", n)
			IsVerbose()
			SetVerbose(false)
		}(i)
	}
	wg.Wait()
}
