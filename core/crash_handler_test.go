package core

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func captureCrash(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()
	var out bytes.Buffer
	code := -1
	crashOut = &out
	crashExit = func(c int) { code = c }
	t.Cleanup(func() {
		crashOut = io.Writer(os.Stderr)
		crashExit = os.Exit
		SetCrashCleanup(nil)
	})
	return &out, &code
}

func TestHandleCrash_NilIsNoop(t *testing.T) {
	out, code := captureCrash(t)
	cleaned := false
	SetCrashCleanup(func() { cleaned = true })

	HandleCrash(nil)

	if cleaned || out.Len() != 0 || *code != -1 {
		t.Errorf("Expected no action for nil, got cleaned=%v out=%q code=%d", cleaned, out.String(), *code)
	}
}

func TestHandleCrash_CleansUpOnceAndExits(t *testing.T) {
	out, code := captureCrash(t)
	calls := 0
	SetCrashCleanup(func() { calls++ })

	HandleCrash("boom")
	HandleCrash("again")

	if calls != 1 {
		t.Errorf("Expected cleanup once, got %d", calls)
	}
	if *code != 1 {
		t.Errorf("Expected exit code 1, got %d", *code)
	}
	if !strings.Contains(out.String(), "CRASH DETECTED: boom") {
		t.Errorf("Expected crash report, got %q", out.String())
	}
}

func TestGo_RecoversPanic(t *testing.T) {
	out, _ := captureCrash(t)
	done := make(chan struct{})
	crashExit = func(int) { close(done) }

	Go(func() { panic("poller") })
	<-done

	if !strings.Contains(out.String(), "poller") {
		t.Errorf("Expected panic value in report, got %q", out.String())
	}
}
