package core

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

type fakeTerminal struct {
	finiCalls int
}

func (f *fakeTerminal) Fini() { f.finiCalls++ }

// captureCrash swaps output and exit for the duration of a test
func captureCrash(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()
	var buf bytes.Buffer
	code := -1

	prevOut, prevExit := crashOutput, crashExit
	crashOutput = &buf
	crashExit = func(c int) { code = c }
	t.Cleanup(func() {
		crashOutput, crashExit = prevOut, prevExit
		RegisterTerminal(nil)
	})
	return &buf, &code
}

// TestHandleCrashRestoresTerminal verifies Fini runs once and the trace is printed
func TestHandleCrashRestoresTerminal(t *testing.T) {
	buf, code := captureCrash(t)
	term := &fakeTerminal{}
	RegisterTerminal(term)

	HandleCrash("boom")

	if term.finiCalls != 1 {
		t.Errorf("Expected 1 Fini call, got %d", term.finiCalls)
	}
	if *code != 1 {
		t.Errorf("Expected exit code 1, got %d", *code)
	}
	if !strings.Contains(buf.String(), "CRASH DETECTED: boom") {
		t.Errorf("Expected crash banner, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "Stack Trace:") {
		t.Error("Expected stack trace in output")
	}

	// Terminal is released after the first crash
	HandleCrash("again")
	if term.finiCalls != 1 {
		t.Errorf("Expected Fini not to run twice, got %d", term.finiCalls)
	}
}

// TestHandleCrashNil verifies a nil recover value is ignored
func TestHandleCrashNil(t *testing.T) {
	buf, code := captureCrash(t)

	HandleCrash(nil)

	if *code != -1 {
		t.Errorf("Expected no exit, got code %d", *code)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}

// TestGoRecoversPanic verifies a panicking goroutine reaches the crash handler
func TestGoRecoversPanic(t *testing.T) {
	buf, _ := captureCrash(t)

	var wg sync.WaitGroup
	wg.Add(1)
	exited := make(chan int, 1)
	crashExit = func(c int) {
		exited <- c
		wg.Done()
	}

	Go(func() { panic("worker failed") })
	wg.Wait()

	if c := <-exited; c != 1 {
		t.Errorf("Expected exit code 1, got %d", c)
	}
	if !strings.Contains(buf.String(), "worker failed") {
		t.Errorf("Expected panic value in output, got %q", buf.String())
	}
}
