//go:build unix

package console

import (
	"errors"
	"io"
	"os"
	"testing"
)

func pipeConsole(t *testing.T, stream Stream, opts ...Option) (*Console, func() string) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	t.Cleanup(func() {
		_ = r.Close()
	})
	c := New(append(opts, WithFD(stream, int(w.Fd())))...)
	return c, func() string {
		_ = w.Close()
		out, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("read pipe: %v", err)
		}
		return string(out)
	}
}

func TestRoundTripThroughPipe(t *testing.T) {
	for _, text := range []string{"plain ascii", "café", "世界", "mixed 🚀 emoji", ""} {
		c, read := pipeConsole(t, Stdout)
		if err := c.Write(text, Stdout); err != nil {
			t.Fatalf("write %q: %v", text, err)
		}
		if got := read(); got != text {
			t.Fatalf("expected %q got %q", text, got)
		}
	}
}

func TestScenarioThroughPipe(t *testing.T) {
	c, read := pipeConsole(t, Stdout)
	if err := c.Write("No newline", Stdout); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := c.WriteLine("But this is a newline", Stdout); err != nil {
		t.Fatalf("write line: %v", err)
	}
	if got := read(); got != "No newlineBut this is a newline\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestStderrPipe(t *testing.T) {
	c, read := pipeConsole(t, Stderr)
	if err := c.WriteLine("oops", Stderr); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := read(); got != "oops\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestBadDescriptor(t *testing.T) {
	c := New(WithFD(Stdout, -1), WithFD(Stderr, -1))
	err := c.Write("x", Stdout)
	var failure *WriteFailure
	if !errors.As(err, &failure) || failure.Stream != Stdout {
		t.Fatalf("expected stdout WriteFailure, got %v", err)
	}

	ignoring := New(WithFD(Stderr, -1), WithPolicy(IgnoreStderr))
	if err := ignoring.WriteLine("x", Stderr); err != nil {
		t.Fatalf("expected stderr failure to be dropped, got %v", err)
	}
}
