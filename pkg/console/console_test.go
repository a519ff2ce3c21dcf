package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
	"syscall"
	"testing"
)

type recorder struct {
	mu     sync.Mutex
	buf    map[int]*bytes.Buffer
	chunk  int
	calls  int
	failFD int
	err    error
}

func newRecorder() *recorder {
	return &recorder{buf: map[int]*bytes.Buffer{}, failFD: -100}
}

func (r *recorder) write(fd int, p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if fd == r.failFD {
		return 0, r.err
	}
	if r.buf[fd] == nil {
		r.buf[fd] = &bytes.Buffer{}
	}
	n := len(p)
	if r.chunk > 0 && n > r.chunk {
		n = r.chunk
	}
	r.buf[fd].Write(p[:n])
	return n, nil
}

func (r *recorder) output(fd int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.buf[fd] == nil {
		return ""
	}
	return r.buf[fd].String()
}

func TestWriteLineMatchesWriteWithNewline(t *testing.T) {
	for _, text := range []string{"", "hello", "café", "世界", "tab\tand space "} {
		lineRec := newRecorder()
		rawRec := newRecorder()
		if err := New(withSyscall(lineRec.write)).WriteLine(text, Stdout); err != nil {
			t.Fatalf("write line: %v", err)
		}
		if err := New(withSyscall(rawRec.write)).Write(text+"\n", Stdout); err != nil {
			t.Fatalf("write: %v", err)
		}
		if lineRec.output(1) != rawRec.output(1) {
			t.Fatalf("expected %q got %q", rawRec.output(1), lineRec.output(1))
		}
	}
}

func TestEmptyWriteSkipsSyscall(t *testing.T) {
	rec := newRecorder()
	c := New(withSyscall(rec.write))
	if err := c.Write("", Stdout); err != nil {
		t.Fatalf("write: %v", err)
	}
	if rec.calls != 0 {
		t.Fatalf("expected no syscall, got %d", rec.calls)
	}
	if err := c.WriteLine("", Stdout); err != nil {
		t.Fatalf("write line: %v", err)
	}
	if got := rec.output(1); got != "\n" {
		t.Fatalf("expected single newline, got %q", got)
	}
}

func TestWriteFramed(t *testing.T) {
	rec := newRecorder()
	c := New(withSyscall(rec.write))
	if err := c.WriteFramed("boxed", Stderr); err != nil {
		t.Fatalf("write framed: %v", err)
	}
	if got := rec.output(2); got != "\nboxed\n" {
		t.Fatalf("unexpected output %q", got)
	}
	if rec.output(1) != "" {
		t.Fatalf("stdout should be untouched")
	}
}

func TestNoNewlineScenario(t *testing.T) {
	rec := newRecorder()
	c := New(withSyscall(rec.write))
	if err := c.Write("No newline", Stdout); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := c.WriteLine("But this is a newline", Stdout); err != nil {
		t.Fatalf("write line: %v", err)
	}
	want := "No newline" + "But this is a newline" + "\n"
	if got := rec.output(1); got != want {
		t.Fatalf("expected %q got %q", want, got)
	}
}

func TestShortWritesAreContinued(t *testing.T) {
	rec := newRecorder()
	rec.chunk = 1
	c := New(withSyscall(rec.write))
	text := "世界 café"
	if err := c.Write(text, Stdout); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := rec.output(1); got != text {
		t.Fatalf("expected %q got %q", text, got)
	}
	if rec.calls != len(text) {
		t.Fatalf("expected %d calls, got %d", len(text), rec.calls)
	}
}

func TestInterruptedWriteIsRetried(t *testing.T) {
	var out bytes.Buffer
	interrupted := false
	c := New(withSyscall(func(fd int, p []byte) (int, error) {
		if !interrupted {
			interrupted = true
			return 0, errInterrupted
		}
		return out.Write(p)
	}))
	if err := c.Write("again", Stdout); err != nil {
		t.Fatalf("write: %v", err)
	}
	if out.String() != "again" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestZeroProgressIsShortWrite(t *testing.T) {
	c := New(withSyscall(func(fd int, p []byte) (int, error) {
		return 0, nil
	}))
	err := c.Write("stuck", Stdout)
	if !errors.Is(err, io.ErrShortWrite) {
		t.Fatalf("expected short write, got %v", err)
	}
}

func TestStdoutFailureSurfaces(t *testing.T) {
	rec := newRecorder()
	rec.failFD = 1
	rec.err = syscall.EIO

	for _, policy := range []Policy{SurfaceAll, IgnoreStderr} {
		c := New(withSyscall(rec.write), WithPolicy(policy))
		err := c.Write("x", Stdout)
		var failure *WriteFailure
		if !errors.As(err, &failure) {
			t.Fatalf("policy %s: expected WriteFailure, got %v", policy, err)
		}
		if failure.Stream != Stdout {
			t.Fatalf("expected stdout, got %s", failure.Stream)
		}
		if !errors.Is(err, syscall.EIO) {
			t.Fatalf("expected wrapped EIO")
		}
	}
}

func TestStderrFailurePolicy(t *testing.T) {
	rec := newRecorder()
	rec.failFD = 2
	rec.err = syscall.EIO

	quiet := New(withSyscall(rec.write), WithPolicy(IgnoreStderr))
	if err := quiet.WriteLine("lost", Stderr); err != nil {
		t.Fatalf("ignore policy should drop stderr failure, got %v", err)
	}

	loud := New(withSyscall(rec.write))
	err := loud.WriteLine("lost", Stderr)
	var failure *WriteFailure
	if !errors.As(err, &failure) || failure.Stream != Stderr {
		t.Fatalf("expected stderr WriteFailure, got %v", err)
	}
}

func TestPartialFailureReportsWritten(t *testing.T) {
	calls := 0
	c := New(withSyscall(func(fd int, p []byte) (int, error) {
		calls++
		if calls == 1 {
			return 3, nil
		}
		return 0, syscall.EPIPE
	}))
	err := c.Write("abcdef", Stdout)
	var failure *WriteFailure
	if !errors.As(err, &failure) {
		t.Fatalf("expected WriteFailure, got %v", err)
	}
	if failure.Written != 3 {
		t.Fatalf("expected 3 bytes written, got %d", failure.Written)
	}
	if !strings.Contains(failure.Error(), "after 3 bytes") {
		t.Fatalf("unexpected message %q", failure.Error())
	}
}

func TestUnknownStream(t *testing.T) {
	rec := newRecorder()
	c := New(withSyscall(rec.write))
	if err := c.Write("x", Stream(9)); err == nil {
		t.Fatalf("expected error")
	}
	if rec.calls != 0 {
		t.Fatalf("expected no syscall")
	}
}

func TestEncodeReplacesIllFormed(t *testing.T) {
	if got := string(Encode("a\xffb")); got != "a\uFFFDb" {
		t.Fatalf("unexpected encoding %q", got)
	}
	if got := string(Encode("café")); got != "café" {
		t.Fatalf("unexpected encoding %q", got)
	}
}

func TestWriterAdapter(t *testing.T) {
	rec := newRecorder()
	c := New(withSyscall(rec.write))
	n, err := io.WriteString(c.Writer(Stderr), "log line\n")
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if n != len("log line\n") {
		t.Fatalf("unexpected count %d", n)
	}
	if rec.output(2) != "log line\n" {
		t.Fatalf("unexpected output %q", rec.output(2))
	}
}

func TestConcurrentLinesDoNotInterleave(t *testing.T) {
	rec := newRecorder()
	rec.chunk = 2
	c := New(withSyscall(rec.write))

	lines := []string{"alpha-alpha-alpha", "bravo-bravo-bravo", "charlie-charlie"}
	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		line := lines[i%len(lines)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := c.WriteLine(line, Stdout); err != nil {
				t.Errorf("write: %v", err)
			}
		}()
	}
	wg.Wait()

	got := strings.Split(strings.TrimSuffix(rec.output(1), "\n"), "\n")
	if len(got) != 30 {
		t.Fatalf("expected 30 lines, got %d", len(got))
	}
	for _, line := range got {
		if line != lines[0] && line != lines[1] && line != lines[2] {
			t.Fatalf("interleaved line %q", line)
		}
	}
}

func TestParseStream(t *testing.T) {
	tests := []struct {
		in      string
		want    Stream
		wantErr bool
	}{
		{"", Stdout, false},
		{"STDOUT", Stdout, false},
		{"stderr", Stderr, false},
		{"2", Stderr, false},
		{"tty", 0, true},
	}
	for _, test := range tests {
		got, err := ParseStream(test.in)
		if test.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error", test.in)
			}
			continue
		}
		if err != nil || got != test.want {
			t.Fatalf("%q: expected %s got %s (%v)", test.in, test.want, got, err)
		}
	}
}

func TestParsePolicy(t *testing.T) {
	if p, err := ParsePolicy("ignore"); err != nil || p != IgnoreStderr {
		t.Fatalf("expected ignore policy")
	}
	if p, err := ParsePolicy(""); err != nil || p != SurfaceAll {
		t.Fatalf("expected surface policy")
	}
	if _, err := ParsePolicy("sometimes"); err == nil {
		t.Fatalf("expected error")
	}
}
