// Package console writes text straight to the process standard streams.
//
// Every write encodes the text as UTF-8 and hands the bytes to the write(2)
// system call for the stream's descriptor. Nothing is buffered in process.
package console

import (
	"errors"
	"io"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

var errInterrupted = errors.New("interrupted system call")

// Console writes to stdout and stderr through the raw descriptors.
type Console struct {
	policy Policy
	fds    [3]int
	locks  [3]sync.Mutex
	write  func(fd int, p []byte) (int, error)
}

// Option configures a Console.
type Option func(*Console)

// WithPolicy sets the stderr error policy.
func WithPolicy(p Policy) Option {
	return func(c *Console) {
		c.policy = p
	}
}

// WithFD points a stream at another already open descriptor.
func WithFD(stream Stream, fd int) Option {
	return func(c *Console) {
		if stream.Valid() {
			c.fds[stream] = fd
		}
	}
}

func withSyscall(fn func(fd int, p []byte) (int, error)) Option {
	return func(c *Console) {
		c.write = fn
	}
}

// New returns a Console bound to fd 1 and fd 2.
func New(opts ...Option) *Console {
	c := &Console{
		policy: SurfaceAll,
		write:  sysWrite,
	}
	c.fds[Stdout] = Stdout.FD()
	c.fds[Stderr] = Stderr.FD()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Policy returns the configured stderr policy.
func (c *Console) Policy() Policy {
	return c.policy
}

// Write encodes text as UTF-8 and writes it to stream. No newline is added.
func (c *Console) Write(text string, stream Stream) error {
	return c.writeBytes(Encode(text), stream)
}

// WriteLine writes text followed by a newline.
func (c *Console) WriteLine(text string, stream Stream) error {
	return c.Write(text+"\n", stream)
}

// WriteFramed writes text with a leading and a trailing newline.
func (c *Console) WriteFramed(text string, stream Stream) error {
	return c.Write("\n"+text+"\n", stream)
}

// Writer adapts stream into an io.Writer that uses the same write path.
func (c *Console) Writer(stream Stream) io.Writer {
	return streamWriter{console: c, stream: stream}
}

func (c *Console) writeBytes(p []byte, stream Stream) error {
	if !stream.Valid() {
		return &WriteFailure{Stream: stream, Err: errors.New("unknown stream")}
	}

	lock := &c.locks[stream]
	lock.Lock()
	written, err := c.writeAll(c.fds[stream], p)
	lock.Unlock()

	if err == nil {
		return nil
	}
	if stream == Stderr && c.policy == IgnoreStderr {
		return nil
	}
	return &WriteFailure{Stream: stream, Written: written, Err: err}
}

// writeAll keeps calling write until p is drained. Only EINTR is retried.
func (c *Console) writeAll(fd int, p []byte) (int, error) {
	written := 0
	for written < len(p) {
		n, err := c.write(fd, p[written:])
		if n > 0 {
			written += n
		}
		if err != nil {
			if errors.Is(err, errInterrupted) {
				continue
			}
			return written, err
		}
		if n <= 0 {
			return written, io.ErrShortWrite
		}
	}
	return written, nil
}

// Encode returns the UTF-8 bytes of text. Ill-formed sequences become U+FFFD.
func Encode(text string) []byte {
	if utf8.ValidString(text) {
		return []byte(text)
	}
	out, err := unicode.UTF8.NewEncoder().String(text)
	if err != nil {
		return []byte(text)
	}
	return []byte(out)
}

type streamWriter struct {
	console *Console
	stream  Stream
}

func (w streamWriter) Write(p []byte) (int, error) {
	if err := w.console.writeBytes(p, w.stream); err != nil {
		var failure *WriteFailure
		if errors.As(err, &failure) {
			return failure.Written, err
		}
		return 0, err
	}
	return len(p), nil
}

// Default is the process wide console on fd 1 and fd 2.
var Default = New()

// Write writes text to stream using Default.
func Write(text string, stream Stream) error {
	return Default.Write(text, stream)
}

// WriteLine writes text and a newline to stream using Default.
func WriteLine(text string, stream Stream) error {
	return Default.WriteLine(text, stream)
}

// WriteFramed writes text between two newlines to stream using Default.
func WriteFramed(text string, stream Stream) error {
	return Default.WriteFramed(text, stream)
}
