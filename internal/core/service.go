package core

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mikey-austin/conwrite/internal/ports"
	"github.com/mikey-austin/conwrite/pkg/console"
)

// Service runs conw use cases against a console.
type Service struct {
	Console ports.Console
	Clock   ports.Clock
	Logger  *zap.Logger
}

// ParseMode maps flag values to a WriteMode.
func ParseMode(newline bool, framed bool) WriteMode {
	switch {
	case framed:
		return ModeFramed
	case newline:
		return ModeLine
	default:
		return ModeRaw
	}
}

// Write performs a single write.
func (s Service) Write(req WriteRequest) (WriteResult, error) {
	log := s.logger()
	if !req.Stream.Valid() {
		return WriteResult{}, UsageError(fmt.Sprintf("invalid stream %s", req.Stream))
	}
	if req.Mode == "" {
		req.Mode = ModeRaw
	}

	payload := req.Text
	var err error
	switch req.Mode {
	case ModeRaw:
		err = s.Console.Write(req.Text, req.Stream)
	case ModeLine:
		payload = req.Text + "\n"
		err = s.Console.WriteLine(req.Text, req.Stream)
	case ModeFramed:
		payload = "\n" + req.Text + "\n"
		err = s.Console.WriteFramed(req.Text, req.Stream)
	default:
		return WriteResult{}, UsageError(fmt.Sprintf("invalid write mode %q", req.Mode))
	}
	if err != nil {
		return WriteResult{}, WrapError(ExitWrite, "write "+req.Stream.String(), err)
	}

	result := WriteResult{
		Stream: req.Stream.String(),
		Mode:   req.Mode,
		Bytes:  len(console.Encode(payload)),
		At:     s.now(),
	}
	log.Debug("write complete",
		zap.String("stream", result.Stream),
		zap.String("mode", string(result.Mode)),
		zap.Int("bytes", result.Bytes),
	)
	return result, nil
}

// Demo replays the sample console session.
func (s Service) Demo() (DemoResult, error) {
	steps := []WriteRequest{
		{Text: "No newline", Stream: console.Stdout, Mode: ModeRaw},
		{Text: "But this is a newline", Stream: console.Stdout, Mode: ModeLine},
		{Text: "Framed by newlines", Stream: console.Stdout, Mode: ModeFramed},
		{Text: "This goes to stderr", Stream: console.Stderr, Mode: ModeLine},
	}

	out := DemoResult{Writes: make([]WriteResult, 0, len(steps))}
	for _, step := range steps {
		result, err := s.Write(step)
		if err != nil {
			return out, err
		}
		out.Writes = append(out.Writes, result)
	}
	s.logger().Debug("demo complete", zap.Int("writes", len(out.Writes)))
	return out, nil
}

func (s Service) now() int64 {
	if s.Clock == nil {
		return 0
	}
	return s.Clock.NowUnix()
}

func (s Service) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
