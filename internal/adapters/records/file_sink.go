package records

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"postcode-distance/internal/domain"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// FileSink appends one JSON line per calculation to a local file.
type FileSink struct {
	mu   sync.Mutex
	path string
}

func NewFileSink(path string) (*FileSink, error) {
	if path == "" {
		return nil, errors.New("file sink: path is empty")
	}
	return &FileSink{path: path}, nil
}

// Record opens the file in append mode for every write, so an external
// rotation or deletion between calls is picked up.
func (s *FileSink) Record(ctx context.Context, rec domain.CalculationRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	at := rec.RecordedAt
	if at.IsZero() {
		at = time.Now()
	}

	// Encode first: zerolog reports writer errors to its ErrorHandler, not
	// to the caller, so the file write happens here where it can fail.
	var buf bytes.Buffer
	w := zerolog.New(&buf)
	ev := w.Log().
		Time("time", at.UTC()).
		Bool("success", rec.Success).
		Str("postcode_a", rec.PostcodeA).
		Str("postcode_b", rec.PostcodeB)
	if rec.Success {
		ev = ev.Float64("miles", rec.Miles)
	}
	ev.Msg(rec.Detail)

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("file sink: open %q: %w", s.path, err)
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return fmt.Errorf("file sink: write %q: %w", s.path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("file sink: close %q: %w", s.path, err)
	}

	return nil
}
