package serialization

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Store is a random-access byte store. *os.File satisfies it.
type Store interface {
	io.ReaderAt
	io.WriterAt
	io.Closer
}

// Options configures a Serializer. The zero value is ready to use.
type Options struct {
	Guard    GuardLevel   // Read checks against this Serializer's writes
	Truncate bool         // Open only: empty an existing file instead of overwriting in place
	Logger   *slog.Logger // Receives outcome records; nil discards them
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// Open opens path for combined binary reading and writing, creating it if
// needed. Existing bytes are overwritten from offset 0 unless
// opts.Truncate is set.
func Open(path string, opts Options) (*Serializer, error) {
	flags := os.O_RDWR | os.O_CREATE
	if opts.Truncate {
		flags |= os.O_TRUNC
	}

	//nolint:gosec // G304: File path comes from the caller, which is expected for a file store
	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	return New(file, opts), nil
}
