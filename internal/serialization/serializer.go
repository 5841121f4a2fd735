package serialization

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/born-ml/rawio/internal/codec"
)

// maxScalarSize is the widest Scalar encoding.
const maxScalarSize = 8

// Serializer writes and reads scalar sequences against a Store it owns.
//
// Writes and reads use independent cursors that only move forward.
// A Serializer is not safe for concurrent use.
type Serializer struct {
	store    Store
	ledger   *ledger
	logger   *slog.Logger
	writeOff int64
	readOff  int64
	closed   bool
}

// New wraps store. The Serializer takes ownership and closes it on Close.
func New(store Store, opts Options) *Serializer {
	return &Serializer{
		store:  store,
		ledger: newLedger(opts.Guard),
		logger: opts.logger(),
	}
}

// Serialize writes values in argument order. Every value must be a
// codec.Scalar; unsupported values are rejected before anything is written.
//
// If writing value i fails, Serialize returns a *PositionError with
// Position i that matches ErrWriteFailure. Values 1..i-1 stay in the store
// and the write cursor stays after value i-1: there is no rollback.
func (s *Serializer) Serialize(values ...any) error {
	if s.closed {
		return ErrClosed
	}

	kinds := make([]codec.Kind, len(values))
	for i, v := range values {
		kinds[i] = codec.KindOfValue(v)
		if kinds[i] == codec.Invalid {
			return s.fail(&PositionError{
				Op:       "serialize",
				Position: i + 1,
				Err:      fmt.Errorf("%w: %T", ErrUnsupportedType, v),
			})
		}
	}

	start := s.writeOff
	buf := make([]byte, 0, maxScalarSize)
	for i, v := range values {
		buf, _ = codec.AppendValue(buf[:0], v) // kind checked above
		if err := s.writeAt(buf, kinds[i]); err != nil {
			return s.fail(&PositionError{
				Op:       "serialize",
				Position: i + 1,
				Kind:     kinds[i],
				Offset:   s.writeOff,
				Err:      err,
			})
		}
	}

	s.logger.Debug("data has been serialized",
		slog.Int("values", len(values)),
		slog.Int64("offset", start),
		slog.Int64("bytes", s.writeOff-start))
	return nil
}

// Deserialize reads one value per target, in order. Each target must be a
// non-nil pointer to a codec.Scalar.
//
// Targets must match the kinds and order used when the bytes were written.
// Reading fewer bytes than a target needs fails with ErrUnexpectedEOF;
// reading over values recorded by this Serializer with the wrong layout
// fails with ErrLayoutMismatch. Targets before the failing one are filled,
// the failing one and those after it are left untouched.
func (s *Serializer) Deserialize(targets ...any) error {
	if s.closed {
		return ErrClosed
	}

	start := s.readOff
	next, err := readTargets(s.store, s.readOff, targets, s.ledger.check)
	s.readOff = next
	if err != nil {
		return s.fail(err)
	}

	s.logger.Debug("data has been deserialized",
		slog.Int("values", len(targets)),
		slog.Int64("offset", start),
		slog.Int64("bytes", s.readOff-start))
	return nil
}

// Offsets returns the write and read cursors.
func (s *Serializer) Offsets() (write, read int64) {
	return s.writeOff, s.readOff
}

// Checksum returns the SHA-256 checksum of the store's first Offsets().write bytes.
func (s *Serializer) Checksum() ([32]byte, error) {
	if s.closed {
		return [32]byte{}, ErrClosed
	}
	sum, err := ComputeChecksumReader(io.NewSectionReader(s.store, 0, s.writeOff))
	if err != nil {
		return [32]byte{}, fmt.Errorf("%w: %w", ErrReadFailure, err)
	}
	return sum, nil
}

// Close releases the store. Calling Close more than once is a no-op.
func (s *Serializer) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.store.Close()
}

// writeAt writes one encoded value at the write cursor and advances it
// only if the whole value was written.
func (s *Serializer) writeAt(b []byte, kind codec.Kind) error {
	n, err := s.store.WriteAt(b, s.writeOff)
	if err == nil && n < len(b) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	s.ledger.record(s.writeOff, kind)
	s.writeOff += int64(n)
	return nil
}

func (s *Serializer) fail(err error) error {
	var posErr *PositionError
	if errors.As(err, &posErr) {
		s.logger.Warn("sequence operation failed",
			slog.String("op", posErr.Op),
			slog.Int("position", posErr.Position),
			slog.String("kind", posErr.Kind.String()),
			slog.Int64("offset", posErr.Offset),
			slog.Any("error", posErr.Err))
	}
	return err
}

// readTargets decodes targets from r starting at off and returns the offset
// after the last value decoded. check, if non-nil, vets each read first.
func readTargets(r io.ReaderAt, off int64, targets []any, check func(int64, codec.Kind) error) (int64, error) {
	kinds := make([]codec.Kind, len(targets))
	for i, t := range targets {
		kinds[i] = codec.TargetKind(t)
		if kinds[i] == codec.Invalid {
			return off, &PositionError{
				Op:       "deserialize",
				Position: i + 1,
				Err:      fmt.Errorf("%w: target %T", ErrUnsupportedType, t),
			}
		}
	}

	var buf [maxScalarSize]byte
	for i, t := range targets {
		kind := kinds[i]
		posErr := &PositionError{Op: "deserialize", Position: i + 1, Kind: kind, Offset: off}

		if check != nil {
			if err := check(off, kind); err != nil {
				posErr.Err = err
				return off, posErr
			}
		}

		b := buf[:kind.Size()]
		n, err := r.ReadAt(b, off)
		if n < len(b) {
			if err == nil || errors.Is(err, io.EOF) {
				posErr.Err = fmt.Errorf("%w: need %d bytes, %d remain: %w",
					ErrUnexpectedEOF, len(b), n, io.ErrUnexpectedEOF)
			} else {
				posErr.Err = fmt.Errorf("%w: %w", ErrReadFailure, err)
			}
			return off, posErr
		}

		if err := codec.DecodeInto(t, b); err != nil {
			posErr.Err = err
			return off, posErr
		}
		off += int64(n)
	}
	return off, nil
}
