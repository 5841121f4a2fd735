package serialization

import (
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Snapshot provides read-only, memory-mapped access to a store file.
// It decodes sequences the same way as Serializer.Deserialize but has no
// write side, so no layout ledger: only short reads are detected.
//
// Important: Always call Close() when done to unmap the file (use defer).
type Snapshot struct {
	file   *os.File
	data   mmap.MMap // nil for an empty file
	reader *bytes.Reader
	off    int64
	closed bool
}

// OpenSnapshot maps path read-only.
func OpenSnapshot(path string) (*Snapshot, error) {
	//nolint:gosec // G304: File path comes from the caller, which is expected for a file store
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	s := &Snapshot{file: file}
	if stat.Size() > 0 {
		data, err := mmap.Map(file, mmap.RDONLY, 0)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("mmap failed: %w", err)
		}
		s.data = data
	}
	s.reader = bytes.NewReader(s.data)
	return s, nil
}

// Bytes returns the mapped contents. The slice is valid until Close and
// must not be modified.
func (s *Snapshot) Bytes() []byte {
	return s.data
}

// Len returns the size of the mapped file.
func (s *Snapshot) Len() int64 {
	return int64(len(s.data))
}

// Remaining returns the number of bytes after the read cursor.
func (s *Snapshot) Remaining() int64 {
	return s.Len() - s.off
}

// Deserialize reads one value per target from the read cursor.
// See Serializer.Deserialize for the target rules.
func (s *Snapshot) Deserialize(targets ...any) error {
	if s.closed {
		return ErrClosed
	}
	next, err := readTargets(s.reader, s.off, targets, nil)
	s.off = next
	return err
}

// Checksum returns the SHA-256 checksum of the whole file.
func (s *Snapshot) Checksum() [32]byte {
	return ComputeChecksum(s.data)
}

// Close unmaps and closes the file.
func (s *Snapshot) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var unmapErr error
	if s.data != nil {
		unmapErr = s.data.Unmap()
		s.data = nil
	}
	s.reader = nil
	if err := s.file.Close(); err != nil {
		return err
	}
	return unmapErr
}
