package serialization

import (
	"errors"
	"io"
)

var errDiskFull = errors.New("disk full")

// memStore is an in-memory Store. When failOn > 0 the failOn-th WriteAt
// call fails without writing anything.
type memStore struct {
	data   []byte
	writes int
	failOn int
	short  bool // fail by writing half the bytes instead of erroring
	closed bool
}

func (m *memStore) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (m *memStore) WriteAt(p []byte, off int64) (int, error) {
	m.writes++
	if m.failOn > 0 && m.writes == m.failOn {
		if m.short {
			return 0, nil
		}
		return 0, errDiskFull
	}
	if end := off + int64(len(p)); end > int64(len(m.data)) {
		m.data = append(m.data, make([]byte, end-int64(len(m.data)))...)
	}
	return copy(m.data[off:], p), nil
}

func (m *memStore) Close() error {
	m.closed = true
	return nil
}
