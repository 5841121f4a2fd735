package serialization

import (
	"fmt"
	"sort"

	"github.com/born-ml/rawio/internal/codec"
)

// GuardLevel controls how reads are checked against values written by the
// same Serializer.
type GuardLevel int

const (
	// GuardStrict requires a read to start on a recorded value and use its
	// exact kind (default).
	GuardStrict GuardLevel = iota
	// GuardWidth requires a read to start on a recorded value of the same
	// width, so an int32 may be read back as a uint32 or float32.
	GuardWidth
	// GuardNone records nothing and checks nothing.
	GuardNone
)

// String returns the level name.
func (g GuardLevel) String() string {
	switch g {
	case GuardStrict:
		return "strict"
	case GuardWidth:
		return "width"
	case GuardNone:
		return "none"
	default:
		return "unknown"
	}
}

// entry is one recorded value.
type entry struct {
	offset int64
	kind   codec.Kind
}

func (e entry) end() int64 {
	return e.offset + int64(e.kind.Size())
}

// ledger records the layout of values written through a Serializer.
// Entries are kept sorted by offset; the write cursor only moves forward,
// so record is an append in the common case.
type ledger struct {
	level   GuardLevel
	entries []entry
}

func newLedger(level GuardLevel) *ledger {
	return &ledger{level: level}
}

// record notes that a value of kind was written at offset.
func (l *ledger) record(offset int64, kind codec.Kind) {
	if l.level == GuardNone {
		return
	}
	e := entry{offset: offset, kind: kind}
	n := len(l.entries)
	if n == 0 || l.entries[n-1].offset < offset {
		l.entries = append(l.entries, e)
		return
	}
	i := sort.Search(n, func(i int) bool { return l.entries[i].offset >= offset })
	if i < n && l.entries[i].offset == offset {
		l.entries[i] = e
		return
	}
	l.entries = append(l.entries, entry{})
	copy(l.entries[i+1:], l.entries[i:])
	l.entries[i] = e
}

// check verifies that reading kind at offset lines up with the recorded
// layout. Ranges with no recorded values always pass.
func (l *ledger) check(offset int64, kind codec.Kind) error {
	if l.level == GuardNone || len(l.entries) == 0 {
		return nil
	}
	end := offset + int64(kind.Size())

	// First entry that ends after offset is the only one that can start
	// at or straddle offset.
	i := sort.Search(len(l.entries), func(i int) bool { return l.entries[i].end() > offset })
	if i == len(l.entries) {
		return nil
	}
	e := l.entries[i]

	switch {
	case e.offset == offset:
		return l.compare(e, kind)
	case e.offset < offset:
		return fmt.Errorf("%w: offset %d is inside a %s written at offset %d",
			ErrLayoutMismatch, offset, e.kind, e.offset)
	case e.offset < end:
		return fmt.Errorf("%w: reading %s at offset %d overlaps a %s written at offset %d",
			ErrLayoutMismatch, kind, offset, e.kind, e.offset)
	default:
		return nil
	}
}

func (l *ledger) compare(e entry, kind codec.Kind) error {
	if l.level == GuardWidth {
		if e.kind.Size() != kind.Size() {
			return fmt.Errorf("%w: %s (%d bytes) written, %s (%d bytes) read",
				ErrLayoutMismatch, e.kind, e.kind.Size(), kind, kind.Size())
		}
		return nil
	}
	if e.kind != kind {
		return fmt.Errorf("%w: %s written, %s read", ErrLayoutMismatch, e.kind, kind)
	}
	return nil
}

// count returns the number of recorded values.
func (l *ledger) count() int {
	return len(l.entries)
}
