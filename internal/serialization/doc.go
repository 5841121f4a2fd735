// Package serialization writes and reads ordered sequences of fixed-width
// scalar values against a byte store.
//
// The on-disk form is an undelimited concatenation of raw encodings in
// write order:
//
//	[value 1: SizeOf(kind 1) bytes][value 2: SizeOf(kind 2) bytes]...
//
// There is no header, length prefix or type tag, and values use the host's
// native byte order, so a file is only meaningful to a reader that knows the
// kinds and order it was written with.
//
// Example usage:
//
//	s, err := serialization.Open("values.bin", serialization.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	if err := s.Serialize(int32(1), 2.5); err != nil {
//	    log.Fatal(err)
//	}
//
//	var (
//	    a int32
//	    b float64
//	)
//	if err := s.Deserialize(&a, &b); err != nil {
//	    log.Fatal(err)
//	}
//
// A Serializer keeps separate write and read cursors, both starting at
// offset 0. Values written by the same Serializer are recorded, and reading
// them back with a different kind or from the middle of a value fails with
// ErrLayoutMismatch (see GuardLevel). Bytes that were already in the file
// are not checked.
package serialization
