// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package serialization writes and reads ordered sequences of fixed-width
// scalar values against a file.
//
// The file holds the raw encodings back to back, with no header or framing.
// Reads must use the kinds and order of the matching writes; a Serializer
// checks this for the values it wrote itself and reports ErrLayoutMismatch.
//
// Example:
//
//	s, err := serialization.Open("values.bin", serialization.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	v := geom.NewVector3D(1.0, 2.0, 3.0)
//	if err := serialization.WriteSeq(s, v.Components()); err != nil {
//	    log.Fatal(err)
//	}
package serialization

import (
	"iter"

	"github.com/born-ml/rawio/codec"
	"github.com/born-ml/rawio/internal/serialization"
)

// Serializer writes and reads scalar sequences against a Store it owns.
type Serializer = serialization.Serializer

// Snapshot is a read-only, memory-mapped view of a store file.
type Snapshot = serialization.Snapshot

// Store is a random-access byte store. *os.File satisfies it.
type Store = serialization.Store

// Options configures a Serializer.
type Options = serialization.Options

// GuardLevel controls how reads are checked against earlier writes.
type GuardLevel = serialization.GuardLevel

// Guard levels.
const (
	GuardStrict GuardLevel = serialization.GuardStrict
	GuardWidth  GuardLevel = serialization.GuardWidth
	GuardNone   GuardLevel = serialization.GuardNone
)

// PositionError reports a failure on one value of a sequence operation.
type PositionError = serialization.PositionError

// Sink accepts scalar sequences.
type Sink = serialization.Sink

// Source yields scalar sequences.
type Source = serialization.Source

// Errors reported by sequence operations.
var (
	ErrWriteFailure     = serialization.ErrWriteFailure
	ErrReadFailure      = serialization.ErrReadFailure
	ErrUnexpectedEOF    = serialization.ErrUnexpectedEOF
	ErrLayoutMismatch   = serialization.ErrLayoutMismatch
	ErrUnsupportedType  = serialization.ErrUnsupportedType
	ErrClosed           = serialization.ErrClosed
	ErrChecksumMismatch = serialization.ErrChecksumMismatch
)

// Open opens path for combined binary reading and writing.
func Open(path string, opts Options) (*Serializer, error) {
	return serialization.Open(path, opts)
}

// New wraps a caller-supplied store.
func New(store Store, opts Options) *Serializer {
	return serialization.New(store, opts)
}

// OpenSnapshot maps path read-only.
func OpenSnapshot(path string) (*Snapshot, error) {
	return serialization.OpenSnapshot(path)
}

// WriteSlice serializes values in order.
func WriteSlice[T codec.Scalar](dst Sink, values []T) error {
	return serialization.WriteSlice(dst, values)
}

// WriteSeq serializes every value seq yields.
func WriteSeq[T codec.Scalar](dst Sink, seq iter.Seq[T]) error {
	return serialization.WriteSeq(dst, seq)
}

// ReadSlice fills dst in order.
func ReadSlice[T codec.Scalar](src Source, dst []T) error {
	return serialization.ReadSlice(src, dst)
}

// ComputeChecksum computes the SHA-256 checksum of data.
func ComputeChecksum(data []byte) [32]byte {
	return serialization.ComputeChecksum(data)
}

// ValidateChecksum returns ErrChecksumMismatch if the checksums differ.
func ValidateChecksum(computed, expected [32]byte) error {
	return serialization.ValidateChecksum(computed, expected)
}
