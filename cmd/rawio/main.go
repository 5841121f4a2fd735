// Package main provides the rawio CLI.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/born-ml/rawio/codec"
	"github.com/born-ml/rawio/geom"
	"github.com/born-ml/rawio/serialization"
)

const version = "v0.1.0"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel()}))

	if err := run(os.Args[1:], logger); err != nil {
		fmt.Fprintf(os.Stderr, "rawio: %v\n", err)
		os.Exit(1)
	}
}

func logLevel() slog.Level {
	if os.Getenv("RAWIO_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

func run(args []string, logger *slog.Logger) error {
	if len(args) == 0 {
		usage()
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Printf("rawio %s\n", version)
		return nil
	case "demo":
		return demo()
	case "write":
		if len(args) < 3 {
			return errors.New("usage: rawio write <path> kind=value...")
		}
		return write(args[1], args[2:], logger)
	case "read":
		if len(args) < 3 {
			return errors.New("usage: rawio read <path> kind...")
		}
		return read(args[1], args[2:])
	case "checksum":
		if len(args) != 2 {
			return errors.New("usage: rawio checksum <path>")
		}
		return checksum(args[1])
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage() {
	fmt.Println("rawio - fixed-width binary sequences")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version                       Show version")
	fmt.Println("  demo                          Print sample vectors and a projection matrix")
	fmt.Println("  write <path> kind=value...    Write values, e.g. i32=1 f64=2.5")
	fmt.Println("  read <path> kind...           Read values back, e.g. i32 f64")
	fmt.Println("  checksum <path>               SHA-256 of a store file")
	fmt.Println("")
	fmt.Println("Set RAWIO_DEBUG=1 for debug logging.")
}

func demo() error {
	projection, err := geom.NewMatrix[float64](4, 4)
	if err != nil {
		return err
	}
	vectors := []any{
		geom.NewVector2D(43.43, 34.43),
		geom.NewVector2D(21.2, 34.2),
		geom.NewVector2D(1.2, 34.23),
		geom.NewVector3D(32.34, 1.34, 4.43),
	}

	if err := geom.RenderTo(os.Stdout, vectors, "\n", "\n"); err != nil {
		return err
	}
	fmt.Printf("projection matrix %s:\n%s", projection.Shape(), projection)
	return nil
}

func write(path string, pairs []string, logger *slog.Logger) error {
	values := make([]any, 0, len(pairs))
	for _, pair := range pairs {
		name, text, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("argument %q: want kind=value", pair)
		}
		kind, err := codec.ParseKind(name)
		if err != nil {
			return err
		}
		v, err := codec.ParseValue(kind, text)
		if err != nil {
			return err
		}
		values = append(values, v)
	}

	s, err := serialization.Open(path, serialization.Options{Truncate: true, Logger: logger})
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Serialize(values...); err != nil {
		return err
	}
	written, _ := s.Offsets()
	fmt.Printf("wrote %d values (%d bytes) to %s\n", len(values), written, path)
	return s.Close()
}

func read(path string, names []string) error {
	targets := make([]any, 0, len(names))
	for _, name := range names {
		kind, err := codec.ParseKind(name)
		if err != nil {
			return err
		}
		target, err := codec.NewTarget(kind)
		if err != nil {
			return err
		}
		targets = append(targets, target)
	}

	snap, err := serialization.OpenSnapshot(path)
	if err != nil {
		return err
	}
	defer snap.Close()

	if err := snap.Deserialize(targets...); err != nil {
		return err
	}

	values := make([]any, len(targets))
	for i, t := range targets {
		values[i] = reflect.ValueOf(t).Elem().Interface()
	}
	if err := geom.RenderTo(os.Stdout, values, "\n", "\n"); err != nil {
		return err
	}
	if rest := snap.Remaining(); rest > 0 {
		fmt.Fprintf(os.Stderr, "%d trailing bytes not read\n", rest)
	}
	return nil
}

func checksum(path string) error {
	snap, err := serialization.OpenSnapshot(path)
	if err != nil {
		return err
	}
	defer snap.Close()

	sum := snap.Checksum()
	fmt.Printf("%s  %s (%d bytes)\n", hex.EncodeToString(sum[:]), path, snap.Len())
	return nil
}
