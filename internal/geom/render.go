package geom

import (
	"fmt"
	"io"
	"strings"
)

// VectorSeparator joins vector components in String output.
const VectorSeparator = " | "

// Render joins values with sep and appends end. Values are formatted with %v,
// so a float64 of 3.0 renders as "3".
//
// Example:
//
//	geom.Render([]float64{3, 4}, " | ", "\n") // "3 | 4\n"
func Render[T any](values []T, sep, end string) string {
	var sb strings.Builder
	_ = RenderTo(&sb, values, sep, end) // strings.Builder never fails
	return sb.String()
}

// RenderTo writes the rendering of values to w.
func RenderTo[T any](w io.Writer, values []T, sep, end string) error {
	for i, v := range values {
		if i > 0 {
			if _, err := io.WriteString(w, sep); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, v); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, end)
	return err
}
