// Package render formats bit vectors for the demo driver.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/dynbitset"
)

// Line returns b as "Size: <n> | <bits>", bit 0 first, without a newline.
func Line(b *dynbitset.BitVector) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Size: %d | ", b.Len())
	for i := uint(0); i != b.Len(); i++ {
		if b.Test(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Write writes Line(b) followed by a newline to w.
func Write(w io.Writer, b *dynbitset.BitVector) error {
	_, err := io.WriteString(w, Line(b)+"\n")
	return err
}
