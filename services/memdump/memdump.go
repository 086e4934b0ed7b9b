// Package memdump renders a persistent memory region as a hex table.
package memdump

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const rowBytes = 16

// Region is a readable block of persistent memory. hal.Flash satisfies it.
type Region interface {
	SizeBytes() uint32
	ReadAt(p []byte, off uint32) (int, error)
}

// Write dumps the first size bytes of r to w.
//
// The header lists the column offsets; each row holds the row offset, the 16
// byte values and the row rendered as text. Numbers are upper-case hex without
// padding, cells are tab separated. size is clamped to the region; a short
// final row is rendered as is.
func Write(w io.Writer, r Region, size uint32) error {
	if total := r.SizeBytes(); size == 0 || size > total {
		size = total
	}

	var sb strings.Builder
	sb.WriteString("offset\t")
	for h := 0; h < rowBytes; h++ {
		sb.WriteString(hex(uint32(h)))
		sb.WriteByte('\t')
	}
	sb.WriteByte('\n')
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}

	var row [rowBytes]byte
	for off := uint32(0); off < size; off += rowBytes {
		n := size - off
		if n > rowBytes {
			n = rowBytes
		}
		got, err := r.ReadAt(row[:n], off)
		if err != nil && got < int(n) {
			return fmt.Errorf("memdump read at %d: %w", off, err)
		}

		sb.Reset()
		sb.WriteString(hex(off))
		sb.WriteByte('\t')
		for _, b := range row[:n] {
			sb.WriteString(hex(uint32(b)))
			sb.WriteByte('\t')
		}
		for _, b := range row[:n] {
			sb.WriteByte(printable(b))
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// Command returns a console callback that dumps r to w. Arguments are ignored.
func Command(w io.Writer, r Region, size uint32) func(string) {
	return func(string) {
		if err := Write(w, r, size); err != nil {
			_, _ = io.WriteString(w, "eeprom: "+err.Error())
		}
	}
}

func hex(v uint32) string {
	return strings.ToUpper(strconv.FormatUint(uint64(v), 16))
}

func printable(b byte) byte {
	if b < 0x20 || b > 0x7e {
		return '.'
	}
	return b
}
