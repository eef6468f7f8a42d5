package dump

import (
	"fmt"
	"strings"
)

const DefaultLineWidth = 16
const DefaultGroupLength = 1
const MaxLineWidth = 256
const MaxGroupLength = 256

// hexFieldWidth returns the rendered width of the hex column for a full
// line: each group costs 2*groupLength digits plus one separating space,
// minus the trailing separator. Integer division absorbs a short final
// group, so the formula holds when groupLength does not divide lineWidth.
func hexFieldWidth(lineWidth, groupLength int) int {
	return ((2*groupLength+1)*lineWidth - 1) / groupLength
}

func formatHex(data []byte, groupLength int) string {
	var field strings.Builder
	for i, b := range data {
		if i > 0 && i%groupLength == 0 {
			field.WriteByte(' ')
		}
		fmt.Fprintf(&field, "%02x", b)
	}
	return field.String()
}

func formatChars(data []byte, controlPictures bool) string {
	var field strings.Builder
	for _, b := range data {
		switch {
		case b < 0x20 && controlPictures:
			// Unicode Control Pictures block
			field.WriteRune(rune(0x2400 + int(b)))
		case b >= 0x20 && b < 0x7f:
			field.WriteByte(b)
		default:
			field.WriteByte('.')
		}
	}
	return field.String()
}

// formatLine renders one chunk as "OFFSET | HEX | ASCII". The hex column
// is always padded to the full-line width so a short final chunk stays
// aligned with the header and the lines above it.
func formatLine(offset int, chunk []byte, lineWidth, groupLength int, controlPictures bool) string {
	return fmt.Sprintf("%08x | %-*s | %s",
		offset,
		hexFieldWidth(lineWidth, groupLength),
		formatHex(chunk, groupLength),
		formatChars(chunk, controlPictures))
}
