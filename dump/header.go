package dump

import (
	"fmt"
	"strings"
)

// headerLines builds the byte-index legend and the dashed rule emitted
// before the first data line. The legend runs the indexes through the
// same hex formatter as the data lines, so legend and data columns
// cannot drift apart.
func headerLines(lineWidth, groupLength int) []string {
	indexes := make([]byte, lineWidth)
	for i := range indexes {
		indexes[i] = byte(i)
	}
	width := hexFieldWidth(lineWidth, groupLength)
	legend := fmt.Sprintf("%8s | %-*s | %s",
		"", width, formatHex(indexes, groupLength), strings.Repeat(" ", lineWidth))
	rule := strings.Repeat("-", 9) +
		"+" + strings.Repeat("-", width+2) +
		"+" + strings.Repeat("-", lineWidth+1)
	return []string{legend, rule}
}
