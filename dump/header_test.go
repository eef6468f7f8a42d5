package dump

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderDefaults(t *testing.T) {
	lines := headerLines(16, 1)
	require.Len(t, lines, 2)
	require.Equal(t, "        "+" | "+"00 01 02 03 04 05 06 07 08 09 0a 0b 0c 0d 0e 0f"+" | "+"                ", lines[0])
	require.Equal(t, strings.Repeat("-", 9)+"+"+strings.Repeat("-", 49)+"+"+strings.Repeat("-", 17), lines[1])
	require.Len(t, lines[0], len(lines[1]))
}

func TestHeaderGrouped(t *testing.T) {
	lines := headerLines(16, 4)
	require.Equal(t, "        "+" | "+"00010203 04050607 08090a0b 0c0d0e0f"+" | "+"                ", lines[0])
	require.Len(t, lines[0], len(lines[1]))
}

func TestHeaderWidthMatchesData(t *testing.T) {
	configs := [][2]int{{16, 1}, {16, 4}, {8, 2}, {10, 4}, {4, 16}, {1, 1}, {256, 256}, {256, 1}}
	for _, config := range configs {
		width, group := config[0], config[1]
		lines := headerLines(width, group)
		chunk := make([]byte, width)
		data := formatLine(0, chunk, width, group, false)
		require.Len(t, lines, 2)
		require.Len(t, lines[0], len(data))
		require.Len(t, lines[1], len(data))
	}
}

func TestHexFieldWidthPartialGroup(t *testing.T) {
	// two full groups of 4 plus one group of 2
	require.Equal(t, 22, hexFieldWidth(10, 4))
	require.Equal(t, len(formatHex(make([]byte, 10), 4)), hexFieldWidth(10, 4))
}
