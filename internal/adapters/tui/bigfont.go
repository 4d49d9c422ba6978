package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	glyphRows = 5
	pixel     = "██"
	blank     = "  "
)

// glyph is a bitmap with one byte per row, most significant used bit on the left.
type glyph struct {
	width int
	rows  [glyphRows]uint8
}

var glyphs = map[rune]glyph{
	'0': {3, [glyphRows]uint8{0b111, 0b101, 0b101, 0b101, 0b111}},
	'1': {3, [glyphRows]uint8{0b010, 0b110, 0b010, 0b010, 0b111}},
	'2': {3, [glyphRows]uint8{0b111, 0b001, 0b111, 0b100, 0b111}},
	'3': {3, [glyphRows]uint8{0b111, 0b001, 0b011, 0b001, 0b111}},
	'4': {3, [glyphRows]uint8{0b101, 0b101, 0b111, 0b001, 0b001}},
	'5': {3, [glyphRows]uint8{0b111, 0b100, 0b111, 0b001, 0b111}},
	'6': {3, [glyphRows]uint8{0b111, 0b100, 0b111, 0b101, 0b111}},
	'7': {3, [glyphRows]uint8{0b111, 0b001, 0b010, 0b010, 0b010}},
	'8': {3, [glyphRows]uint8{0b111, 0b101, 0b111, 0b101, 0b111}},
	'9': {3, [glyphRows]uint8{0b111, 0b101, 0b111, 0b001, 0b111}},
	':': {1, [glyphRows]uint8{0b0, 0b1, 0b0, 0b1, 0b0}},
}

// row renders one bitmap row of g.
func (g glyph) row(i int) string {
	var b strings.Builder
	for bit := g.width - 1; bit >= 0; bit-- {
		if g.rows[i]&(1<<bit) != 0 {
			b.WriteString(pixel)
		} else {
			b.WriteString(blank)
		}
	}
	return b.String()
}

// renderBigTime renders an "HH:MM:SS" string as five lines of block glyphs.
// It falls back to a single styled line when width cannot fit them.
func renderBigTime(timeStr string, color lipgloss.Color, width int) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(color)
	if width < bigTimeWidth(timeStr)+4 {
		return style.Render(timeStr)
	}

	var lines [glyphRows][]string
	for _, ch := range timeStr {
		g, ok := glyphs[ch]
		if !ok {
			continue
		}
		for i := range lines {
			lines[i] = append(lines[i], g.row(i))
		}
	}

	styled := make([]string, glyphRows)
	for i, parts := range lines {
		styled[i] = style.Render(strings.Join(parts, " "))
	}
	return strings.Join(styled, "\n")
}

// bigTimeWidth returns the rendered width of timeStr in big glyphs.
func bigTimeWidth(timeStr string) int {
	width := 0
	for _, ch := range timeStr {
		g, ok := glyphs[ch]
		if !ok {
			continue
		}
		if width > 0 {
			width++
		}
		width += g.width * len([]rune(pixel))
	}
	return width
}
