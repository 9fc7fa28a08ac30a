package layout

import "unicode"

// CharPos is one drawable character with its canvas position.
type CharPos struct {
	X    int
	Y    int
	Char rune
}

// Positions returns one entry per non-whitespace character of the block,
// anchored at the given text origin. Whitespace characters are skipped but
// still advance the cursor, so spacing is preserved.
//
// Vertical blocks emit columns right to left: the first wrapped line
// occupies the rightmost column. Within a column the cursor advances
// downward by the character width. Horizontal blocks emit rows top to
// bottom, advancing rightward by the character width and stepping down by
// the line height between rows.
func Positions(b TextBlock, originX, originY int) []CharPos {
	if b.Orientation == Vertical {
		return verticalPositions(b, originX, originY)
	}
	return horizontalPositions(b, originX, originY)
}

func verticalPositions(b TextBlock, originX, originY int) []CharPos {
	var out []CharPos
	total := len(b.Lines)

	for i, line := range b.Lines {
		x := originX + (total-1-i)*b.CharWidth
		y := originY
		for _, r := range line {
			if !unicode.IsSpace(r) {
				out = append(out, CharPos{X: x, Y: y, Char: r})
			}
			y += b.CharWidth
		}
	}
	return out
}

func horizontalPositions(b TextBlock, originX, originY int) []CharPos {
	var out []CharPos
	y := originY

	for _, line := range b.Lines {
		x := originX
		for _, r := range line {
			if !unicode.IsSpace(r) {
				out = append(out, CharPos{X: x, Y: y, Char: r})
			}
			x += b.CharWidth
		}
		y += b.LineHeight
	}
	return out
}
