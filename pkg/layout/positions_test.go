package layout

import "testing"

func TestVerticalPositionsColumnOrder(t *testing.T) {
	c := newTestCalculator()
	// Two columns of two: first line right, second line left.
	b := c.TextBlock("あいうえ", testFontSize, 2, Vertical)

	pos := Positions(b, 100, 200)
	if len(pos) != 4 {
		t.Fatalf("got %d positions, want 4", len(pos))
	}

	// First line (あい) occupies the rightmost column.
	if pos[0].Char != 'あ' || pos[0].X != 100+testFontSize || pos[0].Y != 200 {
		t.Errorf("pos[0] = %+v, want あ at (148, 200)", pos[0])
	}
	if pos[1].Char != 'い' || pos[1].Y != 200+testFontSize {
		t.Errorf("pos[1] = %+v, want い one cell down", pos[1])
	}

	// Second line (うえ) in the left column.
	if pos[2].Char != 'う' || pos[2].X != 100 || pos[2].Y != 200 {
		t.Errorf("pos[2] = %+v, want う at (100, 200)", pos[2])
	}
}

func TestHorizontalPositionsRowOrder(t *testing.T) {
	c := newTestCalculator()
	b := c.TextBlock("あいう", testFontSize, 2, Horizontal)

	pos := Positions(b, 10, 20)
	if len(pos) != 3 {
		t.Fatalf("got %d positions, want 3", len(pos))
	}
	if pos[1].X != 10+testFontSize || pos[1].Y != 20 {
		t.Errorf("pos[1] = %+v, want advance by char width", pos[1])
	}
	if pos[2].X != 10 || pos[2].Y != 20+b.LineHeight {
		t.Errorf("pos[2] = %+v, want next row at line height", pos[2])
	}
}

// TestPositionsSkipWhitespace checks that spaces produce no glyph but still
// advance the cursor.
func TestPositionsSkipWhitespace(t *testing.T) {
	c := newTestCalculator()
	b := c.TextBlock("あ い", testFontSize, 5, Horizontal)

	pos := Positions(b, 0, 0)
	if len(pos) != 2 {
		t.Fatalf("got %d positions, want 2 (space skipped)", len(pos))
	}
	if pos[1].X != 2*testFontSize {
		t.Errorf("pos[1].X = %d, want %d (space advanced the cursor)", pos[1].X, 2*testFontSize)
	}
}
