package layout

import (
	"testing"

	"github.com/siragigame02/novel-image-generator/pkg/script"
)

const (
	testCanvasWidth  = 960
	testCanvasHeight = 1280
	testFontSize     = 48
)

func newTestCalculator() *Calculator {
	return NewCalculator(testCanvasWidth, testCanvasHeight)
}

func TestTextBlockSizing(t *testing.T) {
	c := newTestCalculator()
	fontSizeF := float64(testFontSize)

	tests := []struct {
		name        string
		text        string
		maxChars    int
		orientation Orientation
		wantWidth   int
		wantHeight  int
		wantLines   int
	}{
		{
			// 5 chars, one horizontal row
			name: "horizontal single line", text: "あいうえお", maxChars: 10,
			orientation: Horizontal,
			wantWidth:   5 * testFontSize,
			wantHeight:  int(fontSizeF * LineSpacingRatio),
			wantLines:   1,
		},
		{
			// 6 chars wrapped at 4: rows of 4 and 2, width from the longest
			name: "horizontal wrapped", text: "あいうえおか", maxChars: 4,
			orientation: Horizontal,
			wantWidth:   4 * testFontSize,
			wantHeight:  2 * int(fontSizeF*LineSpacingRatio),
			wantLines:   2,
		},
		{
			// vertical: width counts columns, height counts the longest column
			name: "vertical wrapped", text: "あいうえおか", maxChars: 4,
			orientation: Vertical,
			wantWidth:   2 * testFontSize,
			wantHeight:  4 * testFontSize,
			wantLines:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := c.TextBlock(tt.text, testFontSize, tt.maxChars, tt.orientation)
			if b.Width != tt.wantWidth {
				t.Errorf("Width = %d, want %d", b.Width, tt.wantWidth)
			}
			if b.Height != tt.wantHeight {
				t.Errorf("Height = %d, want %d", b.Height, tt.wantHeight)
			}
			if len(b.Lines) != tt.wantLines {
				t.Errorf("lines = %d, want %d", len(b.Lines), tt.wantLines)
			}
		})
	}
}

func TestTextBlockBlank(t *testing.T) {
	c := newTestCalculator()
	b := c.TextBlock("   ", testFontSize, 10, Horizontal)
	if b.Width != 0 || b.Height != 0 || len(b.Lines) != 0 {
		t.Errorf("blank block = %dx%d with %d lines, want zero", b.Width, b.Height, len(b.Lines))
	}
}

func TestSerifBubbleAnchors(t *testing.T) {
	c := newTestCalculator()

	first := c.SerifBubble("こんにちは", testFontSize, 10, script.SlotFirst)
	if got := first.X + first.Width + BubbleMargin; got != testCanvasWidth {
		t.Errorf("first slot right edge + margin = %d, want %d", got, testCanvasWidth)
	}
	if first.Y != BubbleMargin {
		t.Errorf("first slot Y = %d, want %d", first.Y, BubbleMargin)
	}

	second := c.SerifBubble("さようなら", testFontSize, 10, script.SlotSecond)
	if second.X != BubbleMargin {
		t.Errorf("second slot X = %d, want %d", second.X, BubbleMargin)
	}
	if got := second.Y + second.Height + BubbleMargin; got != testCanvasHeight {
		t.Errorf("second slot bottom edge + margin = %d, want %d", got, testCanvasHeight)
	}
}

func TestSerifBubbleTextOrigin(t *testing.T) {
	c := newTestCalculator()
	b := c.SerifBubble("やあ", testFontSize, 10, script.SlotFirst)
	if b.TextX != b.X+BubblePadding || b.TextY != b.Y+BubblePadding {
		t.Errorf("text origin = (%d,%d), want panel origin plus padding", b.TextX, b.TextY)
	}
	if b.Width != b.Block.Width+2*BubblePadding {
		t.Errorf("Width = %d, want block width plus padding", b.Width)
	}
}

// TestSerifBubbleOversized checks that a bubble taller than the canvas pins
// to the margin instead of going negative.
func TestSerifBubbleOversized(t *testing.T) {
	small := NewCalculator(200, 200)
	// 20 chars in one vertical column of 20*48 = 960px, far over 200px.
	b := small.SerifBubble("あいうえおかきくけこさしすせそたちつてと", testFontSize, 20, script.SlotSecond)
	if b.X != BubbleMargin || b.Y != BubbleMargin {
		t.Errorf("oversized bubble at (%d,%d), want pinned to margin %d", b.X, b.Y, BubbleMargin)
	}
}

func TestNarrationPanelGeometry(t *testing.T) {
	c := newTestCalculator()
	p := c.NarrationPanel("夜が明けた。", testFontSize, 35, AlignCenter, Horizontal)

	if p.X != NarrationMargin {
		t.Errorf("X = %d, want %d", p.X, NarrationMargin)
	}
	if p.Width != testCanvasWidth-2*NarrationMargin {
		t.Errorf("Width = %d, want canvas minus margins", p.Width)
	}
	if p.Height != p.Block.Height+2*NarrationPadding {
		t.Errorf("Height = %d, want block height plus padding", p.Height)
	}
	// Vertically centered
	if want := (testCanvasHeight - p.Height) / 2; p.Y != want {
		t.Errorf("Y = %d, want %d", p.Y, want)
	}
}

func TestNarrationPanelAlignment(t *testing.T) {
	c := newTestCalculator()
	text := "短い文。"

	left := c.NarrationPanel(text, testFontSize, 35, AlignLeft, Horizontal)
	center := c.NarrationPanel(text, testFontSize, 35, AlignCenter, Horizontal)
	right := c.NarrationPanel(text, testFontSize, 35, AlignRight, Horizontal)

	if left.TextX != left.X+NarrationPadding {
		t.Errorf("left TextX = %d, want %d", left.TextX, left.X+NarrationPadding)
	}
	if !(left.TextX < center.TextX && center.TextX < right.TextX) {
		t.Errorf("alignment order broken: left %d, center %d, right %d",
			left.TextX, center.TextX, right.TextX)
	}
	if want := right.X + right.Width - right.Block.Width - NarrationPadding; right.TextX != want {
		t.Errorf("right TextX = %d, want %d", right.TextX, want)
	}
}

// TestNarrationPanelTextClamped checks that text wider than the panel is
// pinned to the left padding edge for every alignment.
func TestNarrationPanelTextClamped(t *testing.T) {
	small := NewCalculator(300, 400)
	long := "とてもとても長い一行のテキストです"

	for _, align := range []Alignment{AlignLeft, AlignCenter, AlignRight} {
		p := small.NarrationPanel(long, testFontSize, 35, align, Horizontal)
		if want := p.X + NarrationPadding; p.TextX != want {
			t.Errorf("align %v: TextX = %d, want pinned to %d", align, p.TextX, want)
		}
	}
}

func TestParseOrientation(t *testing.T) {
	if o, err := ParseOrientation("vertical"); err != nil || o != Vertical {
		t.Errorf("ParseOrientation(vertical) = %v, %v", o, err)
	}
	if _, err := ParseOrientation("diagonal"); err == nil {
		t.Error("ParseOrientation(diagonal) should fail")
	}
}

func TestParseAlignment(t *testing.T) {
	if a, err := ParseAlignment("right"); err != nil || a != AlignRight {
		t.Errorf("ParseAlignment(right) = %v, %v", a, err)
	}
	if _, err := ParseAlignment("middle"); err == nil {
		t.Error("ParseAlignment(middle) should fail")
	}
}
