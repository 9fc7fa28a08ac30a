// Package layout computes pixel geometry for dialogue bubbles and caption
// panels.
//
// All sizing rests on a square-glyph assumption: every character occupies
// font-size pixels on its advance axis. That holds for the Japanese text the
// tool targets and keeps geometry independent of font metrics, so layout is
// fully testable without loading any font.
//
// Vertical text flows in columns ordered right to left; horizontal text
// flows in rows ordered top to bottom.
package layout

import (
	"github.com/siragigame02/novel-image-generator/pkg/errors"
	"github.com/siragigame02/novel-image-generator/pkg/script"
)

// Orientation is the flow direction of a text block.
type Orientation int

const (
	// Horizontal text flows in rows, top to bottom.
	Horizontal Orientation = iota
	// Vertical text flows in columns, right to left.
	Vertical
)

// ParseOrientation converts a settings string to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return Horizontal, errors.New(errors.ErrCodeInvalidOrientation, "unknown orientation %q", s)
}

// Alignment is the horizontal placement of text inside a caption panel.
// It is meaningful only for horizontal blocks.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// ParseAlignment converts a settings string to an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignCenter, errors.New(errors.ErrCodeInvalidAlignment, "unknown alignment %q", s)
}

// LineSpacingRatio is the fixed line-height multiplier for horizontal text.
const LineSpacingRatio = 1.2

// Layout constants, in pixels.
const (
	BubblePadding    = 20 // inner padding of a dialogue bubble
	BubbleMargin     = 40 // minimum distance from the canvas edge
	BubbleRadius     = 15 // corner radius of the bubble panel
	BubbleGap        = 20 // vertical gap inserted by overlap resolution
	NarrationPadding = 30 // inner padding of the caption panel
	NarrationMargin  = 60 // horizontal inset of the caption panel
)

// TextBlock is the immutable result of wrapping one text string.
//
// For vertical blocks, Width = len(Lines)·CharWidth and Height = (longest
// line)·CharWidth. For horizontal blocks, Width = (longest line)·CharWidth
// and Height = len(Lines)·LineHeight.
type TextBlock struct {
	Text        string
	Lines       []string
	Width       int
	Height      int
	LineHeight  int
	CharWidth   int
	Orientation Orientation
}

// Bubble is the computed geometry of one dialogue callout: the wrapped text
// block, the panel rectangle, and the text origin inside it.
type Bubble struct {
	Block   TextBlock
	X       int
	Y       int
	Width   int
	Height  int
	TextX   int
	TextY   int
	Padding int
}

// Panel is the computed geometry of a caption panel: a full-width rectangle
// vertically centered on the canvas.
type Panel struct {
	Block     TextBlock
	X         int
	Y         int
	Width     int
	Height    int
	TextX     int
	TextY     int
	Alignment Alignment
}

// Calculator computes geometry for one canvas size.
type Calculator struct {
	CanvasWidth  int
	CanvasHeight int
}

// NewCalculator returns a Calculator for the given canvas size.
func NewCalculator(width, height int) *Calculator {
	return &Calculator{CanvasWidth: width, CanvasHeight: height}
}

// TextBlock wraps text at maxChars characters per line and computes the
// block's pixel size. Empty or whitespace-only text yields a zero-sized
// block with an empty line sequence.
func (c *Calculator) TextBlock(text string, fontSize, maxChars int, o Orientation) TextBlock {
	if isBlankText(text) {
		return TextBlock{Orientation: o}
	}

	lineHeight := int(float64(fontSize) * LineSpacingRatio)
	charWidth := fontSize
	lines := Wrap(text, maxChars)

	longest := 0
	for _, line := range lines {
		if n := runeLen(line); n > longest {
			longest = n
		}
	}

	var width, height int
	if o == Vertical {
		width = len(lines) * charWidth
		height = longest * charWidth
	} else {
		width = longest * charWidth
		height = len(lines) * lineHeight
	}

	return TextBlock{
		Text:        text,
		Lines:       lines,
		Width:       width,
		Height:      height,
		LineHeight:  lineHeight,
		CharWidth:   charWidth,
		Orientation: o,
	}
}

// SerifBubble computes the geometry for one dialogue bubble. Dialogue always
// wraps vertically. The first slot anchors top-right, the second bottom-left;
// both are clamped so the panel stays inside the canvas minus the margin.
// A panel too large for the clampable range pins to the margin.
func (c *Calculator) SerifBubble(text string, fontSize, maxChars int, slot script.Slot) Bubble {
	block := c.TextBlock(text, fontSize, maxChars, Vertical)

	width := block.Width + 2*BubblePadding
	height := block.Height + 2*BubblePadding

	var x, y int
	if slot == script.SlotFirst {
		x = c.CanvasWidth - width - BubbleMargin
		y = BubbleMargin
	} else {
		x = BubbleMargin
		y = c.CanvasHeight - height - BubbleMargin
	}

	x = clamp(x, BubbleMargin, c.CanvasWidth-width-BubbleMargin)
	y = clamp(y, BubbleMargin, c.CanvasHeight-height-BubbleMargin)

	return Bubble{
		Block:   block,
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		TextX:   x + BubblePadding,
		TextY:   y + BubblePadding,
		Padding: BubblePadding,
	}
}

// NarrationPanel computes the geometry for a caption panel. The panel spans
// the canvas width minus the margins and is vertically centered; the text
// origin follows the requested alignment, clamped so text never overflows
// the panel.
func (c *Calculator) NarrationPanel(text string, fontSize, maxChars int, align Alignment, o Orientation) Panel {
	block := c.TextBlock(text, fontSize, maxChars, o)

	width := c.CanvasWidth - 2*NarrationMargin
	height := block.Height + 2*NarrationPadding
	x := NarrationMargin
	y := (c.CanvasHeight - height) / 2

	var textX int
	switch align {
	case AlignCenter:
		textX = x + (width-block.Width)/2
	case AlignRight:
		textX = x + width - block.Width - NarrationPadding
	default:
		textX = x + NarrationPadding
	}
	textX = clamp(textX, x+NarrationPadding, x+width-block.Width-NarrationPadding)

	return Panel{
		Block:     block,
		X:         x,
		Y:         y,
		Width:     width,
		Height:    height,
		TextX:     textX,
		TextY:     y + NarrationPadding,
		Alignment: align,
	}
}

// clamp bounds v into [lo, hi]. When hi < lo (content larger than the
// clampable range) the result is lo, pinning oversized panels to the margin.
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
