package layout

// ResolveOverlaps adjusts bubbles so later ones do not cover earlier ones.
// Bubbles are processed in input order; each is tested against every
// already-placed (and possibly adjusted) bubble. On overlap the later bubble
// is pushed below the earlier one with a fixed gap, or above it when below
// would leave the canvas, floored at the margin.
//
// Only vertical displacement is attempted. This is a best-effort heuristic,
// not a constraint solver: a third mutually-overlapping bubble can still
// collide after adjustment. Input order is preserved.
func (c *Calculator) ResolveOverlaps(bubbles []Bubble) []Bubble {
	if len(bubbles) <= 1 {
		return bubbles
	}

	placed := make([]Bubble, 0, len(bubbles))
	for _, b := range bubbles {
		for _, prev := range placed {
			if overlaps(b, prev) {
				b = c.pushApart(b, prev)
			}
		}
		placed = append(placed, b)
	}
	return placed
}

// overlaps reports axis-aligned rectangle intersection. The strict
// comparisons make abutting rectangles count as overlapping.
func overlaps(a, b Bubble) bool {
	return !(a.X+a.Width < b.X ||
		b.X+b.Width < a.X ||
		a.Y+a.Height < b.Y ||
		b.Y+b.Height < a.Y)
}

// pushApart moves b below prev with a gap, or above when below would exceed
// the canvas minus the margin. The text origin follows the panel.
func (c *Calculator) pushApart(b, prev Bubble) Bubble {
	y := prev.Y + prev.Height + BubbleGap
	if y+b.Height > c.CanvasHeight-BubbleMargin {
		y = prev.Y - b.Height - BubbleGap
		if y < BubbleMargin {
			y = BubbleMargin
		}
	}
	b.Y = y
	b.TextY = y + b.Padding
	return b
}
