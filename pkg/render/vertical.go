package render

// verticalForms maps characters to their vertical-writing equivalents.
// Applied per character just before drawing, and only for vertical text.
// Long dashes rotate to the vertical bar, ellipses and wave dashes to their
// dedicated vertical forms; everything else passes through unchanged.
var verticalForms = map[rune]rune{
	'ー': '｜',
	'−': '｜',
	'―': '｜',
	'─': '｜',
	'…': '︙',
	'⋯': '︙',
	'〜': '︴',
	'～': '︴',
}

// verticalGlyph returns the vertical-writing form of r, or r itself when no
// substitution applies.
func verticalGlyph(r rune) rune {
	if v, ok := verticalForms[r]; ok {
		return v
	}
	return r
}
