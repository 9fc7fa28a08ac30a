package render

import "testing"

func TestVerticalGlyph(t *testing.T) {
	tests := []struct {
		name string
		in   rune
		want rune
	}{
		{"long vowel mark", 'ー', '｜'},
		{"minus sign", '−', '｜'},
		{"horizontal bar", '―', '｜'},
		{"box drawing", '─', '｜'},
		{"ellipsis", '…', '︙'},
		{"midline ellipsis", '⋯', '︙'},
		{"wave dash", '〜', '︴'},
		{"fullwidth tilde", '～', '︴'},

		{"kana unchanged", 'あ', 'あ'},
		{"kanji unchanged", '物', '物'},
		{"ascii unchanged", 'A', 'A'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := verticalGlyph(tt.in); got != tt.want {
				t.Errorf("verticalGlyph(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
