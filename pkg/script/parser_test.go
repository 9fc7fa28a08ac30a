package script

import (
	"strings"
	"testing"
)

// instructionSummary flattens an instruction for compact comparison.
func instructionSummary(inst Instruction) string {
	parts := []string{inst.Kind.String(), "scene=" + inst.Scene}
	for _, s := range inst.Serifs {
		parts = append(parts, "serif="+s.Text)
	}
	if inst.Caption != "" {
		parts = append(parts, "caption="+inst.Caption)
	}
	return strings.Join(parts, " ")
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "scene only",
			lines: []string{"[scene:001]", ""},
			want:  []string{"image_only scene=001"},
		},
		{
			name:  "scene with dialogue",
			lines: []string{"[scene:002]", "「こんにちは」"},
			want:  []string{"image_with_serifs scene=002 serif=こんにちは"},
		},
		{
			name:  "third serif dropped",
			lines: []string{"[scene:003]", "「A」「B」「C」"},
			want:  []string{"image_with_serifs scene=003 serif=A serif=B"},
		},
		{
			name:  "narration block",
			lines: []string{"[scene:004]", "夜が明けた。"},
			want:  []string{"narration scene=004 caption=夜が明けた。"},
		},
		{
			name:  "narration before any scene",
			lines: []string{"むかしむかし。"},
			want:  []string{"narration scene= caption=むかしむかし。"},
		},
		{
			name: "dialogue block with prose emits trailing narration",
			lines: []string{
				"[scene:005]",
				"「行くぞ」",
				"二人は歩き出した。",
			},
			want: []string{
				"image_with_serifs scene=005 serif=行くぞ",
				"narration scene=005 caption=二人は歩き出した。",
			},
		},
		{
			name: "scene id survives page break",
			lines: []string{
				"[scene:009]",
				"「はい」",
				"[para]",
				"そして夜になった。",
			},
			want: []string{
				"image_with_serifs scene=009 serif=はい",
				"narration scene=009 caption=そして夜になった。",
			},
		},
		{
			name: "multi line caption joined with newline",
			lines: []string{
				"[scene:006]",
				"一行目。",
				"二行目。",
			},
			want: []string{"narration scene=006 caption=一行目。\n二行目。"},
		},
		{
			name: "blank after tag but text later is narration",
			lines: []string{
				"[scene:007]",
				"",
				"説明文。",
			},
			want: []string{"narration scene=007 caption=説明文。"},
		},
		{
			name:  "scene tag case insensitive",
			lines: []string{"[SCENE:008]", ""},
			want:  []string{"image_only scene=008"},
		},
		{
			name:  "empty quotes ignored",
			lines: []string{"[scene:010]", "「」と彼は黙った。"},
			want:  []string{"narration scene=010 caption=「」と彼は黙った。"},
		},
		{
			name:  "empty input",
			lines: nil,
			want:  nil,
		},
		{
			name:  "only page breaks",
			lines: []string{"[para]", "[para]"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Parse(tt.lines)
			if len(got) != len(tt.want) {
				t.Fatalf("Parse() = %d instructions, want %d", len(got), len(tt.want))
			}
			for i, inst := range got {
				if s := instructionSummary(inst); s != tt.want[i] {
					t.Errorf("instruction %d = %q, want %q", i, s, tt.want[i])
				}
			}
		})
	}
}

// TestParseMixedScriptStream pins the full instruction stream for a script
// exercising every construct at once. In particular, a scene tag directly
// followed by a page break carries no blank line and no content, so it falls
// through to a narration page with an empty caption rather than an
// image-only page. That empty page still consumes a sequence number, and
// output file numbering depends on it staying that way.
func TestParseMixedScriptStream(t *testing.T) {
	instructions, _ := Parse([]string{
		"[scene:001]",
		"",
		"「A」「B」「C」",
		"[para]",
		"narration text",
		"[scene:002]",
		"[para]",
		"more text",
	})

	want := []string{
		"image_with_serifs scene=001 serif=A serif=B",
		"narration scene=001 caption=narration text",
		"narration scene=002",
		"narration scene=002 caption=more text",
	}
	if len(instructions) != len(want) {
		t.Fatalf("got %d instructions, want %d:\n%v", len(instructions), len(want), instructions)
	}
	for i, inst := range instructions {
		if s := instructionSummary(inst); s != want[i] {
			t.Errorf("instruction %d = %q, want %q", i, s, want[i])
		}
	}
}

func TestParseSerifSlots(t *testing.T) {
	instructions, _ := Parse([]string{"[scene:001]", "「上」", "「下」"})
	if len(instructions) != 1 {
		t.Fatalf("got %d instructions, want 1", len(instructions))
	}
	serifs := instructions[0].Serifs
	if len(serifs) != 2 {
		t.Fatalf("got %d serifs, want 2", len(serifs))
	}
	if serifs[0].Slot != SlotFirst || serifs[0].Order != 1 {
		t.Errorf("first serif slot=%v order=%d, want first/1", serifs[0].Slot, serifs[0].Order)
	}
	if serifs[1].Slot != SlotSecond || serifs[1].Order != 2 {
		t.Errorf("second serif slot=%v order=%d, want second/2", serifs[1].Slot, serifs[1].Order)
	}
}

func TestParseWarnings(t *testing.T) {
	_, warnings := Parse([]string{
		"[scene:001]", "",
		"[scene:001]", "",
	})
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0], "duplicate scene identifier") {
		t.Errorf("warning = %q, want duplicate scene identifier", warnings[0])
	}
}

func TestParagraphSplitsBlocks(t *testing.T) {
	// Text on both sides of [para] must land in separate narration images.
	instructions, _ := Parse([]string{
		"[scene:001]",
		"前半。",
		"[para]",
		"後半。",
	})
	if len(instructions) != 2 {
		t.Fatalf("got %d instructions, want 2", len(instructions))
	}
	if instructions[0].Caption != "前半。" || instructions[1].Caption != "後半。" {
		t.Errorf("captions = %q, %q", instructions[0].Caption, instructions[1].Caption)
	}
	if instructions[1].Scene != "001" {
		t.Errorf("second instruction scene = %q, want 001", instructions[1].Scene)
	}
}

func TestExtractSerifs(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"single", "「あ」", []string{"あ"}},
		{"two on one line", "「あ」「い」", []string{"あ", "い"}},
		{"surrounding prose kept out", "彼は「やあ」と言った", []string{"やあ"}},
		{"empty span dropped", "「」", nil},
		{"whitespace span dropped", "「  」", nil},
		{"no quotes", "ただの文章", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractSerifs(tt.line)
			if len(got) != len(tt.want) {
				t.Fatalf("extractSerifs(%q) = %v, want %v", tt.line, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("serif %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
