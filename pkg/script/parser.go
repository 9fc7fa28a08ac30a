package script

import (
	"regexp"
	"strings"
)

var (
	sceneRe = regexp.MustCompile(`(?i)^\[scene:([^\]]+)\]`)
	paraRe  = regexp.MustCompile(`(?i)^\[para\]`)
	serifRe = regexp.MustCompile(`「([^」]*)」`)
)

// Parse turns raw source lines into the instruction stream plus structural
// warnings. It never fails; malformed input degrades to narration.
func Parse(lines []string) ([]Instruction, []string) {
	blocks := ParseLines(lines)
	return Instructions(blocks), Validate(blocks)
}

// ParseLines runs the scan and finalize passes, returning the typed block
// list. Exposed separately so validation and inspection tools can look at
// blocks before they are flattened into instructions.
func ParseLines(lines []string) []*Block {
	var blocks []*Block
	var current *Block

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		switch {
		case sceneRe.MatchString(line):
			if current != nil {
				blocks = append(blocks, current)
			}
			current = &Block{
				Kind:  KindSceneOnly, // revised by finalize
				Scene: sceneID(line),
				Raw:   []string{line},
			}
			// A blank line right after the tag marks an image-only scene.
			if i+1 < len(lines) && isBlank(lines[i+1]) {
				current.BlankAfterScene = true
				i++
				current.Raw = append(current.Raw, lines[i])
			}

		case paraRe.MatchString(line):
			if current != nil {
				blocks = append(blocks, current)
				current = nil
			}
			// The current scene identifier survives a page break.
			blocks = append(blocks, &Block{Kind: KindPageBreak, Raw: []string{line}})

		case isBlank(line):
			if current != nil {
				current.Raw = append(current.Raw, line)
			}

		default:
			if current == nil {
				// Text before any scene tag opens an implicit narration
				// block; its scene id is resolved later by carry-forward.
				current = &Block{Kind: KindNarration}
			}
			current.Raw = append(current.Raw, line)

			serifs := extractSerifs(line)
			if len(serifs) > 0 {
				addSerifs(current, serifs)
				if current.Scene != "" {
					if current.Kind == KindNarration && strings.TrimSpace(current.Caption) == "" {
						current.Kind = KindSceneWithSerifs
					}
				} else {
					current.Kind = KindSceneWithSerifs
				}
			} else {
				if current.Caption != "" {
					current.Caption += "\n"
				}
				current.Caption += line
			}
		}
	}

	if current != nil {
		blocks = append(blocks, current)
	}

	finalize(blocks)
	return blocks
}

// Instructions flattens finalized blocks into the output instruction stream.
// The current scene identifier is threaded through as an explicit
// accumulator: a block with no identifier of its own inherits the nearest
// preceding one.
func Instructions(blocks []*Block) []Instruction {
	var out []Instruction
	scene := ""

	for _, b := range blocks {
		if b.Kind == KindPageBreak {
			continue
		}
		if b.Scene != "" {
			scene = b.Scene
		}

		switch b.Kind {
		case KindSceneOnly:
			out = append(out, Instruction{Kind: ImageOnly, Scene: scene})

		case KindSceneWithSerifs:
			out = append(out, Instruction{
				Kind:   ImageWithSerifs,
				Scene:  scene,
				Serifs: append([]Serif(nil), b.Serifs...),
			})
			// Caption prose on a dialogue block becomes a separate
			// narration image for the same scene.
			if caption := strings.TrimSpace(b.Caption); caption != "" {
				out = append(out, Instruction{Kind: Narration, Scene: scene, Caption: caption})
			}

		case KindNarration:
			out = append(out, Instruction{
				Kind:    Narration,
				Scene:   scene,
				Caption: strings.TrimSpace(b.Caption),
			})
		}
	}

	return out
}

// finalize settles every block's kind from its accumulated content. The
// in-scan classification is provisional; this pass is authoritative.
func finalize(blocks []*Block) {
	for _, b := range blocks {
		if b.Kind == KindPageBreak {
			continue
		}

		if b.Scene != "" {
			switch {
			case b.BlankAfterScene && len(b.Serifs) == 0 && strings.TrimSpace(b.Caption) == "":
				b.Kind = KindSceneOnly
			case len(b.Serifs) > 0:
				b.Kind = KindSceneWithSerifs
			default:
				b.Kind = KindNarration
			}
			continue
		}

		if len(b.Serifs) > 0 {
			b.Kind = KindSceneWithSerifs
		} else {
			b.Kind = KindNarration
		}
	}
}

// addSerifs appends dialogue to a block, capped at MaxSerifsPerBlock. The
// first accepted serif takes the first slot, the second the second slot;
// overflow is dropped without a warning.
func addSerifs(b *Block, texts []string) {
	for _, text := range texts {
		if len(b.Serifs) >= MaxSerifsPerBlock {
			break
		}
		slot := SlotFirst
		if len(b.Serifs) == 1 {
			slot = SlotSecond
		}
		b.Serifs = append(b.Serifs, Serif{
			Text:  text,
			Slot:  slot,
			Order: len(b.Serifs) + 1,
		})
	}
}

// extractSerifs returns every 「…」 span on the line, discarding spans that
// are empty after trimming. A single line may carry multiple serifs.
func extractSerifs(line string) []string {
	var out []string
	for _, m := range serifRe.FindAllStringSubmatch(line, -1) {
		if s := strings.TrimSpace(m[1]); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// sceneID extracts the identifier from a [scene:<id>] tag.
func sceneID(line string) string {
	m := sceneRe.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return m[1]
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
