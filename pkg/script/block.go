// Package script parses tagged narrative text into render instructions.
//
// A script is a plain-text file where `[scene:<id>]` tags bind the following
// text to a background image, `[para]` tags force a page break, quoted spans
// (「…」) become dialogue, and everything else is caption prose. Parsing runs
// in three passes over an explicit block list:
//
//  1. Scan: group raw lines into typed scene blocks.
//  2. Finalize: settle each block's kind from its accumulated content.
//  3. Generate: flatten blocks into an ordered instruction stream, resolving
//     scene-id carry-forward.
//
// Parsing never fails: malformed input degrades to narration blocks. An
// independent validation pass reports structural warnings (duplicate scene
// ids, empty dialogue) without blocking output.
package script

// Kind classifies a scene block during parsing.
type Kind int

const (
	// KindSceneOnly is a background image with no text.
	KindSceneOnly Kind = iota
	// KindSceneWithSerifs is a background with one or two dialogue bubbles.
	KindSceneWithSerifs
	// KindNarration is caption prose over the current background.
	KindNarration
	// KindPageBreak is a standalone [para] marker.
	KindPageBreak
)

// String returns the kind name used in logs and warnings.
func (k Kind) String() string {
	switch k {
	case KindSceneOnly:
		return "scene_only"
	case KindSceneWithSerifs:
		return "scene_with_serifs"
	case KindNarration:
		return "narration"
	case KindPageBreak:
		return "page_break"
	}
	return "unknown"
}

// Slot is one of the two fixed anchor positions available for dialogue
// bubbles in a scene.
type Slot int

const (
	// SlotFirst anchors to the top-right corner.
	SlotFirst Slot = iota
	// SlotSecond anchors to the bottom-left corner.
	SlotSecond
)

// String returns the slot name.
func (s Slot) String() string {
	if s == SlotSecond {
		return "second"
	}
	return "first"
}

// MaxSerifsPerBlock caps the number of dialogue bubbles a block may carry.
// Dialogue beyond the cap is silently dropped.
const MaxSerifsPerBlock = 2

// Serif is one dialogue line with its assigned slot and 1-based order.
type Serif struct {
	Text  string
	Slot  Slot
	Order int
}

// Block is a parser-internal group of source lines. Blocks are mutated only
// during a single parse pass; Instructions produces the read-only output.
type Block struct {
	Kind            Kind
	Scene           string // scene identifier, "" when the block declares none
	Serifs          []Serif
	Caption         string   // newline-joined caption prose
	BlankAfterScene bool     // the line right after the scene tag was blank
	Raw             []string // source lines, diagnostic only
}

// InstructionKind classifies one output instruction.
type InstructionKind int

const (
	// ImageOnly emits the scene background with no text.
	ImageOnly InstructionKind = iota
	// ImageWithSerifs emits the background with dialogue bubbles.
	ImageWithSerifs
	// Narration emits a translucent caption panel over the background.
	Narration
)

// String returns the instruction kind name.
func (k InstructionKind) String() string {
	switch k {
	case ImageOnly:
		return "image_only"
	case ImageWithSerifs:
		return "image_with_serifs"
	case Narration:
		return "narration"
	}
	return "unknown"
}

// Instruction is the parser's final product: one still image to generate.
// Scene carries the effective identifier, inherited from the nearest
// preceding tagged block when the source block declared none.
type Instruction struct {
	Kind    InstructionKind
	Scene   string
	Serifs  []Serif
	Caption string
}
