package script

import (
	"fmt"
	"strings"
)

// Validate scans finalized blocks and reports structural problems as
// human-readable warnings. Warnings never block output generation.
//
// Reported issues:
//   - duplicate scene identifiers across blocks
//   - blocks carrying more than MaxSerifsPerBlock serifs (the scan pass caps
//     these, kept as a defensive check)
//   - dialogue entries that are empty after trimming
func Validate(blocks []*Block) []string {
	var warnings []string
	seen := make(map[string]bool)

	for i, b := range blocks {
		if b.Scene != "" {
			if seen[b.Scene] {
				warnings = append(warnings, fmt.Sprintf("duplicate scene identifier %q", b.Scene))
			} else {
				seen[b.Scene] = true
			}
		}

		if len(b.Serifs) > MaxSerifsPerBlock {
			warnings = append(warnings, fmt.Sprintf(
				"block %d: %d serifs exceed the limit of %d", i+1, len(b.Serifs), MaxSerifsPerBlock))
		}

		for _, s := range b.Serifs {
			if strings.TrimSpace(s.Text) == "" {
				warnings = append(warnings, fmt.Sprintf("block %d: empty serif", i+1))
			}
		}
	}

	return warnings
}
