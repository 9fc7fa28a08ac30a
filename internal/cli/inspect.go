package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/siragigame02/novel-image-generator/pkg/script"
)

// inspectCommand creates the inspect command: parse a script and print the
// instruction stream without rendering anything. Useful for checking how a
// text will be paginated before committing to a full render.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [script]",
		Short: "Print the parsed instruction stream without rendering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runInspect(ctx context.Context, scriptPath string) error {
	ctx = withLogger(ctx, c.Logger)

	instructions, warnings, err := parseScript(ctx, scriptPath)
	if err != nil {
		return err
	}

	for i, inst := range instructions {
		printInstruction(i+1, inst)
	}
	for _, w := range warnings {
		printWarning("%s", w)
	}

	if len(instructions) == 0 {
		printInfo("No instructions")
		return nil
	}
	printSuccess("%d instructions", len(instructions))
	printNextStep("Render them", fmt.Sprintf("%s generate %s", appName, scriptPath))
	return nil
}

// printInstruction prints one instruction with its sequence number, kind,
// scene, and a preview of its text content.
func printInstruction(index int, inst script.Instruction) {
	scene := inst.Scene
	if scene == "" {
		scene = "-"
	}
	printKeyValue(fmt.Sprintf("%03d %s", index, inst.Kind), "scene "+scene)

	switch inst.Kind {
	case script.ImageWithSerifs:
		for _, s := range inst.Serifs {
			printDetail("「%s」", preview(s.Text))
		}
	case script.Narration:
		printDetail("%s", preview(inst.Caption))
	}
}

// previewLimit caps the text shown per instruction in inspect output.
const previewLimit = 40

// preview flattens newlines and truncates long text for display.
func preview(s string) string {
	s = strings.ReplaceAll(s, "\n", " / ")
	runes := []rune(s)
	if len(runes) <= previewLimit {
		return s
	}
	return string(runes[:previewLimit]) + "…"
}
