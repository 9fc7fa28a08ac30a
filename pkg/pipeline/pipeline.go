// Package pipeline executes a parsed instruction stream against a renderer.
//
// A run walks the instructions in order, assigning each a 1-based sequence
// number that becomes part of its output file name. A failed instruction is
// recorded and skipped; the sequence number still advances, so surviving
// files keep their position in the story and the gap marks the failure.
package pipeline

import (
	"github.com/siragigame02/novel-image-generator/pkg/script"
	"github.com/siragigame02/novel-image-generator/pkg/style"
)

// ImageRenderer renders one instruction to a sequenced output file.
type ImageRenderer interface {
	Render(inst script.Instruction, s style.Settings, index int) error
}

// Failure records one instruction that could not be rendered.
type Failure struct {
	// Index is the 1-based sequence number the instruction held; no file
	// with this number exists in the output.
	Index int

	// Scene is the scene identifier in effect for the instruction, if any.
	Scene string

	Err error
}

// Result summarizes one pipeline run.
type Result struct {
	// RunID uniquely identifies this run in logs and hook events.
	RunID string

	// Rendered counts instructions that produced an output file.
	Rendered int

	// Failures holds every instruction that produced no file.
	Failures []Failure

	// Canceled is true if the run stopped early on context cancellation.
	// Instructions after the cancellation point were never attempted.
	Canceled bool
}

// Success reports whether every attempted instruction rendered.
func (r Result) Success() bool {
	return len(r.Failures) == 0 && !r.Canceled
}

// Total returns the number of instructions attempted.
func (r Result) Total() int {
	return r.Rendered + len(r.Failures)
}

// RenderFunc adapts a function to ImageRenderer.
type RenderFunc func(inst script.Instruction, s style.Settings, index int) error

// Render implements ImageRenderer.
func (f RenderFunc) Render(inst script.Instruction, s style.Settings, index int) error {
	return f(inst, s, index)
}
