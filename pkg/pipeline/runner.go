package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/siragigame02/novel-image-generator/pkg/observability"
	"github.com/siragigame02/novel-image-generator/pkg/script"
	"github.com/siragigame02/novel-image-generator/pkg/style"
)

// Runner drives a renderer over an instruction stream.
type Runner struct {
	Renderer ImageRenderer
	Logger   *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to the default logger.
func NewRunner(renderer ImageRenderer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Renderer: renderer, Logger: logger}
}

// Execute renders every instruction in order. Cancellation is checked
// between instructions; a render in flight finishes before the run stops.
func (r *Runner) Execute(ctx context.Context, instructions []script.Instruction, s style.Settings) Result {
	result := Result{RunID: uuid.NewString()}
	logger := r.Logger.With("run", result.RunID)

	start := time.Now()
	observability.Pipeline().OnRunStart(ctx, result.RunID, len(instructions))
	logger.Info("starting run", "instructions", len(instructions))

	for i, inst := range instructions {
		if err := ctx.Err(); err != nil {
			logger.Warn("run canceled", "remaining", len(instructions)-i)
			result.Canceled = true
			break
		}

		index := i + 1
		observability.Pipeline().OnRenderStart(ctx, index, inst.Scene)
		renderStart := time.Now()

		err := r.Renderer.Render(inst, s, index)
		observability.Pipeline().OnRenderComplete(ctx, index, inst.Scene, time.Since(renderStart), err)

		if err != nil {
			logger.Error("render failed", "index", index, "scene", inst.Scene, "err", err)
			result.Failures = append(result.Failures, Failure{Index: index, Scene: inst.Scene, Err: err})
			continue
		}
		result.Rendered++
	}

	observability.Pipeline().OnRunComplete(ctx, result.RunID, result.Rendered, len(result.Failures), time.Since(start))
	logger.Info("run finished",
		"rendered", result.Rendered,
		"failed", len(result.Failures),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return result
}
