package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/siragigame02/novel-image-generator/pkg/errors"
	"github.com/siragigame02/novel-image-generator/pkg/observability"
	"github.com/siragigame02/novel-image-generator/pkg/pipeline"
	"github.com/siragigame02/novel-image-generator/pkg/render"
	"github.com/siragigame02/novel-image-generator/pkg/script"
	"github.com/siragigame02/novel-image-generator/pkg/style"
	"github.com/siragigame02/novel-image-generator/pkg/textio"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	images   string // background image directory
	output   string // output directory (default: <script>_images next to the script)
	config   string // settings file path (default: config.yaml next to the script)
	name     string // base name override for output files
	format   string // output format override: jpg or png
	fontSize int    // font size override in pixels
}

// generateCommand creates the generate command, the main entry point of the
// tool: parse a script file and render its instruction stream to images.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate [script]",
		Short: "Render a tagged script into a numbered image sequence",
		Long: `Generate reads a tagged narrative text file and renders one image per
instruction: scene changes, dialogue pages with up to two bubbles, and
narration panels. Output files are numbered base_001.jpg, base_002.jpg, ...
in story order; a failed image leaves a gap instead of renumbering the rest.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.images, "images", "i", "", "background image directory (default: images/ next to the script)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: <script>_images)")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "settings file (default: config.yaml next to the script)")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "base name for output files (default: from settings)")
	cmd.Flags().StringVar(&opts.format, "format", "", "output format: jpg or png (default: from settings)")
	cmd.Flags().IntVar(&opts.fontSize, "font-size", 0, "font size in pixels (default: from settings)")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, scriptPath string, opts *generateOpts) error {
	logger := c.Logger
	ctx = withLogger(ctx, logger)

	settings, err := c.loadSettings(scriptPath, opts)
	if err != nil {
		return err
	}

	instructions, warnings, err := parseScript(ctx, scriptPath)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		printWarning("%s", w)
	}
	if len(instructions) == 0 {
		printInfo("Nothing to render: the script produced no instructions")
		return nil
	}

	outputDir := opts.output
	if outputDir == "" {
		outputDir = defaultOutputDir(scriptPath)
	}
	imagesDir := opts.images
	if imagesDir == "" {
		imagesDir = defaultImagesDir(scriptPath)
	}

	renderer := render.New(
		settings.OutputWidth, settings.OutputHeight,
		render.NewFolderBackgrounds(imagesDir),
		render.NewSystemFonts(logger),
		render.DirWriter{Dir: outputDir},
		logger,
	)

	p := newProgress(logger)
	result := pipeline.NewRunner(renderer, logger).Execute(ctx, instructions, settings)
	p.done("Pipeline finished")

	printRunSummary(result, outputDir)

	if result.Canceled {
		return ctx.Err()
	}
	if result.Rendered == 0 {
		return errors.New(errors.ErrCodeRenderFailed, "no images rendered (%d failures)", len(result.Failures))
	}
	return nil
}

// loadSettings loads the settings file and applies flag overrides. A missing
// settings file is not an error; defaults apply.
func (c *CLI) loadSettings(scriptPath string, opts *generateOpts) (style.Settings, error) {
	path := opts.config
	explicit := path != ""
	if !explicit {
		path = defaultSettingsPath(scriptPath)
	}

	settings, err := style.Load(path)
	if err != nil {
		if explicit || !errors.Is(err, errors.ErrCodeFileNotFound) {
			return settings, err
		}
		c.Logger.Debugf("no settings file at %s, using defaults", path)
		settings = style.Defaults()
	}

	if opts.name != "" {
		settings.BaseName = opts.name
	}
	if opts.format != "" {
		settings.OutputFormat = opts.format
	}
	if opts.fontSize > 0 {
		settings.FontSize = opts.fontSize
	}
	settings.Normalize()

	return settings, settings.Validate()
}

// parseScript reads, decodes, and parses the script file into instructions.
func parseScript(ctx context.Context, path string) ([]script.Instruction, []string, error) {
	logger := loggerFromContext(ctx)

	start := time.Now()
	observability.Pipeline().OnParseStart(ctx, path)

	lines, err := textio.ReadLines(path)
	if err != nil {
		return nil, nil, err
	}

	instructions, warnings := script.Parse(lines)
	observability.Pipeline().OnParseComplete(ctx, path, len(instructions), len(warnings), time.Since(start))
	logger.Infof("Parsed %s: %d instructions, %d warnings", path, len(instructions), len(warnings))

	return instructions, warnings, nil
}
