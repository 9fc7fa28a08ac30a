// Package cli implements the novelimg command-line interface.
package cli

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/siragigame02/novel-image-generator/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "novelimg"

	// settingsFileName is the default settings file looked up next to the
	// script when --config is not given.
	settingsFileName = "config.yaml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Novelimg turns tagged narrative text into story images",
		Long:         `Novelimg is a CLI tool that reads tagged Japanese narrative text and renders a numbered sequence of still images with dialogue bubbles and caption panels, ready to assemble into a video or web reader.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Paths
// =============================================================================

// defaultSettingsPath returns the settings file next to the script file.
func defaultSettingsPath(scriptPath string) string {
	return filepath.Join(filepath.Dir(scriptPath), settingsFileName)
}

// defaultOutputDir returns the output directory derived from the script file.
func defaultOutputDir(scriptPath string) string {
	base := strings.TrimSuffix(filepath.Base(scriptPath), filepath.Ext(scriptPath))
	return filepath.Join(filepath.Dir(scriptPath), base+"_images")
}

// defaultImagesDir returns the background folder looked up when --images is
// not given: an "images" directory next to the script.
func defaultImagesDir(scriptPath string) string {
	return filepath.Join(filepath.Dir(scriptPath), "images")
}
