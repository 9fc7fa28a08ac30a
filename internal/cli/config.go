package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/siragigame02/novel-image-generator/pkg/style"
)

// configCommand creates the config command with init and show subcommands.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the YAML settings file",
	}
	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configShowCommand())
	return cmd
}

// configInitCommand writes a settings file populated with defaults.
func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a settings file with default values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := settingsFileName
			if len(args) == 1 {
				path = args[0]
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}

			if err := style.Defaults().Save(path); err != nil {
				return err
			}
			printSuccess("Wrote %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing settings file")
	return cmd
}

// configShowCommand prints the effective settings after normalization.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [path]",
		Short: "Print the effective settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := settingsFileName
			if len(args) == 1 {
				path = args[0]
			}

			settings, err := style.Load(path)
			if err != nil {
				return err
			}

			printKeyValue("canvas", fmt.Sprintf("%dx%d", settings.OutputWidth, settings.OutputHeight))
			printKeyValue("format", settings.OutputFormat)
			printKeyValue("base name", settings.BaseName)
			printKeyValue("font size", fmt.Sprintf("%d", settings.FontSize))
			printKeyValue("serif", fmt.Sprintf("%s on %s (%d%%), border %s, wrap %d",
				settings.SerifFontColor, settings.SerifBGColor, settings.SerifBGAlpha,
				settings.SerifBorderColor, settings.SerifMaxChars))
			printKeyValue("narration", fmt.Sprintf("%s on %s (%d%%), %s %s, wrap %d",
				settings.FontColor, settings.NarrationBGColor, settings.NarrationBGAlpha,
				settings.NarrationTextAlign, settings.NarrationOrientation, settings.NarrationMaxChars))
			return nil
		},
	}
}
