// Package cmd implements the command line interface for glance
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/marlow/glance/internal/analytics"
	"github.com/marlow/glance/internal/config"
	"github.com/marlow/glance/internal/layout"
	"github.com/marlow/glance/internal/logger"
	"github.com/marlow/glance/internal/longlist"
	"github.com/marlow/glance/internal/render"
	"github.com/marlow/glance/internal/scan"
	"github.com/marlow/glance/internal/terminal"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for glance
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "glance [directory]",
		Short: "Directory listings with emoji icons",
		Long: `Glance renders a directory as a compact multi-column grid, classifying
every entry with an emoji icon and decorating git work trees with
per-file status markers.

The positional argument defaults to the current directory.

Configuration is loaded from ~/.config/glance/config.yaml if present.
CLI flags override configuration file settings.

Examples:
  glance                    # List the current directory
  glance /var/log           # List another directory
  glance -l src/            # Long listing with sizes and permissions
  glance -a projects/       # Analytics report for a subtree
  glance --no-git           # Skip git status probing
  glance --width 120        # Assume a 120-column terminal`,
		Args:    cobra.MaximumNArgs(1),
		Version: Version,
		RunE:    runListing,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	// Add flags
	cmd.Flags().BoolP("long", "l", false, "Show a detailed long listing instead of the grid")
	cmd.Flags().BoolP("analytics", "a", false, "Show a directory analytics report instead of the grid")
	cmd.Flags().Bool("no-git", false, "Disable git status markers")
	cmd.Flags().Int("width", 0, "Assume this terminal width instead of probing (0 = probe)")
	cmd.Flags().Bool("verbose", false, "Show detailed diagnostic output")
	cmd.Flags().String("config", "", "Path to config file (default: ~/.config/glance/config.yaml)")

	return cmd
}

// runListing implements the root command logic
func runListing(cmd *cobra.Command, args []string) error {
	// Load configuration from file
	configPath, _ := cmd.Flags().GetString("config")
	var cfg *config.Config
	var err error

	if configPath != "" {
		// Load from explicit config path
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		// Load from default ~/.config/glance/config.yaml
		cfg, err = config.LoadConfigFromHome()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	// Get flag values
	longFlag, _ := cmd.Flags().GetBool("long")
	analyticsFlag, _ := cmd.Flags().GetBool("analytics")
	noGitFlag, _ := cmd.Flags().GetBool("no-git")
	widthFlag, _ := cmd.Flags().GetInt("width")
	verbose, _ := cmd.Flags().GetBool("verbose")

	// Validate conflicting flags
	if longFlag && analyticsFlag {
		return fmt.Errorf("cannot use both --long and --analytics")
	}

	// Build flag pointers for merge (only non-default values)
	var widthPtr *int
	if cmd.Flags().Changed("width") {
		widthPtr = &widthFlag
	}

	var gitPtr *bool
	if cmd.Flags().Changed("no-git") {
		git := !noGitFlag
		gitPtr = &git
	}

	// Merge CLI flags with config (flags take precedence)
	cfg.MergeWithFlags(widthPtr, gitPtr)

	// Determine log level: verbose flag overrides config
	if verbose {
		cfg.LogLevel = "debug"
	}

	// Validate merged configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Resolve the target directory
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve directory: %w", err)
	}

	// Diagnostics go to stderr so the listing stays pipeable
	log := logger.NewConsoleLogger(os.Stderr, cfg.LogLevel)
	if configPath != "" {
		log.LogDebug(fmt.Sprintf("config loaded from %s", configPath))
	}

	out := cmd.OutOrStdout()

	switch {
	case longFlag:
		return longlist.Write(out, dir)
	case analyticsFlag:
		report, err := analytics.Collect(dir)
		if err != nil {
			return err
		}
		report.Write(out)
		return nil
	}

	result, err := scan.Directory(dir, scan.Options{Git: cfg.Git, Logger: log})
	if err != nil {
		return err
	}
	if result.Branch != "" {
		log.LogDebug(fmt.Sprintf("git branch %s", result.Branch))
	}
	if result.Skipped > 0 {
		log.LogWarn(fmt.Sprintf("skipped %d unreadable entries in %s", result.Skipped, dir))
	}

	width := cfg.Width
	if width <= 0 {
		width = terminal.Width(os.Stdout)
	}
	log.LogDebug(fmt.Sprintf("laying out %d entries at width %d", len(result.Entries), width))

	grid := layout.Compute(result.Entries, width, cfg.ColumnsFor(dir))

	render.Header(out, dir, result.Branch)
	render.Listing(out, grid)
	return nil
}
