package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/commitgraph-go/config"
	"github.com/masmgr/commitgraph-go/internal/git"
	"github.com/masmgr/commitgraph-go/internal/output"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "commitgraph",
		Usage:   "Simplified commit graphs for Git repositories",
		Version: "1.0.0",
		Commands: []*cli.Command{
			GraphCmd(),
			CheckoutCmd(),
			ChangesCmd(),
			CompareCmd(),
			CloneCmd(),
			ServeCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log debug details to stderr",
			},
		},
	}
}

func repoFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "repo",
		Aliases: []string{"r"},
		Usage:   "Path to Git repository",
		Value:   ".",
	}
}

// Output flags shared by report commands
func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json, csv, markdown, ci)",
			Value:   "console",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
	}
}

// Diff flags shared by changes and compare
func diffFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "rename-detect",
			Usage: "Rename detection mode (off, simple, aggressive); overrides config",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns to include (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns to exclude (can be specified multiple times)",
		},
	}
}

// parseRenameDetectFlag parses the rename detection flag.
func parseRenameDetectFlag(s string) (git.RenameDetectMode, error) {
	mode, err := git.ParseRenameDetectMode(s)
	if err != nil {
		return git.RenameDetectOff, fmt.Errorf("invalid --rename-detect: %w", err)
	}
	return mode, nil
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch s {
	case "json":
		return output.FormatJSON
	case "csv":
		return output.FormatCSV
	case "markdown", "md":
		return output.FormatMarkdown
	case "ci", "ndjson":
		return output.FormatCI
	default:
		return output.FormatConsole
	}
}

// loadConfig loads configuration from file or defaults and applies CLI overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply overrides from CLI
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}
	if c.IsSet("rename-detect") {
		if _, err := parseRenameDetectFlag(c.String("rename-detect")); err != nil {
			return nil, err
		}
		cfg.Diff.RenameDetect = c.String("rename-detect")
	}
	if window := c.Int("window"); window > 0 {
		cfg.Graph.WindowSize = window
	}
	if addr := c.String("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	return cfg, nil
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
