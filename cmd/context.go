package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/commitgraph-go/config"
	"github.com/masmgr/commitgraph-go/internal/history"
	"github.com/masmgr/commitgraph-go/internal/output"
)

// CommandContext holds common state for command execution.
// It encapsulates the shared setup logic across all commands.
type CommandContext struct {
	Config   *config.Config
	RepoPath string
	Logger   *slog.Logger
	Service  *history.Service
}

// NewCommandContext creates a context from CLI flags.
// It loads configuration, applies flag overrides and builds the history service.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	diffOpts, err := cfg.DiffOptions()
	if err != nil {
		return nil, fmt.Errorf("invalid diff configuration: %w", err)
	}

	logger := newLogger(c, slog.LevelWarn)
	return &CommandContext{
		Config:   cfg,
		RepoPath: c.String("repo"),
		Logger:   logger,
		Service:  history.NewService(cfg.Graph.WindowSize, diffOpts, logger),
	}, nil
}

// newLogger logs to stderr at level, or at debug level with --verbose.
func newLogger(c *cli.Context, level slog.Level) *slog.Logger {
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	var w io.Writer = os.Stderr
	if c.App != nil && c.App.ErrWriter != nil {
		w = c.App.ErrWriter
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// OutputOptions creates OutputOptions from CLI flags.
func OutputOptions(c *cli.Context) output.OutputOptions {
	return output.OutputOptions{
		Format:     getOutputFormat(c.String("format")),
		OutputPath: c.String("output"),
	}
}
