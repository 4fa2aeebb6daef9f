package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/commitgraph-go/internal/output"
)

// GraphCmd returns the graph command.
func GraphCmd() *cli.Command {
	flags := append([]cli.Flag{
		repoFlag(),
		&cli.IntFlag{
			Name:    "window",
			Aliases: []string{"w"},
			Usage:   "Number of most recent commits to walk (default from config: 2000)",
		},
	}, outputFlags()...)

	return &cli.Command{
		Name:    "graph",
		Aliases: []string{"g"},
		Usage:   "Print the simplified commit graph of all branches, tags and HEAD",
		Flags:   flags,
		Action:  graphAction,
	}
}

func graphAction(c *cli.Context) error {
	cmdCtx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	commits, err := cmdCtx.Service.GetCommits(c.Context, cmdCtx.RepoPath)
	if err != nil {
		return fmt.Errorf("failed to read commit graph: %w", err)
	}

	report := &output.GraphReport{
		RepoPath:    cmdCtx.RepoPath,
		Window:      cmdCtx.Config.Graph.WindowSize,
		GeneratedAt: time.Now(),
		Commits:     commits,
	}

	return writeGraphReport(c, report)
}
