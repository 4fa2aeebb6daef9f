package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/commitgraph-go/internal/git"
	"github.com/masmgr/commitgraph-go/internal/output"
)

// ChangesCmd returns the changes command.
func ChangesCmd() *cli.Command {
	flags := append(append([]cli.Flag{repoFlag()}, diffFlags()...), outputFlags()...)

	return &cli.Command{
		Name:      "changes",
		Usage:     "List the files a commit changed relative to its first parent",
		ArgsUsage: "<commit>",
		Flags:     flags,
		Action:    changesAction,
	}
}

func changesAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("changes requires exactly one commit id")
	}
	id := c.Args().First()

	cmdCtx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	changes, err := cmdCtx.Service.GetCommitChanges(c.Context, cmdCtx.RepoPath, id)
	if err != nil {
		return fmt.Errorf("failed to list changes: %w", err)
	}

	return writeChangesReport(c, &output.ChangesReport{
		RepoPath:    cmdCtx.RepoPath,
		To:          id,
		GeneratedAt: time.Now(),
		Changes:     changes,
	})
}

// CompareCmd returns the compare command.
func CompareCmd() *cli.Command {
	flags := append(append([]cli.Flag{repoFlag()}, diffFlags()...), outputFlags()...)

	return &cli.Command{
		Name:      "compare",
		Aliases:   []string{"diff"},
		Usage:     "List the differences between two commit snapshots",
		ArgsUsage: "<from> <to> | <from>..<to>",
		Flags:     flags,
		Action:    compareAction,
	}
}

// compareArgs accepts either two positional commits or a single range spec.
func compareArgs(args cli.Args) (from, to string, err error) {
	switch args.Len() {
	case 1:
		return git.ParseCompareSpec(args.First())
	case 2:
		return args.Get(0), args.Get(1), nil
	default:
		return "", "", fmt.Errorf("compare requires <from> <to> or <from>..<to>")
	}
}

func compareAction(c *cli.Context) error {
	from, to, err := compareArgs(c.Args())
	if err != nil {
		return err
	}

	cmdCtx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	changes, err := cmdCtx.Service.CompareCommits(c.Context, cmdCtx.RepoPath, from, to)
	if err != nil {
		return fmt.Errorf("failed to compare commits: %w", err)
	}

	return writeChangesReport(c, &output.ChangesReport{
		RepoPath:    cmdCtx.RepoPath,
		From:        from,
		To:          to,
		GeneratedAt: time.Now(),
		Changes:     changes,
	})
}
