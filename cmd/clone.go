package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

// CloneCmd returns the clone command.
func CloneCmd() *cli.Command {
	return &cli.Command{
		Name:      "clone",
		Usage:     "Clone a remote repository",
		ArgsUsage: "<url> <dest>",
		Action:    cloneAction,
	}
}

func cloneAction(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("clone requires <url> and <dest>")
	}

	cmdCtx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	msg, err := cmdCtx.Service.CloneRepo(c.Context, c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintln(c.App.Writer, msg)
	return nil
}
