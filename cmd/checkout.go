package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

// CheckoutCmd returns the checkout command.
func CheckoutCmd() *cli.Command {
	return &cli.Command{
		Name:      "checkout",
		Aliases:   []string{"co"},
		Usage:     "Check out a branch, tag, remote branch or commit id",
		ArgsUsage: "<ref-or-commit>",
		Flags:     []cli.Flag{repoFlag()},
		Action:    checkoutAction,
	}
}

func checkoutAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("checkout requires exactly one ref or commit id")
	}
	ref := c.Args().First()

	cmdCtx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	if err := cmdCtx.Service.CheckoutRef(c.Context, cmdCtx.RepoPath, ref); err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(c.App.Writer, "Checked out %s\n", ref)
	return nil
}
