package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/masmgr/commitgraph-go/internal/output"
)

func writeGraphReport(c *cli.Context, report *output.GraphReport) error {
	opts := OutputOptions(c)
	writer := output.NewGraphReportWriter(opts.Format)
	return writer.Write(report, opts)
}

func writeChangesReport(c *cli.Context, report *output.ChangesReport) error {
	opts := OutputOptions(c)
	writer := output.NewChangesReportWriter(opts.Format)
	return writer.Write(report, opts)
}
