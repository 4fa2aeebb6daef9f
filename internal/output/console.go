package output

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/masmgr/commitgraph-go/internal/git"
	"github.com/masmgr/commitgraph-go/internal/graph"
)

// ConsoleGraphWriter writes commit graph reports to the console.
type ConsoleGraphWriter struct{}

// Write outputs the commit graph report to the console.
func (w *ConsoleGraphWriter) Write(report *GraphReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	stubs := stubSet(report.Commits)

	color.New(color.FgGreen).Fprintln(out, "Commit Graph")
	fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	fmt.Fprintf(out, "Window: %d\n", report.Window)
	fmt.Fprintf(out, "Commits shown: %d, truncated ancestors: %d\n\n", len(report.Commits), len(stubs))

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	// Write header
	fmt.Fprintln(tw, "SHA\tParents\tDate\tAuthor\tRefs\tMessage")

	// Write rows
	for _, c := range report.Commits {
		parents := make([]string, len(c.ParentIDs))
		for i, p := range c.ParentIDs {
			parents[i] = shortID(p)
			if stubs[p] {
				parents[i] += "~"
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			color.New(color.FgYellow).Sprint(shortID(c.ID)),
			strings.Join(parents, " "),
			formatTimestamp(c.Timestamp),
			c.AuthorName,
			colorRefs(c.Refs),
			truncateMessage(subject(c.Message), 50),
		)
	}

	tw.Flush()

	if len(stubs) > 0 {
		fmt.Fprintln(out, "\n~ parent lies outside the walked window")
	}

	return nil
}

// ConsoleChangesWriter writes file change reports to the console.
type ConsoleChangesWriter struct{}

// Write outputs the file change report to the console.
func (w *ConsoleChangesWriter) Write(report *ChangesReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	if report.From != "" {
		color.New(color.FgGreen).Fprintf(out, "Changes %s..%s\n", shortID(report.From), shortID(report.To))
	} else {
		color.New(color.FgGreen).Fprintf(out, "Changes in %s\n", shortID(report.To))
	}
	fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	fmt.Fprintf(out, "Files changed: %d\n\n", len(report.Changes))

	if len(report.Changes) == 0 {
		fmt.Fprintln(out, "No file changes.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Status\tPath")
	for _, c := range report.Changes {
		path := c.Path
		if c.OldPath != "" {
			path = c.OldPath + " -> " + c.Path
		}
		fmt.Fprintf(tw, "%s\t%s\n", statusColor(c.Kind).Sprint(c.Kind.String()), path)
	}
	tw.Flush()

	return nil
}

// Helper functions

func truncateMessage(msg string, maxLen int) string {
	if len(msg) <= maxLen {
		return msg
	}
	return msg[:maxLen-3] + "..."
}

func colorRefs(refs []graph.RefAnnotation) string {
	parts := make([]string, len(refs))
	for i, r := range refs {
		parts[i] = refColor(r.Kind).Sprint(r.Name)
	}
	return strings.Join(parts, ", ")
}

func refColor(kind graph.RefKind) *color.Color {
	switch kind {
	case graph.RefKindHead:
		return color.New(color.FgCyan, color.Bold)
	case graph.RefKindBranch:
		return color.New(color.FgGreen)
	case graph.RefKindRemote:
		return color.New(color.FgRed)
	case graph.RefKindTag:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgWhite)
	}
}

func statusColor(kind git.ChangeKind) *color.Color {
	switch kind {
	case git.ChangeKindAdded:
		return color.New(color.FgGreen)
	case git.ChangeKindDeleted:
		return color.New(color.FgRed)
	case git.ChangeKindRenamed, git.ChangeKindTypechange:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgYellow)
	}
}
