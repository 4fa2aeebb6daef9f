package output

import (
	"fmt"
	"strings"

	"github.com/masmgr/commitgraph-go/internal/graph"
)

// MarkdownGraphWriter writes commit graph reports as Markdown.
type MarkdownGraphWriter struct{}

// Write outputs the commit graph report as Markdown.
func (w *MarkdownGraphWriter) Write(report *GraphReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	stubs := stubSet(report.Commits)

	// Header
	fmt.Fprintln(out, "# Commit Graph")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	fmt.Fprintf(out, "**Window:** %d\n\n", report.Window)
	fmt.Fprintf(out, "**Commits Shown:** %d\n\n", len(report.Commits))

	// Table header
	fmt.Fprintln(out, "| SHA | Parents | Date | Author | Refs | Message |")
	fmt.Fprintln(out, "|-----|---------|------|--------|------|---------|")

	// Table rows
	for _, c := range report.Commits {
		parents := make([]string, len(c.ParentIDs))
		for i, p := range c.ParentIDs {
			parents[i] = "`" + shortID(p) + "`"
			if stubs[p] {
				parents[i] += "…"
			}
		}
		fmt.Fprintf(out, "| `%s` | %s | %s | %s | %s | %s |\n",
			shortID(c.ID),
			strings.Join(parents, " "),
			formatTimestamp(c.Timestamp),
			escapeMarkdown(c.AuthorName),
			escapeMarkdown(refNames(c.Refs)),
			escapeMarkdown(subject(c.Message)))
	}

	if len(stubs) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "**Truncated Ancestors:** %s\n", strings.Join(shortIDs(graph.Stubs(report.Commits)), ", "))
	}

	return nil
}

// MarkdownChangesWriter writes file change reports as Markdown.
type MarkdownChangesWriter struct{}

// Write outputs the file change report as Markdown.
func (w *MarkdownChangesWriter) Write(report *ChangesReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	if report.From != "" {
		fmt.Fprintf(out, "# Changes `%s..%s`\n", shortID(report.From), shortID(report.To))
	} else {
		fmt.Fprintf(out, "# Changes in `%s`\n", shortID(report.To))
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	fmt.Fprintf(out, "**Files Changed:** %d\n\n", len(report.Changes))

	fmt.Fprintln(out, "| Status | Path |")
	fmt.Fprintln(out, "|--------|------|")
	for _, c := range report.Changes {
		path := "`" + c.Path + "`"
		if c.OldPath != "" {
			path = "`" + c.OldPath + "` → " + path
		}
		fmt.Fprintf(out, "| %s | %s |\n", c.Kind.String(), path)
	}

	return nil
}

func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"|", "\\|",
		"*", "\\*",
		"_", "\\_",
		"`", "\\`",
	)
	return replacer.Replace(s)
}
