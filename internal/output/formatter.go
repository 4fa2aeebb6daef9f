package output

import (
	"time"

	"github.com/masmgr/commitgraph-go/internal/git"
	"github.com/masmgr/commitgraph-go/internal/graph"
)

// Compile-time interface conformance checks.
// These ensure that all writer types correctly implement their respective interfaces.
var (
	// GraphReportWriter implementations
	_ GraphReportWriter = (*ConsoleGraphWriter)(nil)
	_ GraphReportWriter = (*JSONGraphWriter)(nil)
	_ GraphReportWriter = (*CSVGraphWriter)(nil)
	_ GraphReportWriter = (*MarkdownGraphWriter)(nil)
	_ GraphReportWriter = (*CIGraphWriter)(nil)

	// ChangesReportWriter implementations
	_ ChangesReportWriter = (*ConsoleChangesWriter)(nil)
	_ ChangesReportWriter = (*JSONChangesWriter)(nil)
	_ ChangesReportWriter = (*CSVChangesWriter)(nil)
	_ ChangesReportWriter = (*MarkdownChangesWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
	FormatCI       OutputFormat = "ci"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string
}

// GraphReport holds a simplified commit graph.
type GraphReport struct {
	RepoPath    string
	Window      int
	GeneratedAt time.Time
	Commits     []graph.ReducedCommit
}

// ChangesReport holds the file changes of one commit, or between two commits
// when From is set.
type ChangesReport struct {
	RepoPath    string
	From        string
	To          string
	GeneratedAt time.Time
	Changes     []git.FileChange
}

// GraphReportWriter writes commit graph reports.
type GraphReportWriter interface {
	Write(report *GraphReport, options OutputOptions) error
}

// ChangesReportWriter writes file change reports.
type ChangesReportWriter interface {
	Write(report *ChangesReport, options OutputOptions) error
}

// NewGraphReportWriter creates a report writer for the specified format.
func NewGraphReportWriter(format OutputFormat) GraphReportWriter {
	switch format {
	case FormatJSON:
		return &JSONGraphWriter{}
	case FormatCSV:
		return &CSVGraphWriter{}
	case FormatMarkdown:
		return &MarkdownGraphWriter{}
	case FormatCI:
		return &CIGraphWriter{}
	default:
		return &ConsoleGraphWriter{}
	}
}

// NewChangesReportWriter creates a changes report writer for the specified format.
func NewChangesReportWriter(format OutputFormat) ChangesReportWriter {
	switch format {
	case FormatJSON:
		return &JSONChangesWriter{}
	case FormatCSV:
		return &CSVChangesWriter{}
	case FormatMarkdown:
		return &MarkdownChangesWriter{}
	default:
		return &ConsoleChangesWriter{}
	}
}
