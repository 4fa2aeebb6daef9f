package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/masmgr/commitgraph-go/internal/git"
	"github.com/masmgr/commitgraph-go/internal/graph"
)

// CommitJSON is the wire form of a reduced commit consumed by graph clients.
type CommitJSON struct {
	OID     string    `json:"oid"`
	Parents []string  `json:"parents"`
	Author  string    `json:"author"`
	Email   string    `json:"email"`
	Date    int64     `json:"date"`
	Message string    `json:"message"`
	Refs    []RefJSON `json:"refs"`
}

// RefJSON is the wire form of a reference annotation.
type RefJSON struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// FileChangeJSON is the wire form of a file change.
type FileChangeJSON struct {
	Path    string `json:"path"`
	Status  string `json:"status"`
	OldPath string `json:"oldPath,omitempty"`
}

// NewCommitJSON converts reduced commits to their wire form.
// Slices are never nil so clients always see arrays.
func NewCommitJSON(commits []graph.ReducedCommit) []CommitJSON {
	out := make([]CommitJSON, len(commits))
	for i, c := range commits {
		refs := make([]RefJSON, len(c.Refs))
		for j, r := range c.Refs {
			refs[j] = RefJSON{Name: r.Name, Kind: string(r.Kind)}
		}
		parents := c.ParentIDs
		if parents == nil {
			parents = []string{}
		}
		out[i] = CommitJSON{
			OID:     c.ID,
			Parents: parents,
			Author:  c.AuthorName,
			Email:   c.AuthorEmail,
			Date:    c.Timestamp,
			Message: c.Message,
			Refs:    refs,
		}
	}
	return out
}

// NewFileChangeJSON converts file changes to their wire form.
func NewFileChangeJSON(changes []git.FileChange) []FileChangeJSON {
	out := make([]FileChangeJSON, len(changes))
	for i, c := range changes {
		out[i] = FileChangeJSON{Path: c.Path, Status: c.Kind.String(), OldPath: c.OldPath}
	}
	return out
}

// JSONGraphWriter writes commit graph reports as JSON.
type JSONGraphWriter struct{}

// JSONGraphReport is the JSON output structure for a commit graph.
type JSONGraphReport struct {
	RepoPath     string       `json:"repo"`
	Window       int          `json:"window"`
	GeneratedAt  string       `json:"generatedAt"`
	TotalCommits int          `json:"totalCommits"`
	Stubs        []string     `json:"stubs"`
	Commits      []CommitJSON `json:"commits"`
}

// Write outputs the commit graph report as JSON.
func (w *JSONGraphWriter) Write(report *GraphReport, options OutputOptions) error {
	stubs := graph.Stubs(report.Commits)
	if stubs == nil {
		stubs = []string{}
	}

	jsonReport := JSONGraphReport{
		RepoPath:     report.RepoPath,
		Window:       report.Window,
		GeneratedAt:  report.GeneratedAt.Format(time.RFC3339),
		TotalCommits: len(report.Commits),
		Stubs:        stubs,
		Commits:      NewCommitJSON(report.Commits),
	}

	return writeJSON(jsonReport, options.OutputPath)
}

// JSONChangesWriter writes file change reports as JSON.
type JSONChangesWriter struct{}

// JSONChangesReport is the JSON output structure for file changes.
type JSONChangesReport struct {
	RepoPath     string           `json:"repo"`
	From         string           `json:"from,omitempty"`
	To           string           `json:"to"`
	GeneratedAt  string           `json:"generatedAt"`
	TotalChanges int              `json:"totalChanges"`
	Changes      []FileChangeJSON `json:"changes"`
}

// Write outputs the file change report as JSON.
func (w *JSONChangesWriter) Write(report *ChangesReport, options OutputOptions) error {
	jsonReport := JSONChangesReport{
		RepoPath:     report.RepoPath,
		From:         report.From,
		To:           report.To,
		GeneratedAt:  report.GeneratedAt.Format(time.RFC3339),
		TotalChanges: len(report.Changes),
		Changes:      NewFileChangeJSON(report.Changes),
	}

	return writeJSON(jsonReport, options.OutputPath)
}

func writeJSON(data interface{}, outputPath string) error {
	encoder := json.NewEncoder(os.Stdout)
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		encoder = json.NewEncoder(file)
	}

	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
