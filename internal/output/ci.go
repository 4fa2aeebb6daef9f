package output

import (
	"encoding/json"
	"fmt"

	"github.com/masmgr/commitgraph-go/internal/graph"
)

// CIGraphWriter writes commit graph reports as NDJSON (one JSON object per line) for CI pipelines.
type CIGraphWriter struct{}

// CISummary is the first line of CI output, containing aggregate statistics.
type CISummary struct {
	Type         string `json:"type"`
	TotalCommits int    `json:"totalCommits"`
	MergeCount   int    `json:"mergeCount"`
	RootCount    int    `json:"rootCount"`
	RefCount     int    `json:"refCount"`
	StubCount    int    `json:"stubCount"`
}

// CICommitEntry represents a single commit in CI output.
type CICommitEntry struct {
	Type string `json:"type"`
	CommitJSON
}

// Write outputs the commit graph report as NDJSON.
func (w *CIGraphWriter) Write(report *GraphReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	summary := CISummary{
		Type:         "summary",
		TotalCommits: len(report.Commits),
		StubCount:    len(graph.Stubs(report.Commits)),
	}
	for _, c := range report.Commits {
		if c.IsMerge() {
			summary.MergeCount++
		}
		if c.IsRoot() {
			summary.RootCount++
		}
		summary.RefCount += len(c.Refs)
	}

	enc := json.NewEncoder(out)
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("failed to encode CI summary: %w", err)
	}

	for _, c := range NewCommitJSON(report.Commits) {
		if err := enc.Encode(CICommitEntry{Type: "commit", CommitJSON: c}); err != nil {
			return fmt.Errorf("failed to encode CI entry: %w", err)
		}
	}

	return nil
}
