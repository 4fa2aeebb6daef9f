package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/masmgr/commitgraph-go/internal/git"
	"github.com/masmgr/commitgraph-go/internal/graph"
)

const (
	idMerge = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	idSide  = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	idRoot  = "cccccccccccccccccccccccccccccccccccccccc"
	idStub  = "dddddddddddddddddddddddddddddddddddddddd"
)

func sampleGraphReport() *GraphReport {
	return &GraphReport{
		RepoPath:    "/test/repo",
		Window:      2000,
		GeneratedAt: time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC),
		Commits: []graph.ReducedCommit{
			{
				Commit: graph.Commit{
					ID:          idMerge,
					ParentIDs:   []string{idRoot, idSide},
					AuthorName:  "Alice",
					AuthorEmail: "alice@example.com",
					Timestamp:   1767261600, // 2026-01-01T10:00:00Z
					Message:     "Merge branch 'side'\n\nDetails here\n",
				},
				Refs: []graph.RefAnnotation{
					{Name: "main", Kind: graph.RefKindBranch},
					{Name: "HEAD", Kind: graph.RefKindHead},
				},
			},
			{
				Commit: graph.Commit{
					ID:          idSide,
					ParentIDs:   []string{idStub},
					AuthorName:  "Bob",
					AuthorEmail: "bob@example.com",
					Timestamp:   1767258000,
					Message:     "side work",
				},
				Refs: []graph.RefAnnotation{{Name: "origin/side", Kind: graph.RefKindRemote}},
			},
			{
				Commit: graph.Commit{
					ID:          idRoot,
					AuthorName:  "Alice",
					AuthorEmail: "alice@example.com",
					Timestamp:   1767254400,
					Message:     "initial",
				},
			},
		},
	}
}

func sampleChangesReport(from string) *ChangesReport {
	return &ChangesReport{
		RepoPath:    "/test/repo",
		From:        from,
		To:          idMerge,
		GeneratedAt: time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC),
		Changes: []git.FileChange{
			{Path: "main.go", Kind: git.ChangeKindModified},
			{Path: "new.go", Kind: git.ChangeKindAdded},
			{Path: "b.go", OldPath: "a.go", Kind: git.ChangeKindRenamed},
		},
	}
}

func outputPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	return string(data)
}
