package git

import (
	"context"

	"github.com/masmgr/commitgraph-go/internal/graph"
)

// RepositoryAccess defines the repository operations the graph service needs.
// This abstraction allows the service to be tested without a real repository.
type RepositoryAccess interface {
	// Refs enumerates every reference except HEAD.
	Refs() ([]graph.RawRef, error)
	// Head returns the commit HEAD resolves to; ok is false for an unborn HEAD.
	Head() (id string, ok bool, err error)
	// Walk returns up to limit commits reachable from all refs and HEAD,
	// each commit listed after all of its descendants.
	Walk(ctx context.Context, limit int) ([]graph.Commit, error)
	// CommitChanges diffs a commit against its first parent.
	CommitChanges(ctx context.Context, id string, opts DiffOptions) ([]FileChange, error)
	// Compare diffs the snapshots of two commits.
	Compare(ctx context.Context, from, to string, opts DiffOptions) ([]FileChange, error)
	// Checkout switches the worktree to a ref or commit.
	Checkout(name string) error
}

// Compile-time interface conformance check.
var _ RepositoryAccess = (*Repository)(nil)
