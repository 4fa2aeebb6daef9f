// Package history composes repository access, ref indexing and graph
// simplification into the operations exposed by the CLI and the local API.
package history

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/masmgr/commitgraph-go/internal/git"
	"github.com/masmgr/commitgraph-go/internal/graph"
)

// Opener opens the repository at path.
type Opener func(path string) (git.RepositoryAccess, error)

// Cloner clones url into dest and returns a status message.
type Cloner func(ctx context.Context, url, dest string) (string, error)

// OpenRepository opens an on-disk repository with go-git.
func OpenRepository(path string) (git.RepositoryAccess, error) {
	repo, err := git.Open(path)
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// Service runs graph operations against a repository path.
// Every call opens the repository anew; nothing is kept between calls.
type Service struct {
	Open   Opener
	Clone  Cloner
	Window int
	Diff   git.DiffOptions
	Logger *slog.Logger
}

// NewService creates a Service backed by go-git.
func NewService(window int, diff git.DiffOptions, logger *slog.Logger) *Service {
	return &Service{
		Open:   OpenRepository,
		Clone:  git.Clone,
		Window: window,
		Diff:   diff,
		Logger: logger,
	}
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s.Logger
}

func (s *Service) window() int {
	if s.Window <= 0 {
		return graph.DefaultWindow
	}
	return s.Window
}

func (s *Service) open(path string) (git.RepositoryAccess, error) {
	if path == "" {
		return nil, fmt.Errorf("repository path is required")
	}
	open := s.Open
	if open == nil {
		open = OpenRepository
	}
	return open(path)
}

// GetCommits returns the simplified graph of the most recent commits
// reachable from all branches, tags, remote-tracking refs and HEAD.
func (s *Service) GetCommits(ctx context.Context, path string) ([]graph.ReducedCommit, error) {
	repo, err := s.open(path)
	if err != nil {
		return nil, err
	}

	refs, err := repo.Refs()
	if err != nil {
		return nil, err
	}
	headID, _, err := repo.Head()
	if err != nil {
		return nil, err
	}

	window := s.window()
	commits, err := repo.Walk(ctx, window)
	if err != nil {
		return nil, err
	}

	annotated := graph.IndexRefs(refs, headID).Annotate(commits)
	reduced := graph.NewSimplifier(window).Simplify(annotated)

	s.logger().Debug("graph simplified",
		"path", path,
		"refs", len(refs),
		"walked", len(commits),
		"reduced", len(reduced))

	return reduced, nil
}

// CheckoutRef switches the repository worktree to a ref or commit id.
func (s *Service) CheckoutRef(_ context.Context, path, ref string) error {
	repo, err := s.open(path)
	if err != nil {
		return err
	}
	if err := repo.Checkout(ref); err != nil {
		return err
	}
	s.logger().Info("checked out", "path", path, "ref", ref)
	return nil
}

// GetCommitChanges lists the files a commit changed relative to its first parent.
func (s *Service) GetCommitChanges(ctx context.Context, path, id string) ([]git.FileChange, error) {
	repo, err := s.open(path)
	if err != nil {
		return nil, err
	}
	return repo.CommitChanges(ctx, id, s.Diff)
}

// CompareCommits lists the differences between two commit snapshots.
func (s *Service) CompareCommits(ctx context.Context, path, from, to string) ([]git.FileChange, error) {
	repo, err := s.open(path)
	if err != nil {
		return nil, err
	}
	return repo.Compare(ctx, from, to, s.Diff)
}

// CloneRepo clones url into dest.
func (s *Service) CloneRepo(ctx context.Context, url, dest string) (string, error) {
	if url == "" || dest == "" {
		return "", fmt.Errorf("clone requires a url and a destination path")
	}
	clone := s.Clone
	if clone == nil {
		clone = git.Clone
	}
	msg, err := clone(ctx, url, dest)
	if err != nil {
		return "", err
	}
	s.logger().Info("cloned", "url", url, "dest", dest)
	return msg, nil
}
