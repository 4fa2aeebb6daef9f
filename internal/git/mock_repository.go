package git

import (
	"context"

	"github.com/masmgr/commitgraph-go/internal/graph"
)

// MockRepository is a test double for Repository.
// It allows tests to provide predefined history without needing a real Git repository.
type MockRepository struct {
	RawRefs    []graph.RawRef
	HeadID     string
	Commits    []graph.Commit
	Changes    map[string][]FileChange // Keyed by commit id, or "from..to" for Compare
	CheckedOut []string
	Error      error
}

// Refs returns the predefined references or error.
func (m *MockRepository) Refs() ([]graph.RawRef, error) {
	return m.RawRefs, m.Error
}

// Head returns the predefined HEAD target.
func (m *MockRepository) Head() (string, bool, error) {
	return m.HeadID, m.HeadID != "", m.Error
}

// Walk returns at most limit predefined commits.
func (m *MockRepository) Walk(_ context.Context, limit int) ([]graph.Commit, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	if limit <= 0 {
		limit = graph.DefaultWindow
	}
	if len(m.Commits) > limit {
		return m.Commits[:limit], nil
	}
	return m.Commits, nil
}

// CommitChanges returns the predefined changes for id.
func (m *MockRepository) CommitChanges(_ context.Context, id string, _ DiffOptions) ([]FileChange, error) {
	return m.Changes[id], m.Error
}

// Compare returns the predefined changes for "from..to".
func (m *MockRepository) Compare(_ context.Context, from, to string, _ DiffOptions) ([]FileChange, error) {
	return m.Changes[from+".."+to], m.Error
}

// Checkout records name, or fails with the predefined error.
func (m *MockRepository) Checkout(name string) error {
	if m.Error != nil {
		return m.Error
	}
	m.CheckedOut = append(m.CheckedOut, name)
	return nil
}

// Compile-time interface conformance check.
var _ RepositoryAccess = (*MockRepository)(nil)
