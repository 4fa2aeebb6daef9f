package git

import (
	"testing"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
)

// fixture is an in-memory repository with a worktree.
type fixture struct {
	t    *testing.T
	repo *gogit.Repository
	wt   *gogit.Worktree
	fs   billy.Filesystem
	now  time.Time
	tick int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	fs := memfs.New()
	repo, err := gogit.Init(memory.NewStorage(), fs)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}

	return &fixture{
		t:    t,
		repo: repo,
		wt:   wt,
		fs:   fs,
		now:  time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fixture) write(path, content string) {
	f.t.Helper()
	file, err := f.fs.Create(path)
	if err != nil {
		f.t.Fatalf("Create(%s): %v", path, err)
	}
	if _, err := file.Write([]byte(content)); err != nil {
		f.t.Fatalf("Write(%s): %v", path, err)
	}
	if err := file.Close(); err != nil {
		f.t.Fatalf("Close(%s): %v", path, err)
	}
	if _, err := f.wt.Add(path); err != nil {
		f.t.Fatalf("Add(%s): %v", path, err)
	}
}

func (f *fixture) remove(path string) {
	f.t.Helper()
	if _, err := f.wt.Remove(path); err != nil {
		f.t.Fatalf("Remove(%s): %v", path, err)
	}
}

// commit records the staged changes one minute after the previous commit.
func (f *fixture) commit(msg string, parents ...plumbing.Hash) plumbing.Hash {
	f.t.Helper()
	f.tick++
	sig := &object.Signature{
		Name:  "Test Author",
		Email: "test@example.com",
		When:  f.now.Add(time.Duration(f.tick) * time.Minute),
	}
	h, err := f.wt.Commit(msg, &gogit.CommitOptions{
		Author:            sig,
		Committer:         sig,
		Parents:           parents,
		AllowEmptyCommits: true,
	})
	if err != nil {
		f.t.Fatalf("Commit(%s): %v", msg, err)
	}
	return h
}

func (f *fixture) branch(name string, create bool) {
	f.t.Helper()
	if err := f.wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
		Create: create,
	}); err != nil {
		f.t.Fatalf("Checkout(%s): %v", name, err)
	}
}

func (f *fixture) setRef(name string, h plumbing.Hash) {
	f.t.Helper()
	if err := f.repo.Storer.SetReference(plumbing.NewHashReference(plumbing.ReferenceName(name), h)); err != nil {
		f.t.Fatalf("SetReference(%s): %v", name, err)
	}
}

func (f *fixture) head() *plumbing.Reference {
	f.t.Helper()
	ref, err := f.repo.Head()
	if err != nil {
		f.t.Fatalf("Head: %v", err)
	}
	return ref
}

func (f *fixture) repository() *Repository {
	return NewRepository(f.repo)
}
