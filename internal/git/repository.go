package git

import (
	"encoding/hex"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/masmgr/commitgraph-go/internal/graph"
)

// maxPeelDepth bounds tag-to-tag chains followed while peeling.
const maxPeelDepth = 16

// errNotCommit is returned when a reference does not lead to a commit.
var errNotCommit = errors.New("object is not a commit")

// Repository provides graph-oriented access to a Git repository.
type Repository struct {
	repo *gogit.Repository
}

// Open opens the repository at path. The path must be the repository root;
// parent directories are not searched.
func Open(path string) (*Repository, error) {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", path, err)
	}
	return &Repository{repo: repo}, nil
}

// NewRepository wraps an already opened go-git repository.
func NewRepository(repo *gogit.Repository) *Repository {
	return &Repository{repo: repo}
}

// Refs enumerates all references except HEAD. Symbolic references and
// references that do not lead to a commit are returned with an empty Target.
func (r *Repository) Refs() ([]graph.RawRef, error) {
	iter, err := r.repo.References()
	if err != nil {
		return nil, fmt.Errorf("list references: %w", err)
	}
	defer iter.Close()

	var refs []graph.RawRef
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name()
		if name == plumbing.HEAD {
			return nil
		}

		raw := graph.RawRef{
			Name:     name.String(),
			IsBranch: name.IsBranch(),
			IsTag:    name.IsTag(),
			IsRemote: name.IsRemote(),
		}
		if ref.Type() == plumbing.HashReference {
			if target, err := r.peelToCommit(ref.Hash()); err == nil {
				raw.Target = target.String()
			}
		}

		refs = append(refs, raw)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list references: %w", err)
	}

	return refs, nil
}

// Head returns the commit HEAD points at.
func (r *Repository) Head() (string, bool, error) {
	head, err := r.repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("resolve HEAD: %w", err)
	}
	return head.Hash().String(), true, nil
}

// peelToCommit follows annotated tags until a commit is reached.
func (r *Repository) peelToCommit(h plumbing.Hash) (plumbing.Hash, error) {
	for i := 0; i < maxPeelDepth; i++ {
		obj, err := r.repo.Object(plumbing.AnyObject, h)
		if err != nil {
			return plumbing.ZeroHash, err
		}

		switch o := obj.(type) {
		case *object.Commit:
			return o.Hash, nil
		case *object.Tag:
			h = o.Target
		default:
			return plumbing.ZeroHash, fmt.Errorf("%s: %w", h, errNotCommit)
		}
	}
	return plumbing.ZeroHash, fmt.Errorf("%s: tag chain too deep", h)
}

// commit looks up a commit by its full hex id.
func (r *Repository) commit(id string) (*object.Commit, error) {
	if !isHexID(id) {
		return nil, fmt.Errorf("invalid commit id %q", id)
	}
	c, err := r.repo.CommitObject(plumbing.NewHash(id))
	if err != nil {
		return nil, fmt.Errorf("commit %s: %w", id, err)
	}
	return c, nil
}

// isHexID reports whether s is a full SHA-1 or SHA-256 hex id.
func isHexID(s string) bool {
	if len(s) != 40 && len(s) != 64 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

func toGraphCommit(c *object.Commit) graph.Commit {
	parents := make([]string, len(c.ParentHashes))
	for i, p := range c.ParentHashes {
		parents[i] = p.String()
	}
	return graph.Commit{
		ID:          c.Hash.String(),
		ParentIDs:   parents,
		AuthorName:  c.Author.Name,
		AuthorEmail: c.Author.Email,
		Timestamp:   c.Committer.When.Unix(),
		Message:     c.Message,
	}
}
