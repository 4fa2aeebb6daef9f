package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ReferenceNotFoundError is returned when a name resolves to neither a
// reference nor a commit.
type ReferenceNotFoundError struct {
	Name string
}

func (e *ReferenceNotFoundError) Error() string {
	return "Reference not found: " + e.Name
}

// refLookupRules mirrors the order in which git expands a short ref name.
var refLookupRules = []string{
	"%s",
	"refs/%s",
	"refs/tags/%s",
	"refs/heads/%s",
	"refs/remotes/%s",
	"refs/remotes/%s/HEAD",
}

// Checkout switches the worktree to name. A branch keeps HEAD symbolic;
// tags, remote-tracking branches and commit ids detach HEAD.
// Errors from the worktree are returned unchanged.
func (r *Repository) Checkout(name string) error {
	opts, err := r.checkoutTarget(name)
	if err != nil {
		return err
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return err
	}
	return wt.Checkout(opts)
}

func (r *Repository) checkoutTarget(name string) (*gogit.CheckoutOptions, error) {
	if name == "" {
		return nil, &ReferenceNotFoundError{Name: name}
	}
	if ref := r.findReference(name); ref != nil {
		if ref.Name().IsBranch() {
			return &gogit.CheckoutOptions{Branch: ref.Name()}, nil
		}
		h, err := r.peelToCommit(ref.Hash())
		if err != nil {
			return nil, fmt.Errorf("reference %s: %w", ref.Name(), err)
		}
		return &gogit.CheckoutOptions{Hash: h}, nil
	}

	h, err := r.repo.ResolveRevision(plumbing.Revision(name))
	if err != nil {
		return nil, &ReferenceNotFoundError{Name: name}
	}
	if _, err := r.repo.CommitObject(*h); err != nil {
		return nil, &ReferenceNotFoundError{Name: name}
	}
	return &gogit.CheckoutOptions{Hash: *h}, nil
}

// findReference resolves name as a symbolic or short reference name.
func (r *Repository) findReference(name string) *plumbing.Reference {
	for _, rule := range refLookupRules {
		// Malformed candidates are treated as misses.
		if ref, err := r.repo.Reference(plumbing.ReferenceName(fmt.Sprintf(rule, name)), true); err == nil {
			return ref
		}
	}
	return nil
}
