package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/masmgr/commitgraph-go/internal/graph"
)

// walkNode tracks a reachable commit and how many of its children
// have not been emitted yet.
type walkNode struct {
	commit  *object.Commit
	pending int
}

// Walk returns the commits reachable from branches, tags, remote-tracking
// refs and HEAD in topological order, newest committer time first among
// commits whose children were all emitted. At most limit commits are returned;
// limit <= 0 selects graph.DefaultWindow.
//
// Parents whose objects are missing (shallow clones) are not loaded, so their
// ids stay in ParentIDs as references outside the returned window.
func (r *Repository) Walk(ctx context.Context, limit int) ([]graph.Commit, error) {
	if limit <= 0 {
		limit = graph.DefaultWindow
	}

	seeds, err := r.walkSeeds()
	if err != nil {
		return nil, err
	}

	nodes, err := r.loadReachable(ctx, seeds)
	if err != nil {
		return nil, err
	}

	for _, n := range nodes {
		for _, p := range n.commit.ParentHashes {
			if parent, ok := nodes[p]; ok {
				parent.pending++
			}
		}
	}

	heap := binaryheap.NewWith(byCommitterTimeDesc)
	for _, n := range nodes {
		if n.pending == 0 {
			heap.Push(n)
		}
	}

	commits := make([]graph.Commit, 0, min(limit, len(nodes)))
	for len(commits) < limit {
		v, ok := heap.Pop()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n := v.(*walkNode)
		commits = append(commits, toGraphCommit(n.commit))

		for _, p := range n.commit.ParentHashes {
			parent, ok := nodes[p]
			if !ok {
				continue
			}
			parent.pending--
			if parent.pending == 0 {
				heap.Push(parent)
			}
		}
	}

	return commits, nil
}

// walkSeeds collects the commit tips of refs/heads, refs/tags, refs/remotes and HEAD.
func (r *Repository) walkSeeds() ([]plumbing.Hash, error) {
	iter, err := r.repo.References()
	if err != nil {
		return nil, fmt.Errorf("list references: %w", err)
	}
	defer iter.Close()

	var seeds []plumbing.Hash
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if ref.Type() != plumbing.HashReference {
			return nil
		}
		name := ref.Name()
		if !name.IsBranch() && !name.IsTag() && !name.IsRemote() {
			return nil
		}
		if h, err := r.peelToCommit(ref.Hash()); err == nil {
			seeds = append(seeds, h)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list references: %w", err)
	}

	if head, err := r.repo.Head(); err == nil {
		seeds = append(seeds, head.Hash())
	} else if !errors.Is(err, plumbing.ErrReferenceNotFound) {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}

	return seeds, nil
}

// loadReachable loads every commit reachable from seeds, deduplicated by hash.
func (r *Repository) loadReachable(ctx context.Context, seeds []plumbing.Hash) (map[plumbing.Hash]*walkNode, error) {
	nodes := make(map[plumbing.Hash]*walkNode)
	stack := append([]plumbing.Hash(nil), seeds...)

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := nodes[h]; ok {
			continue
		}

		c, err := r.repo.CommitObject(h)
		if errors.Is(err, plumbing.ErrObjectNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read commit %s: %w", h, err)
		}

		nodes[h] = &walkNode{commit: c}
		stack = append(stack, c.ParentHashes...)
	}

	return nodes, nil
}

// byCommitterTimeDesc orders the heap newest first, breaking ties by hash.
func byCommitterTimeDesc(a, b interface{}) int {
	ca := a.(*walkNode).commit
	cb := b.(*walkNode).commit

	switch {
	case ca.Committer.When.After(cb.Committer.When):
		return -1
	case ca.Committer.When.Before(cb.Committer.When):
		return 1
	default:
		return strings.Compare(ca.Hash.String(), cb.Hash.String())
	}
}
