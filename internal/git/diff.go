package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"
)

// CommitChanges diffs a commit against its first parent, or against the
// empty tree for a root commit.
func (r *Repository) CommitChanges(ctx context.Context, id string, opts DiffOptions) ([]FileChange, error) {
	c, err := r.commit(id)
	if err != nil {
		return nil, err
	}

	tree, err := c.Tree()
	if err != nil {
		return nil, fmt.Errorf("tree of %s: %w", id, err)
	}

	var parentTree *object.Tree
	if c.NumParents() > 0 {
		parent, err := c.Parent(0)
		if err != nil {
			return nil, fmt.Errorf("first parent of %s: %w", id, err)
		}
		parentTree, err = parent.Tree()
		if err != nil {
			return nil, fmt.Errorf("tree of %s: %w", parent.Hash, err)
		}
	}

	return diffTrees(ctx, parentTree, tree, opts)
}

// Compare diffs the snapshots of two commits directly, without
// looking for a common ancestor.
func (r *Repository) Compare(ctx context.Context, from, to string, opts DiffOptions) ([]FileChange, error) {
	fromCommit, err := r.commit(from)
	if err != nil {
		return nil, err
	}
	toCommit, err := r.commit(to)
	if err != nil {
		return nil, err
	}

	fromTree, err := fromCommit.Tree()
	if err != nil {
		return nil, fmt.Errorf("tree of %s: %w", from, err)
	}
	toTree, err := toCommit.Tree()
	if err != nil {
		return nil, fmt.Errorf("tree of %s: %w", to, err)
	}

	return diffTrees(ctx, fromTree, toTree, opts)
}

// diffTrees lists changes from a to b. A nil tree is treated as empty.
func diffTrees(ctx context.Context, a, b *object.Tree, opts DiffOptions) ([]FileChange, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	changes, err := object.DiffTreeWithOptions(ctx, a, b, opts.treeOptions())
	if err != nil {
		return nil, fmt.Errorf("diff trees: %w", err)
	}

	result := make([]FileChange, 0, len(changes))
	for _, change := range changes {
		fc, err := toFileChange(change)
		if err != nil {
			return nil, err
		}
		if fc.Path == "" || !opts.matchesFilters(fc.Path) {
			continue
		}
		result = append(result, fc)
	}

	return result, nil
}

func toFileChange(change *object.Change) (FileChange, error) {
	action, err := change.Action()
	if err != nil {
		return FileChange{}, fmt.Errorf("classify change: %w", err)
	}

	from, to := change.From, change.To

	switch action {
	case merkletrie.Insert:
		return FileChange{Path: to.Name, Kind: ChangeKindAdded}, nil
	case merkletrie.Delete:
		return FileChange{Path: from.Name, Kind: ChangeKindDeleted}, nil
	}

	switch {
	case from.Name != to.Name:
		return FileChange{Path: to.Name, OldPath: from.Name, Kind: ChangeKindRenamed}, nil
	case isTypeChange(from.TreeEntry.Mode, to.TreeEntry.Mode):
		return FileChange{Path: to.Name, Kind: ChangeKindTypechange}, nil
	default:
		return FileChange{Path: to.Name, Kind: ChangeKindModified}, nil
	}
}

func (o DiffOptions) treeOptions() *object.DiffTreeOptions {
	switch o.RenameDetect {
	case RenameDetectSimple:
		return &object.DiffTreeOptions{DetectRenames: true, OnlyExactRenames: true}
	case RenameDetectAggressive:
		// go-git's default similarity threshold (60).
		opts := *object.DefaultDiffTreeOptions
		return &opts
	default:
		return &object.DiffTreeOptions{}
	}
}

func (o DiffOptions) validate() error {
	for _, pattern := range append(append([]string(nil), o.Include...), o.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid glob pattern %q", pattern)
		}
	}
	return nil
}

// matchesFilters checks if a path matches the include/exclude filters.
func (o DiffOptions) matchesFilters(path string) bool {
	// Normalize path separators
	path = strings.ReplaceAll(path, "\\", "/")

	// Check exclude patterns first
	for _, pattern := range o.Exclude {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return false
		}
	}

	// If no include patterns, accept all
	if len(o.Include) == 0 {
		return true
	}

	for _, pattern := range o.Include {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return true
		}
	}

	return false
}

// ParseCompareSpec splits "base..head" (or "base...head") into its two commits.
// Both forms compare snapshots directly; no merge base is computed.
func ParseCompareSpec(spec string) (from, to string, err error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return "", "", fmt.Errorf("empty compare spec")
	}

	if idx := strings.Index(spec, "..."); idx != -1 {
		from, to = spec[:idx], spec[idx+3:]
	} else if idx := strings.Index(spec, ".."); idx != -1 {
		from, to = spec[:idx], spec[idx+2:]
	} else {
		return "", "", fmt.Errorf("invalid compare spec %q: expected 'from..to'", spec)
	}

	if from == "" {
		return "", "", fmt.Errorf("invalid compare spec %q: missing from commit", spec)
	}
	if to == "" {
		return "", "", fmt.Errorf("invalid compare spec %q: missing to commit", spec)
	}

	return from, to, nil
}
