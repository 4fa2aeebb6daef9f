package graph

import "slices"

// Simplifier reduces a commit window to the commits needed to draw
// its branch and merge structure.
type Simplifier struct {
	Window int // Maximum commits considered; <= 0 means DefaultWindow
}

// NewSimplifier creates a simplifier for the given window size.
func NewSimplifier(window int) *Simplifier {
	return &Simplifier{Window: window}
}

func (s *Simplifier) window() int {
	if s == nil || s.Window <= 0 {
		return DefaultWindow
	}
	return s.Window
}

// Simplify keeps the interesting commits of a reverse-topologically ordered
// window and rewrites their parents to the nearest interesting ancestors.
//
// Ancestors are searched along first parents only. A search that leaves the
// window stops at the first unknown id, which is kept as an edge stub. When
// the window holds no interesting commit at all, it is returned unchanged.
func (s *Simplifier) Simplify(commits []AnnotatedCommit) []ReducedCommit {
	if limit := s.window(); len(commits) > limit {
		commits = commits[:limit]
	}

	commitMap := make(map[string]AnnotatedCommit, len(commits))
	for _, c := range commits {
		commitMap[c.ID] = c
	}

	var simplified []ReducedCommit
	for _, c := range commits {
		if !c.IsInteresting() {
			continue
		}

		parents := make([]string, 0, len(c.ParentIDs))
		for _, parentID := range c.ParentIDs {
			if resolved, ok := resolveAncestor(commitMap, c.ID, parentID); ok {
				parents = append(parents, resolved)
			}
		}
		slices.Sort(parents)
		parents = slices.Compact(parents)

		reduced := c
		reduced.ParentIDs = parents
		simplified = append(simplified, reduced)
	}

	if len(simplified) == 0 && len(commits) > 0 {
		return slices.Clone(commits)
	}

	return simplified
}

// resolveAncestor walks the first-parent chain starting at parentID and
// returns the first interesting commit or the first id outside the window.
// It returns false when the chain revisits an id, including the child itself.
func resolveAncestor(commitMap map[string]AnnotatedCommit, childID, parentID string) (string, bool) {
	seen := map[string]struct{}{childID: {}}
	runner := parentID

	for {
		if _, loop := seen[runner]; loop {
			return "", false
		}
		seen[runner] = struct{}{}

		ancestor, ok := commitMap[runner]
		if !ok {
			return runner, true
		}
		if ancestor.IsInteresting() {
			return runner, true
		}
		// Not a root, so a first parent exists.
		runner = ancestor.ParentIDs[0]
	}
}

// Stubs returns the parent ids referenced by the reduced graph that are not
// part of it, in order of first appearance.
func Stubs(reduced []ReducedCommit) []string {
	present := make(map[string]struct{}, len(reduced))
	for _, c := range reduced {
		present[c.ID] = struct{}{}
	}

	var stubs []string
	seen := make(map[string]struct{})
	for _, c := range reduced {
		for _, p := range c.ParentIDs {
			if _, ok := present[p]; ok {
				continue
			}
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			stubs = append(stubs, p)
		}
	}
	return stubs
}

// Simplify reduces commits using the default window.
func Simplify(commits []AnnotatedCommit) []ReducedCommit {
	return NewSimplifier(DefaultWindow).Simplify(commits)
}
