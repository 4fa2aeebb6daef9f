package graph

import (
	"reflect"
	"testing"
)

func commit(id string, parents ...string) AnnotatedCommit {
	return AnnotatedCommit{Commit: Commit{ID: id, ParentIDs: parents}}
}

func withRef(c AnnotatedCommit, name string, kind RefKind) AnnotatedCommit {
	c.Refs = append(c.Refs, RefAnnotation{Name: name, Kind: kind})
	return c
}

func ids(commits []ReducedCommit) []string {
	out := make([]string, len(commits))
	for i, c := range commits {
		out[i] = c.ID
	}
	return out
}

func parentsOf(t *testing.T, commits []ReducedCommit, id string) []string {
	t.Helper()
	for _, c := range commits {
		if c.ID == id {
			return c.ParentIDs
		}
	}
	t.Fatalf("commit %q not in result %v", id, ids(commits))
	return nil
}

func TestAnnotatedCommit_Predicates(t *testing.T) {
	tests := []struct {
		name        string
		commit      AnnotatedCommit
		merge, root bool
		interesting bool
	}{
		{name: "Root", commit: commit("a"), root: true, interesting: true},
		{name: "Linear", commit: commit("b", "a")},
		{name: "Merge", commit: commit("m", "a", "b"), merge: true, interesting: true},
		{name: "Octopus", commit: commit("o", "a", "b", "c"), merge: true, interesting: true},
		{name: "Referenced", commit: withRef(commit("b", "a"), "main", RefKindBranch), interesting: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.commit.IsMerge(); got != tt.merge {
				t.Errorf("IsMerge() = %v, expected %v", got, tt.merge)
			}
			if got := tt.commit.IsRoot(); got != tt.root {
				t.Errorf("IsRoot() = %v, expected %v", got, tt.root)
			}
			if got := tt.commit.IsInteresting(); got != tt.interesting {
				t.Errorf("IsInteresting() = %v, expected %v", got, tt.interesting)
			}
		})
	}
}

func TestSimplify_LinearHistory(t *testing.T) {
	commits := []AnnotatedCommit{
		withRef(commit("e", "d"), "main", RefKindBranch),
		commit("d", "c"),
		commit("c", "b"),
		commit("b", "a"),
		commit("a"),
	}

	result := Simplify(commits)

	if got := ids(result); !reflect.DeepEqual(got, []string{"e", "a"}) {
		t.Fatalf("ids = %v, expected [e a]", got)
	}
	if got := parentsOf(t, result, "e"); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("parents(e) = %v, expected [a]", got)
	}
	if got := parentsOf(t, result, "a"); len(got) != 0 {
		t.Errorf("parents(a) = %v, expected none", got)
	}
}

func TestSimplify_MergeOfTwoBranches(t *testing.T) {
	build := func(tipRefs bool) []AnnotatedCommit {
		x3 := commit("x3", "x2")
		y3 := commit("y3", "y2")
		if tipRefs {
			x3 = withRef(x3, "feature-x", RefKindBranch)
			y3 = withRef(y3, "feature-y", RefKindBranch)
		}
		return []AnnotatedCommit{
			withRef(commit("m", "y3", "x3"), "main", RefKindBranch),
			y3,
			commit("y2", "y1"),
			commit("y1", "r"),
			x3,
			commit("x2", "x1"),
			commit("x1", "r"),
			commit("r"),
		}
	}

	t.Run("branch tips with refs", func(t *testing.T) {
		result := Simplify(build(true))

		if got := ids(result); !reflect.DeepEqual(got, []string{"m", "y3", "x3", "r"}) {
			t.Fatalf("ids = %v, expected [m y3 x3 r]", got)
		}
		if got := parentsOf(t, result, "m"); !reflect.DeepEqual(got, []string{"x3", "y3"}) {
			t.Errorf("parents(m) = %v, expected [x3 y3]", got)
		}
		if got := parentsOf(t, result, "x3"); !reflect.DeepEqual(got, []string{"r"}) {
			t.Errorf("parents(x3) = %v, expected [r]", got)
		}
		if got := parentsOf(t, result, "y3"); !reflect.DeepEqual(got, []string{"r"}) {
			t.Errorf("parents(y3) = %v, expected [r]", got)
		}
	})

	t.Run("branch tips without refs collapse to root", func(t *testing.T) {
		result := Simplify(build(false))

		if got := ids(result); !reflect.DeepEqual(got, []string{"m", "r"}) {
			t.Fatalf("ids = %v, expected [m r]", got)
		}
		if got := parentsOf(t, result, "m"); !reflect.DeepEqual(got, []string{"r"}) {
			t.Errorf("parents(m) = %v, expected [r]", got)
		}
	})
}

func TestSimplify_ParentsSortedAndDeduplicated(t *testing.T) {
	commits := []AnnotatedCommit{
		commit("m", "zz", "aa", "zz"),
		withRef(commit("zz", "r"), "z", RefKindTag),
		withRef(commit("aa", "r"), "a", RefKindTag),
		commit("r"),
	}

	result := Simplify(commits)

	if got := parentsOf(t, result, "m"); !reflect.DeepEqual(got, []string{"aa", "zz"}) {
		t.Errorf("parents(m) = %v, expected [aa zz]", got)
	}
}

func TestSimplify_OutOfWindowStub(t *testing.T) {
	t.Run("missing ancestor", func(t *testing.T) {
		commits := []AnnotatedCommit{
			withRef(commit("c", "b"), "main", RefKindBranch),
			commit("b", "a"),
		}

		result := Simplify(commits)

		if got := ids(result); !reflect.DeepEqual(got, []string{"c"}) {
			t.Fatalf("ids = %v, expected [c]", got)
		}
		if got := parentsOf(t, result, "c"); !reflect.DeepEqual(got, []string{"a"}) {
			t.Errorf("parents(c) = %v, expected stub [a]", got)
		}
		if got := Stubs(result); !reflect.DeepEqual(got, []string{"a"}) {
			t.Errorf("Stubs = %v, expected [a]", got)
		}
	})

	t.Run("window truncation", func(t *testing.T) {
		commits := []AnnotatedCommit{
			withRef(commit("c", "b"), "main", RefKindBranch),
			commit("b", "a"),
			commit("a"),
		}

		result := NewSimplifier(2).Simplify(commits)

		if got := ids(result); !reflect.DeepEqual(got, []string{"c"}) {
			t.Fatalf("ids = %v, expected [c]", got)
		}
		if got := parentsOf(t, result, "c"); !reflect.DeepEqual(got, []string{"a"}) {
			t.Errorf("parents(c) = %v, expected stub [a]", got)
		}
	})
}

func TestSimplify_CycleGuard(t *testing.T) {
	tests := []struct {
		name    string
		commits []AnnotatedCommit
	}{
		{
			name: "Self parent",
			commits: []AnnotatedCommit{
				withRef(commit("a", "a"), "main", RefKindBranch),
			},
		},
		{
			name: "Cycle back to child",
			commits: []AnnotatedCommit{
				withRef(commit("a", "b"), "main", RefKindBranch),
				commit("b", "a"),
			},
		},
		{
			name: "Cycle between skipped commits",
			commits: []AnnotatedCommit{
				withRef(commit("a", "b"), "main", RefKindBranch),
				commit("b", "c"),
				commit("c", "b"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Simplify(tt.commits)

			if got := ids(result); !reflect.DeepEqual(got, []string{"a"}) {
				t.Fatalf("ids = %v, expected [a]", got)
			}
			if got := parentsOf(t, result, "a"); len(got) != 0 {
				t.Errorf("parents(a) = %v, expected edge dropped", got)
			}
		})
	}
}

func TestSimplify_CycleKeepsOtherParents(t *testing.T) {
	commits := []AnnotatedCommit{
		commit("m", "b", "r"),
		commit("b", "c"),
		commit("c", "b"),
		commit("r"),
	}

	result := Simplify(commits)

	if got := parentsOf(t, result, "m"); !reflect.DeepEqual(got, []string{"r"}) {
		t.Errorf("parents(m) = %v, expected [r]", got)
	}
}

func TestSimplify_FallbackReturnsWholeWindow(t *testing.T) {
	commits := []AnnotatedCommit{
		commit("c", "b"),
		commit("b", "a"),
	}

	result := Simplify(commits)

	if !reflect.DeepEqual(result, commits) {
		t.Errorf("Simplify = %v, expected unchanged window %v", result, commits)
	}
}

func TestSimplify_Empty(t *testing.T) {
	if result := Simplify(nil); len(result) != 0 {
		t.Errorf("Simplify(nil) = %v, expected empty", result)
	}
}

func TestSimplify_DoesNotMutateInput(t *testing.T) {
	commits := []AnnotatedCommit{
		withRef(commit("c", "b"), "main", RefKindBranch),
		commit("b", "a"),
		commit("a"),
	}

	_ = Simplify(commits)

	if got := commits[0].ParentIDs; !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("input parents mutated: %v", got)
	}
}

func TestSimplifier_DefaultWindow(t *testing.T) {
	tests := []struct {
		name     string
		s        *Simplifier
		expected int
	}{
		{name: "Nil", s: nil, expected: DefaultWindow},
		{name: "Zero", s: &Simplifier{}, expected: DefaultWindow},
		{name: "Negative", s: &Simplifier{Window: -5}, expected: DefaultWindow},
		{name: "Explicit", s: &Simplifier{Window: 10}, expected: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.window(); got != tt.expected {
				t.Errorf("window() = %d, expected %d", got, tt.expected)
			}
		})
	}
}
