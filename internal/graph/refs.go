package graph

import "strings"

// RawRef is a reference as enumerated from the repository.
// Target is empty when the reference does not resolve to a commit.
type RawRef struct {
	Name     string // Full name, e.g. refs/heads/main
	Target   string
	IsBranch bool
	IsTag    bool
	IsRemote bool
}

// RefIndex maps commit ids to the references pointing at them.
type RefIndex map[string][]RefAnnotation

// Lookup returns the annotations for id and whether any reference targets it.
func (idx RefIndex) Lookup(id string) ([]RefAnnotation, bool) {
	refs, ok := idx[id]
	return refs, ok
}

// Annotations returns the annotations for id, or nil when nothing points at it.
func (idx RefIndex) Annotations(id string) []RefAnnotation {
	if refs, ok := idx.Lookup(id); ok {
		return refs
	}
	return nil
}

// Annotate attaches the indexed references to each commit.
func (idx RefIndex) Annotate(commits []Commit) []AnnotatedCommit {
	annotated := make([]AnnotatedCommit, len(commits))
	for i, c := range commits {
		annotated[i] = AnnotatedCommit{Commit: c, Refs: idx.Annotations(c.ID)}
	}
	return annotated
}

// IndexRefs builds the commit-to-references mapping.
// headTarget is the commit HEAD resolves to, or empty when HEAD is unborn.
// Annotations keep discovery order and HEAD is always appended last.
func IndexRefs(refs []RawRef, headTarget string) RefIndex {
	idx := make(RefIndex)

	for _, r := range refs {
		if r.Target == "" {
			continue
		}
		idx[r.Target] = append(idx[r.Target], RefAnnotation{
			Name: ShortRefName(r.Name),
			Kind: classifyRef(r),
		})
	}

	if headTarget != "" {
		idx[headTarget] = append(idx[headTarget], RefAnnotation{Name: "HEAD", Kind: RefKindHead})
	}

	return idx
}

func classifyRef(r RawRef) RefKind {
	switch {
	case r.IsRemote:
		return RefKindRemote
	case r.IsTag:
		return RefKindTag
	case r.IsBranch:
		return RefKindBranch
	default:
		return RefKindOther
	}
}

var refPrefixes = []string{
	"refs/heads/",
	"refs/tags/",
	"refs/remotes/",
	"refs/",
}

// ShortRefName returns the display form of a full reference name.
func ShortRefName(name string) string {
	for _, prefix := range refPrefixes {
		if short, ok := strings.CutPrefix(name, prefix); ok && short != "" {
			return short
		}
	}
	return name
}
