package graph

// DefaultWindow is the number of commits loaded for one simplification pass
// when no explicit window is configured.
const DefaultWindow = 2000

// Commit represents a single commit as read from the repository.
type Commit struct {
	ID          string
	ParentIDs   []string // First parent is the mainline parent
	AuthorName  string
	AuthorEmail string
	Timestamp   int64 // Seconds since epoch
	Message     string
}

// RefKind classifies a reference pointing at a commit.
type RefKind string

const (
	RefKindBranch RefKind = "branch"
	RefKindRemote RefKind = "remote"
	RefKindTag    RefKind = "tag"
	RefKindHead   RefKind = "head"
	RefKindOther  RefKind = "other"
)

// RefAnnotation is a symbolic reference attached to a commit.
type RefAnnotation struct {
	Name string
	Kind RefKind
}

// AnnotatedCommit bundles a commit with the references pointing at it.
type AnnotatedCommit struct {
	Commit
	Refs []RefAnnotation
}

// IsMerge returns true if the commit has more than one parent.
func (c AnnotatedCommit) IsMerge() bool {
	return len(c.ParentIDs) > 1
}

// IsRoot returns true if the commit has no parents.
func (c AnnotatedCommit) IsRoot() bool {
	return len(c.ParentIDs) == 0
}

// IsInteresting reports whether the commit is kept in a simplified graph:
// it carries a reference, merges branches, or starts history.
func (c AnnotatedCommit) IsInteresting() bool {
	return len(c.Refs) > 0 || c.IsMerge() || c.IsRoot()
}

// ReducedCommit is an interesting commit whose parents have been re-linked
// to the nearest interesting ancestors. ParentIDs is sorted and free of duplicates.
type ReducedCommit = AnnotatedCommit
