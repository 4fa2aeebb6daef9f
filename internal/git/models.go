package git

import "fmt"

// FileChange represents a file changed between two commit snapshots.
type FileChange struct {
	Path    string
	OldPath string // For renames
	Kind    ChangeKind
}

// ChangeKind represents the type of change.
type ChangeKind int

const (
	ChangeKindAdded ChangeKind = iota
	ChangeKindModified
	ChangeKindDeleted
	ChangeKindRenamed
	ChangeKindTypechange
)

// String returns the status label shown to graph clients.
func (k ChangeKind) String() string {
	switch k {
	case ChangeKindAdded:
		return "Added"
	case ChangeKindModified:
		return "Modified"
	case ChangeKindDeleted:
		return "Deleted"
	case ChangeKindRenamed:
		return "Renamed"
	case ChangeKindTypechange:
		return "Typechange"
	default:
		return "Unknown"
	}
}

// RenameDetectMode controls how file renames are detected.
type RenameDetectMode int

const (
	RenameDetectOff RenameDetectMode = iota
	RenameDetectSimple
	RenameDetectAggressive
)

// String returns the configuration name of the mode.
func (m RenameDetectMode) String() string {
	switch m {
	case RenameDetectOff:
		return "off"
	case RenameDetectSimple:
		return "simple"
	case RenameDetectAggressive:
		return "aggressive"
	default:
		return "unknown"
	}
}

// ParseRenameDetectMode parses a rename detection mode name.
// The empty string selects RenameDetectSimple.
func ParseRenameDetectMode(s string) (RenameDetectMode, error) {
	switch s {
	case "", "auto", "simple", "exact":
		return RenameDetectSimple, nil
	case "off", "false", "none":
		return RenameDetectOff, nil
	case "aggressive", "similarity":
		return RenameDetectAggressive, nil
	default:
		return RenameDetectOff, fmt.Errorf("invalid rename detection mode %q (expected off, simple or aggressive)", s)
	}
}

// DiffOptions configures a tree diff.
type DiffOptions struct {
	Include      []string // Glob patterns to include
	Exclude      []string // Glob patterns to exclude
	RenameDetect RenameDetectMode
}
