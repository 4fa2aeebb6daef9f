package git

import "github.com/go-git/go-git/v5/plumbing/filemode"

// entryClass groups tree entry modes whose content can be compared directly.
type entryClass int

const (
	entryClassNone entryClass = iota
	entryClassFile
	entryClassSymlink
	entryClassSubmodule
	entryClassDir
)

func classifyMode(m filemode.FileMode) entryClass {
	switch m {
	case filemode.Regular, filemode.Executable, filemode.Deprecated:
		return entryClassFile
	case filemode.Symlink:
		return entryClassSymlink
	case filemode.Submodule:
		return entryClassSubmodule
	case filemode.Dir:
		return entryClassDir
	default:
		return entryClassNone
	}
}

// isTypeChange reports whether an entry changed between file, symlink,
// submodule or directory. Mode-only changes such as chmod +x are not type changes.
func isTypeChange(from, to filemode.FileMode) bool {
	return classifyMode(from) != classifyMode(to)
}
