package output

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/masmgr/commitgraph-go/internal/graph"
)

const (
	reportDateTimeLayout = "2006-01-02T15:04:05"
	shortIDLength        = 8
)

func shortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}
	return id[:shortIDLength]
}

func shortIDs(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = shortID(id)
	}
	return out
}

// subject returns the first line of a commit message.
func subject(msg string) string {
	msg = strings.TrimSpace(msg)
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	return strings.TrimSpace(msg)
}

func formatTimestamp(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(reportDateTimeLayout)
}

func refNames(refs []graph.RefAnnotation) string {
	names := make([]string, len(refs))
	for i, r := range refs {
		names[i] = r.Name
	}
	return strings.Join(names, ", ")
}

// stubSet returns the parent ids that fall outside the reduced graph.
func stubSet(commits []graph.ReducedCommit) map[string]bool {
	stubs := graph.Stubs(commits)
	set := make(map[string]bool, len(stubs))
	for _, id := range stubs {
		set[id] = true
	}
	return set
}

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}
