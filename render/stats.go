package render

import (
	"fmt"

	"github.com/sourcegraph/go-diff/diff"
)

// Stats captures basic statistics about a unified-diff output.
type Stats struct {
	Added   int
	Changed int
	Deleted int
}

// ParseStats parses a unified diff produced by UnifiedDiff back into hunk
// statistics.  An empty diff yields zero stats.
func ParseStats(unified string) (Stats, error) {
	if unified == "" {
		return Stats{}, nil
	}
	fileDiff, err := diff.ParseFileDiff([]byte(unified))
	if err != nil {
		return Stats{}, fmt.Errorf("failed to parse unified diff: %w", err)
	}
	stat := fileDiff.Stat()
	return Stats{
		Added:   int(stat.Added),
		Changed: int(stat.Changed),
		Deleted: int(stat.Deleted),
	}, nil
}
