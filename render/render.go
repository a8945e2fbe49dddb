// Package render turns registry snapshots and diffs into human-readable
// text.  It is pure presentation: nothing here imposes any contract on the
// registry core.
package render

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/flowenv/flowenv/model"
)

// Text renders a snapshot as dotenv-style KEY=value lines in lexical key
// order, one entry per line.
func Text(config model.EnvConfig) string {
	var b strings.Builder
	for _, key := range config.Keys() {
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(config[key].String())
		b.WriteByte('\n')
	}
	return b.String()
}

// UnifiedDiff produces a GNU unified diff between the textual renderings
// of two snapshots.  If both snapshots render identically an empty string
// is returned.
func UnifiedDiff(from, to model.EnvConfig, fromLabel, toLabel string, contextLines int) (string, error) {
	if contextLines <= 0 {
		contextLines = 3
	}
	fromText, toText := Text(from), Text(to)
	if fromText == toText {
		return "", nil
	}
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(fromText),
		B:        difflib.SplitLines(toText),
		FromFile: fromLabel,
		ToFile:   toLabel,
		Context:  contextLines,
	}
	patch, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return "", fmt.Errorf("failed to generate diff %s -> %s: %w", fromLabel, toLabel, err)
	}
	return patch, nil
}
