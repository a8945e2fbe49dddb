package loader

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/viant/scy"
)

// expandEnvExpr replaces all occurrences of ${env.KEY} in the input
// with the value of the environment variable KEY (or "" if unset).
func expandEnvExpr(value string) string {
	const prefix = "${env."
	var b strings.Builder
	i := 0
	for {
		idx := strings.Index(value[i:], prefix)
		if idx < 0 {
			b.WriteString(value[i:])
			break
		}
		b.WriteString(value[i : i+idx])
		startKey := i + idx + len(prefix)

		endKey := strings.IndexByte(value[startKey:], '}')
		if endKey < 0 {
			// No closing brace; treat the rest as literal.
			b.WriteString(value[i+idx:])
			break
		}
		key := value[startKey : startKey+endKey]

		// The key must consist solely of letters, digits or '_'.
		valid := true
		for _, r := range key {
			if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
				valid = false
				break
			}
		}
		if valid {
			b.WriteString(os.Getenv(key))
			i = startKey + endKey + 1
			continue
		}
		// Invalid expression: keep the prefix literal and rescan the rest.
		b.WriteString(value[i+idx : startKey])
		i = startKey
	}
	return b.String()
}

const secretPrefix = "${secret."

// expandSecretExpr reveals a value of the whole-string form
// ${secret.<url>} through the scy service.  Values in any other shape, or
// any value when no secret service is configured, pass through untouched.
func (s *Service) expandSecretExpr(ctx context.Context, value string) (string, error) {
	if s.secrets == nil {
		return value, nil
	}
	if !strings.HasPrefix(value, secretPrefix) || !strings.HasSuffix(value, "}") {
		return value, nil
	}
	sourceURL := value[len(secretPrefix) : len(value)-1]
	if sourceURL == "" {
		return value, nil
	}
	resource := scy.NewResource(nil, sourceURL, "")
	secret, err := s.secrets.Load(ctx, resource)
	if err != nil {
		return "", fmt.Errorf("failed to load secret from %s: %w", sourceURL, err)
	}
	return secret.String(), nil
}
