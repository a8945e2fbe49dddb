package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/parsly"
)

// Parse parses a version literal in the strict M.m.p form: exactly three
// dot separated, non-negative decimal components with no surrounding
// decoration.  Any malformed input yields an error wrapping ErrInvalid.
func Parse(text string) (Version, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Version{}, fmt.Errorf("%w: empty literal", ErrInvalid)
	}
	cursor := parsly.NewCursor("", []byte(trimmed), 0)

	var components [3]int
	for i := 0; i < 3; i++ {
		if i > 0 {
			matched := cursor.MatchOne(dotToken)
			if matched.Code != dotToken.Code {
				return Version{}, fmt.Errorf("%w: expected %d components in %q", ErrInvalid, 3, text)
			}
		}
		matched := cursor.MatchOne(digitsToken)
		if matched.Code != digitsToken.Code {
			return Version{}, fmt.Errorf("%w: component %d is not a non-negative integer in %q", ErrInvalid, i+1, text)
		}
		value, err := strconv.Atoi(matched.Text(cursor))
		if err != nil {
			return Version{}, fmt.Errorf("%w: component %d overflows in %q", ErrInvalid, i+1, text)
		}
		components[i] = value
	}
	if cursor.Pos < cursor.InputSize {
		return Version{}, fmt.Errorf("%w: trailing content after patch component in %q", ErrInvalid, text)
	}
	return Version{Major: components[0], Minor: components[1], Patch: components[2]}, nil
}
