package version

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes
const (
	digitsCode = iota
	dotCode
)

// Token definitions
var (
	digitsToken = parsly.NewToken(digitsCode, "Digits", newDigitsMatcher())
	dotToken    = parsly.NewToken(dotCode, ".", matcher.NewByte('.'))
)

func newDigitsMatcher() parsly.Matcher {
	return &digitsMatcher{}
}

// digitsMatcher matches a run of decimal digits
type digitsMatcher struct{}

func (m *digitsMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	matched := 0
	for i := pos; i < size; i++ {
		if input[i] < '0' || input[i] > '9' {
			break
		}
		matched++
	}
	return matched
}
