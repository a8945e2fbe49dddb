package criteria

import (
	"strings"

	"github.com/flowenv/flowenv/service/dao"
)

// FilterByName reports whether an entity with the supplied name passes the
// List parameters.  A single "Name" parameter matches exact names (string
// or string slice); a "NamePrefix" parameter matches by prefix.  Absent or
// unrecognised parameters match everything.
func FilterByName(name string, parameters []*dao.Parameter) bool {
	if len(parameters) != 1 {
		return true
	}
	parameter := parameters[0]
	switch parameter.Name {
	case "Name":
		switch actual := parameter.Value.(type) {
		case string:
			return name == actual
		case []string:
			for _, candidate := range actual {
				if name == candidate {
					return true
				}
			}
			return false
		}
	case "NamePrefix":
		if prefix, ok := parameter.Value.(string); ok {
			return strings.HasPrefix(name, prefix)
		}
	}
	return true
}
