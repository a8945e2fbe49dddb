package model

// ValueChange carries both sides of a modified configuration entry.
type ValueChange struct {
	From Value `json:"old" yaml:"old"`
	To   Value `json:"new" yaml:"new"`
}

// Diff is the structural difference between two configuration snapshots,
// framed as from -> to.  Keys identical in both snapshots appear in none
// of the three groups.
type Diff struct {
	Added   map[string]Value       `json:"added" yaml:"added"`
	Removed map[string]Value       `json:"removed" yaml:"removed"`
	Changed map[string]ValueChange `json:"changed" yaml:"changed"`
}

// DiffConfigs computes the structural difference between two snapshots.
// The computation is a pure set comparison; either argument may predate
// the other.
func DiffConfigs(from, to EnvConfig) *Diff {
	diff := &Diff{
		Added:   map[string]Value{},
		Removed: map[string]Value{},
		Changed: map[string]ValueChange{},
	}
	for key, value := range to {
		previous, ok := from[key]
		if !ok {
			diff.Added[key] = value
			continue
		}
		if !previous.Equal(value) {
			diff.Changed[key] = ValueChange{From: previous, To: value}
		}
	}
	for key, value := range from {
		if _, ok := to[key]; !ok {
			diff.Removed[key] = value
		}
	}
	return diff
}

// IsEmpty reports whether the diff carries no differences.
func (d *Diff) IsEmpty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// Invert returns the diff framed in the opposite direction: added and
// removed swap, and every change swaps its from/to pair.
func (d *Diff) Invert() *Diff {
	inverted := &Diff{
		Added:   make(map[string]Value, len(d.Removed)),
		Removed: make(map[string]Value, len(d.Added)),
		Changed: make(map[string]ValueChange, len(d.Changed)),
	}
	for key, value := range d.Removed {
		inverted.Added[key] = value
	}
	for key, value := range d.Added {
		inverted.Removed[key] = value
	}
	for key, change := range d.Changed {
		inverted.Changed[key] = ValueChange{From: change.To, To: change.From}
	}
	return inverted
}
