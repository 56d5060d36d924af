package components

import (
	"time"

	"github.com/alexisbeaulieu97/stylepreview/internal/application/preview"
)

// PartEntry represents a single part for rendering.
type PartEntry struct {
	Name     string
	Status   preview.Status
	Output   string
	Message  string
	Duration time.Duration
}

// PartList renders a list of parts with their current status.
type PartList struct {
	entries []PartEntry
}

// NewPartList constructs a part list component.
func NewPartList(entries []PartEntry) PartList {
	clone := make([]PartEntry, len(entries))
	copy(clone, entries)
	return PartList{entries: clone}
}

// Entries returns the ordered part entries.
func (p PartList) Entries() []PartEntry {
	clone := make([]PartEntry, len(p.entries))
	copy(clone, p.entries)
	return clone
}

// Count returns how many entries have the given status.
func (p PartList) Count(status preview.Status) int {
	n := 0
	for _, e := range p.entries {
		if e.Status == status {
			n++
		}
	}
	return n
}
