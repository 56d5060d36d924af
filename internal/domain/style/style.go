package style

import "strings"

// State is a named variant of a part's property set.
type State struct {
	Name       string
	Properties *PropertySet
}

// Part is a themeable element definition made of one or more states.
type Part struct {
	Name   string
	States []State
}

// FirstState returns the state at index 0, the only state that contributes to
// a preview.
func (p *Part) FirstState() (State, bool) {
	if p == nil || len(p.States) == 0 {
		return State{}, false
	}
	return p.States[0], true
}

// Style is a parsed theme: its parts in declaration order.
type Style struct {
	Name  string
	Parts []*Part
}

// Part looks a part up by name, case-insensitively.
func (s *Style) Part(name string) (*Part, error) {
	if s != nil {
		for _, p := range s.Parts {
			if strings.EqualFold(p.Name, name) {
				return p, nil
			}
		}
	}
	return nil, newNotFoundError("part", name)
}

// Validate checks the structural invariants of the style.
func (s *Style) Validate() error {
	if s == nil {
		return newValidationError("style is nil", nil)
	}
	seen := make(map[string]struct{}, len(s.Parts))
	for i, p := range s.Parts {
		if p == nil || strings.TrimSpace(p.Name) == "" {
			return newMissingFieldError(fieldForPart(i, "name"))
		}
		key := strings.ToLower(p.Name)
		if _, dup := seen[key]; dup {
			return newDuplicateError(p.Name)
		}
		seen[key] = struct{}{}
	}
	return nil
}
