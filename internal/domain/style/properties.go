package style

import (
	"image/color"
)

// Property is a single identifier/value record of a state.
type Property struct {
	ID    Identifier
	Value Value
}

// PropertySet is the immutable, ordered property list of one state. Lookups go
// through an identifier index; when an identifier is declared more than once
// the first declaration wins.
type PropertySet struct {
	props []Property
	index map[Identifier]int
}

// NewPropertySet builds a PropertySet, rejecting unknown identifiers and
// properties whose value kind does not match the kind fixed by their
// identifier.
func NewPropertySet(props ...Property) (*PropertySet, error) {
	set := &PropertySet{
		props: make([]Property, 0, len(props)),
		index: make(map[Identifier]int, len(props)),
	}
	for _, p := range props {
		if !p.ID.Known() {
			return nil, newValidationError("unknown property identifier", map[string]interface{}{"property": p.ID.String()})
		}
		if want := p.ID.Kind(); want != p.Value.Kind() {
			return nil, newTypeError(p.ID, want.String(), p.Value.Kind().String())
		}
		if _, exists := set.index[p.ID]; !exists {
			set.index[p.ID] = len(set.props)
		}
		set.props = append(set.props, p)
	}
	return set, nil
}

// Len returns the number of declared properties.
func (s *PropertySet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.props)
}

// All returns a copy of the properties in declaration order.
func (s *PropertySet) All() []Property {
	if s == nil {
		return nil
	}
	return append([]Property(nil), s.props...)
}

// Lookup returns the value declared for id.
func (s *PropertySet) Lookup(id Identifier) (Value, bool) {
	if s == nil {
		return Value{}, false
	}
	i, ok := s.index[id]
	if !ok {
		return Value{}, false
	}
	return s.props[i].Value, true
}

// Find returns the first property whose identifier appears in ids, trying the
// candidates in the order given.
func (s *PropertySet) Find(ids ...Identifier) (Property, bool) {
	if s == nil {
		return Property{}, false
	}
	for _, id := range ids {
		if i, ok := s.index[id]; ok {
			return s.props[i], true
		}
	}
	return Property{}, false
}

// Enum returns the enumerant declared for id. It reports false when id is
// absent or carries another kind.
func (s *PropertySet) Enum(id Identifier) (int, bool) {
	v, ok := s.Lookup(id)
	if !ok {
		return 0, false
	}
	return v.Enum()
}

// Int returns the integer declared for id.
func (s *PropertySet) Int(id Identifier) (int, bool) {
	v, ok := s.Lookup(id)
	if !ok {
		return 0, false
	}
	return v.Int()
}

// Color returns the colour declared for id.
func (s *PropertySet) Color(id Identifier) (color.RGBA, bool) {
	v, ok := s.Lookup(id)
	if !ok {
		return color.RGBA{}, false
	}
	return v.Color()
}

// Margins returns the insets declared for id, unclamped.
func (s *PropertySet) Margins(id Identifier) (Margins, bool) {
	v, ok := s.Lookup(id)
	if !ok {
		return Margins{}, false
	}
	return v.Margins()
}

// Filename returns the resource referenced by the filename property id.
func (s *PropertySet) Filename(id Identifier) (ResourceRef, bool) {
	v, ok := s.Lookup(id)
	if !ok {
		return ResourceRef{}, false
	}
	return v.Resource()
}
