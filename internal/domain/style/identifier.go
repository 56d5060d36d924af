package style

import (
	"fmt"
	"sort"
	"strings"
)

// Kind discriminates the concrete payload carried by a Value.
type Kind int

const (
	KindEnum Kind = iota + 1
	KindInt
	KindColor
	KindMargins
	KindFilename
)

func (k Kind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindInt:
		return "int"
	case KindColor:
		return "color"
	case KindMargins:
		return "margins"
	case KindFilename:
		return "filename"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Identifier names a theme property. Values match the numeric ids used by the
// binary theme format so documents can reference either form.
type Identifier int

const (
	IdentImageCount    Identifier = 2401
	IdentImageFile     Identifier = 3001
	IdentImageFile1    Identifier = 3002
	IdentSizingMargins Identifier = 3601
	IdentFillColor     Identifier = 3802
	IdentBgType        Identifier = 4001
	IdentSizingType    Identifier = 4004
	IdentImageLayout   Identifier = 4011
)

type identifierInfo struct {
	name string
	kind Kind
}

var identifiers = map[Identifier]identifierInfo{
	IdentImageCount:    {name: "IMAGECOUNT", kind: KindInt},
	IdentImageFile:     {name: "IMAGEFILE", kind: KindFilename},
	IdentImageFile1:    {name: "IMAGEFILE1", kind: KindFilename},
	IdentSizingMargins: {name: "SIZINGMARGINS", kind: KindMargins},
	IdentFillColor:     {name: "FILLCOLOR", kind: KindColor},
	IdentBgType:        {name: "BGTYPE", kind: KindEnum},
	IdentSizingType:    {name: "SIZINGTYPE", kind: KindEnum},
	IdentImageLayout:   {name: "IMAGELAYOUT", kind: KindEnum},
}

var identifiersByName = func() map[string]Identifier {
	out := make(map[string]Identifier, len(identifiers))
	for id, info := range identifiers {
		out[info.name] = id
	}
	return out
}()

// Kind reports the value kind every property with this identifier carries.
// Unknown identifiers report zero.
func (id Identifier) Kind() Kind {
	return identifiers[id].kind
}

// Known reports whether the identifier is part of the supported vocabulary.
func (id Identifier) Known() bool {
	_, ok := identifiers[id]
	return ok
}

func (id Identifier) String() string {
	if info, ok := identifiers[id]; ok {
		return info.name
	}
	return fmt.Sprintf("PROPERTY_%d", int(id))
}

// ParseIdentifier resolves a property name (case-insensitive) to its identifier.
func ParseIdentifier(name string) (Identifier, bool) {
	id, ok := identifiersByName[strings.ToUpper(strings.TrimSpace(name))]
	return id, ok
}

// KnownIdentifierNames returns every supported property name, sorted.
func KnownIdentifierNames() []string {
	names := make([]string, 0, len(identifiersByName))
	for name := range identifiersByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
