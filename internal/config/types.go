package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the YAML style document: a textual dump of a visual style's
// parts, their state properties and the image resources they reference.
type Document struct {
	Version     string          `yaml:"version" validate:"required,semver"`
	Name        string          `yaml:"name" validate:"required,min=1,max=100"`
	Description string          `yaml:"description,omitempty"`
	Resources   []ResourceEntry `yaml:"resources,omitempty" validate:"omitempty,dive"`
	Overrides   []ResourceEntry `yaml:"overrides,omitempty" validate:"omitempty,dive"`
	Parts       []PartDoc       `yaml:"parts" validate:"required,min=1,dive"`
}

// ResourceEntry maps a resource token to an image file. Relative paths are
// resolved against the document's directory.
type ResourceEntry struct {
	ID   int    `yaml:"id" validate:"min=0,max=65535"`
	Path string `yaml:"path" validate:"required,resource_path"`
}

// PartDoc describes one part and its states in declaration order.
type PartDoc struct {
	Name   string     `yaml:"name" validate:"required,max=200"`
	States []StateDoc `yaml:"states,omitempty" validate:"omitempty,dive"`
}

// StateDoc holds the properties declared for one state of a part.
type StateDoc struct {
	Name       string        `yaml:"name,omitempty"`
	Properties []PropertyDoc `yaml:"properties,omitempty" validate:"omitempty,dive"`
}

// PropertyDoc is a single name/value pair. The value is kept as raw text and
// interpreted according to the kind of the named property.
type PropertyDoc struct {
	Name  string `yaml:"name" validate:"required,property_name"`
	Value Scalar `yaml:"value" validate:"required"`
}

// Scalar captures the literal text of a YAML scalar regardless of its tag, so
// `101`, `"101"` and `IMAGEFILE` all reach the value parser unchanged.
type Scalar string

// UnmarshalYAML rejects sequences and mappings.
func (s *Scalar) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: property value must be a scalar", value.Line)
	}
	*s = Scalar(value.Value)
	return nil
}

func (s Scalar) String() string {
	return string(s)
}
