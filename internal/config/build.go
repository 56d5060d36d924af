package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/alexisbeaulieu97/stylepreview/internal/domain/style"
	"github.com/alexisbeaulieu97/stylepreview/internal/infrastructure/resources"
	apperrors "github.com/alexisbeaulieu97/stylepreview/pkg/errors"
)

// Built is the in-memory form of a style document.
type Built struct {
	Style     *style.Style
	Table     *resources.MemoryTable
	Overrides *resources.StagingQueue
	// Missing lists resource files that could not be read. Parts that
	// reference them render without their image.
	Missing []string
}

// BuildStyle converts a validated document into a style plus its resource
// stores. Relative resource and override paths are resolved against baseDir.
func BuildStyle(doc *Document, baseDir string) (*Built, error) {
	if doc == nil {
		return nil, apperrors.NewValidationError("document", "document is nil", nil)
	}

	built := &Built{
		Style:     &style.Style{Name: doc.Name},
		Table:     resources.NewMemoryTable(),
		Overrides: resources.NewStagingQueue(),
	}

	for _, entry := range doc.Resources {
		path := resolvePath(baseDir, entry.Path)
		if err := built.Table.LoadFile(style.ResourceToken(entry.ID), path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				built.Missing = append(built.Missing, path)
				continue
			}
			return nil, err
		}
	}

	for _, entry := range doc.Overrides {
		built.Overrides.Stage(style.ResourceToken(entry.ID), style.ResourceImage, resolvePath(baseDir, entry.Path))
	}

	for i, partDoc := range doc.Parts {
		part := &style.Part{Name: partDoc.Name, States: make([]style.State, 0, len(partDoc.States))}
		for j, stateDoc := range partDoc.States {
			props, err := buildProperties(stateDoc.Properties)
			if err != nil {
				return nil, apperrors.NewValidationError(fmt.Sprintf("parts[%d].states[%d]", i, j), err.Error(), err)
			}
			name := stateDoc.Name
			if name == "" {
				name = fmt.Sprintf("state%d", j)
			}
			part.States = append(part.States, style.State{Name: name, Properties: props})
		}
		built.Style.Parts = append(built.Style.Parts, part)
	}

	return built, nil
}

func buildProperties(docs []PropertyDoc) (*style.PropertySet, error) {
	props := make([]style.Property, 0, len(docs))
	for _, doc := range docs {
		id, ok := style.ParseIdentifier(doc.Name)
		if !ok {
			return nil, fmt.Errorf("unknown property %q", doc.Name)
		}
		value, err := ParseValue(id, string(doc.Value))
		if err != nil {
			return nil, err
		}
		props = append(props, style.Property{ID: id, Value: value})
	}
	return style.NewPropertySet(props...)
}

func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(baseDir, path)
}
