package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/stylepreview/internal/domain/style"
	apperrors "github.com/alexisbeaulieu97/stylepreview/pkg/errors"
)

// ValidateDocument performs schema and cross-field validation on the document.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return apperrors.NewValidationError("document", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	if err := checkUniqueIDs("resources", doc.Resources); err != nil {
		return err
	}
	if err := checkUniqueIDs("overrides", doc.Overrides); err != nil {
		return err
	}

	seen := make(map[string]int, len(doc.Parts))
	for i, part := range doc.Parts {
		key := strings.ToUpper(part.Name)
		if first, exists := seen[key]; exists {
			return apperrors.NewValidationError(fieldForPart(i, "name"), fmt.Sprintf("duplicate part name %q (first declared at parts[%d])", part.Name, first), nil)
		}
		seen[key] = i
	}

	return nil
}

func checkUniqueIDs(section string, entries []ResourceEntry) error {
	seen := make(map[int]struct{}, len(entries))
	for i, entry := range entries {
		if _, exists := seen[entry.ID]; exists {
			return apperrors.NewValidationError(fmt.Sprintf("%s[%d].id", section, i), fmt.Sprintf("duplicate resource id %d", entry.ID), nil)
		}
		seen[entry.ID] = struct{}{}
	}
	return nil
}

// convertValidationError normalizes validator errors into validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		switch {
		case ve.Tag() == "property_name":
			msg = fmt.Sprintf("%s: unknown property %q (known: %s)", field, ve.Value(), strings.Join(style.KnownIdentifierNames(), ", "))
		case ve.Param() != "" && strings.HasSuffix(ve.Tag(), "_value"):
			msg = fmt.Sprintf("%s: %q is not a valid %s", field, ve.Param(), strings.TrimSuffix(ve.Tag(), "_value"))
		}
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("document", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts[1:] {
		lowered = append(lowered, strings.ToLower(part))
	}
	if len(lowered) == 0 {
		return strings.ToLower(ns)
	}
	return strings.Join(lowered, ".")
}

func fieldForPart(index int, field string) string {
	return fmt.Sprintf("parts[%d].%s", index, field)
}
