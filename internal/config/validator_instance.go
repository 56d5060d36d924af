package config

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/stylepreview/internal/domain/style"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("property_name", func(fl validator.FieldLevel) bool {
			_, ok := style.ParseIdentifier(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("resource_path", func(fl validator.FieldLevel) bool {
			return isValidResourcePath(fl.Field().String())
		})

		v.RegisterStructValidation(validatePropertyValue, PropertyDoc{})

		validateInst = v
	})

	return validateInst
}

// validatePropertyValue checks that a property's raw value parses as the kind
// its identifier carries. The reported tag is "<kind>_value", e.g. color_value.
func validatePropertyValue(sl validator.StructLevel) {
	prop := sl.Current().Interface().(PropertyDoc)
	id, ok := style.ParseIdentifier(prop.Name)
	if !ok || prop.Value == "" {
		return
	}
	if _, err := ParseValue(id, string(prop.Value)); err != nil {
		sl.ReportError(prop.Value, "Value", "Value", id.Kind().String()+"_value", string(prop.Value))
	}
}

// isValidResourcePath performs syntactic validation of file paths without filesystem access
func isValidResourcePath(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	return !strings.Contains(path, "\x00")
}
