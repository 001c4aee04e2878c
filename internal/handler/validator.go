package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/RogueMods_Go/internal/settings"
)

// Validator validates request structs and reports fields by their JSON names
type Validator struct {
	validate *validator.Validate
}

var (
	validatorOnce sync.Once
	validate      *Validator
)

// GetValidator returns the shared validator, building it on first use
func GetValidator() *Validator {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("setting_key", validateSettingKey)
		validate = &Validator{validate: v}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// messages maps a failed tag to the text shown to clients. Tags with a
// parameter take it as the single format argument.
var messages = map[string]string{
	"required":    "This field is required",
	"setting_key": "Unknown setting",
	"max":         "Must be at most %s",
	"min":         "Must be at least %s",
	"excludesall": "Contains invalid characters",
}

// FormatValidationError maps each failed field path, such as "party[1].level",
// to a message
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"error": "Invalid request format"}
	}

	errs := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		// drop the top level struct name
		_, field, _ := strings.Cut(e.Namespace(), ".")
		msg, ok := messages[e.Tag()]
		switch {
		case !ok:
			msg = "Invalid value"
		case strings.Contains(msg, "%s"):
			msg = fmt.Sprintf(msg, e.Param())
		}
		errs[field] = msg
	}
	return errs
}

func validateSettingKey(fl validator.FieldLevel) bool {
	return settings.Index(settings.Key(strings.ToUpper(fl.Field().String()))) >= 0
}
