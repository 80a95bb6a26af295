// Package validation checks the project/contact details captured before a
// quotation is generated. Failures are data, not errors: the result is a
// field→message map the presentation layer renders inline.
package validation

import (
	"regexp"

	"gatequote/internal/models"

	"github.com/go-playground/validator/v10"
)

var (
	// Permissive phone shape: digits, spaces, +, -, parentheses, at
	// least 8 characters.
	phonePattern = regexp.MustCompile(`^[+0-9\s()-]{8,}$`)
	// local@domain.tld shape, nothing stricter.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for a blank tag or nil func.
	_ = v.RegisterValidation("quotephone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("quoteemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

// fieldKeys maps struct field names to the keys the presentation layer
// addresses form fields by.
var fieldKeys = map[string]string{
	"Name":         "name",
	"Location":     "location",
	"ContactName":  "contact_name",
	"ContactPhone": "contact_phone",
	"ContactEmail": "contact_email",
}

var messages = map[string]string{
	"Name.required":           "Project name is required",
	"Location.required":       "Installation location is required",
	"ContactName.required":    "Contact person name is required",
	"ContactPhone.required":   "Contact phone is required",
	"ContactPhone.quotephone": "Please enter a valid phone number",
	"ContactEmail.required":   "Contact email is required",
	"ContactEmail.quoteemail": "Please enter a valid email address",
}

// FieldErrors maps a form field key to its validation message. An empty map
// means the info is valid.
type FieldErrors map[string]string

// ProjectInfo validates the given info. Each rule is independent, so
// several fields can fail at once; per field only the first failing rule is
// reported. The installation date and notes are optional and never
// validated.
func ProjectInfo(info models.ProjectInfo) FieldErrors {
	errs := make(FieldErrors)

	err := validate.Struct(info)
	if err == nil {
		return errs
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Struct-level failures cannot happen for a plain value type;
		// treat anything unexpected as a generic form failure.
		errs["form"] = "Please check the entered details"
		return errs
	}

	for _, e := range validationErrors {
		key, known := fieldKeys[e.StructField()]
		if !known {
			continue
		}
		if msg, found := messages[e.StructField()+"."+e.Tag()]; found {
			errs[key] = msg
		}
	}
	return errs
}
