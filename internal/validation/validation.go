// Package validation checks submitted venue, artist and show forms.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"fyyur/internal/models"
)

// ErrInvalid is matched by every *Error.
var ErrInvalid = errors.New("invalid submission")

// FieldError names one field that failed a rule.
type FieldError struct {
	Field string
	Rule  string
}

// Error is returned when a submission fails one or more field rules.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return "invalid fields: " + strings.Join(names, ", ")
}

func (e *Error) Unwrap() error { return ErrInvalid }

// Has reports whether field failed validation.
func (e *Error) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

var phonePattern = regexp.MustCompile(`^[0-9]{3}-?[0-9]{3}-?[0-9]{4}$`)

// States lists the accepted two-letter state codes.
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

// Validator wraps a configured validator instance. It is safe for
// concurrent use.
type Validator struct {
	v *validator.Validate
}

// New builds a Validator with the phone, state and genre rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	states := make(map[string]bool, len(States))
	for _, s := range States {
		states[s] = true
	}
	_ = v.RegisterValidation("state", func(fl validator.FieldLevel) bool {
		return states[fl.Field().String()]
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	genres := make(map[string]bool, len(models.Genres))
	for _, g := range models.Genres {
		genres[g] = true
	}
	_ = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return genres[fl.Field().String()]
	})

	return &Validator{v: v}
}

// Struct validates s against its struct tags. Rule failures are returned
// as *Error; anything else is returned unchanged.
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return out
}
