// Package validation runs struct-tag rules on request payloads and reports
// failures keyed by JSON field name.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Errors maps JSON field names to messages.
type Errors map[string]string

func (e Errors) Add(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

func (e Errors) Empty() bool {
	return len(e) == 0
}

var messages = map[string]string{
	"required": "The field '%s' is required.",
	"email":    "The field '%s' must be a valid email address.",
	"min":      "The field '%s' must be at least %s characters long.",
	"max":      "The field '%s' must be no longer than %s characters.",
	"gte":      "The field '%s' must be greater than or equal to %s.",
	"lte":      "The field '%s' must be less than or equal to %s.",
	"gt":       "The field '%s' must be greater than %s.",
	"oneof":    "The field '%s' must be one of [%s].",
	"phone":    "The field '%s' must contain 10 to 15 digits.",
	"notblank": "The field '%s' must not be blank.",
	"bcrypt":   "The field '%s' must not exceed 72 bytes.",
}

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

var phonePattern = regexp.MustCompile(`^[0-9]{10,15}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("bcrypt", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= MaxPasswordBytes
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Message renders the friendly text for a failed rule.
func Message(field, tag, param string) string {
	msg, ok := messages[tag]
	if !ok {
		return fmt.Sprintf("The field '%s' is invalid: %s.", field, tag)
	}
	if strings.Count(msg, "%s") == 2 {
		return fmt.Sprintf(msg, field, param)
	}
	return fmt.Sprintf(msg, field)
}

// Struct validates s and returns the failures, empty when s is valid.
func Struct(s any) Errors {
	errs := Errors{}
	err := validate.Struct(s)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs.Add("request", err.Error())
		return errs
	}
	for _, fe := range fieldErrs {
		errs.Add(fe.Field(), Message(fe.Field(), fe.Tag(), fe.Param()))
	}
	return errs
}

// RequirePositive records a failure unless d is present and greater than zero.
func RequirePositive(errs Errors, field string, d *decimal.Decimal) {
	if d == nil {
		errs.Add(field, Message(field, "required", ""))
		return
	}
	OptionalPositive(errs, field, d)
}

// OptionalPositive checks d only when it was supplied.
func OptionalPositive(errs Errors, field string, d *decimal.Decimal) {
	if d != nil && !d.IsPositive() {
		errs.Add(field, Message(field, "gt", "0"))
	}
}
