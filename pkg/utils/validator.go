package utils

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// iso8601Layouts are tried in order by ParseISO8601.
var iso8601Layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// MessageProvider lets a request struct supply its own error messages, keyed
// by "field.tag" or just "field".
type MessageProvider interface {
	ValidationMessages() map[string]string
}

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()

		// report json (or query) names instead of Go field names
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, key := range []string{"json", "query"} {
				name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})

		_ = validate.RegisterValidation("strongpassword", validateStrongPassword)
		_ = validate.RegisterValidation("iso8601", validateISO8601)
		_ = validate.RegisterValidation("bcryptlen", validateBcryptLength)
	})
	return validate
}

func ValidateStruct(s any) error {
	return getValidator().Struct(s)
}

// GetValidationErrors turns a validator error into field -> messages. The
// struct passed to ValidateStruct is consulted for custom messages when it
// implements MessageProvider.
func GetValidationErrors(err error, s any) map[string][]string {
	result := make(map[string][]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		if err != nil {
			result["_"] = []string{err.Error()}
		}
		return result
	}

	var messages map[string]string
	if provider, ok := s.(MessageProvider); ok {
		messages = provider.ValidationMessages()
	}

	for _, fe := range validationErrors {
		field := fe.Field()
		msg := lookupMessage(messages, field, fe.Tag())
		if !contains(result[field], msg) {
			result[field] = append(result[field], msg)
		}
	}
	return result
}

func lookupMessage(messages map[string]string, field, tag string) string {
	// element errors like tags[0] only use the base field message
	if base, _, indexed := strings.Cut(field, "["); indexed {
		if msg, ok := messages[base]; ok {
			return msg
		}
		return defaultMessage(base, tag)
	}
	if msg, ok := messages[field+"."+tag]; ok {
		return msg
	}
	if msg, ok := messages[field]; ok {
		return msg
	}
	return defaultMessage(field, tag)
}

func defaultMessage(field, tag string) string {
	switch tag {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return field + " has an unsupported value"
	default:
		return field + " is invalid"
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func validateStrongPassword(fl validator.FieldLevel) bool {
	var hasUpper, hasLower, hasDigit bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

// MaxPasswordBytes is the most bcrypt will hash; multi-byte characters count
// for more than one.
const MaxPasswordBytes = 72

func validateBcryptLength(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= MaxPasswordBytes
}

func validateISO8601(fl validator.FieldLevel) bool {
	_, err := ParseISO8601(fl.Field().String())
	return err == nil
}

// ParseISO8601 parses a date or date-time. Values without a zone are UTC.
func ParseISO8601(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range iso8601Layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
