package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate *govalidator.Validate

	// trans is the singleton English translator for validation errors.
	trans ut.Translator
)

// Setup builds the validator instance with English translations.
// Call once during application startup.
func Setup() {
	validate = govalidator.New()

	// Use JSON tag name for field names in error messages.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// "notblank" rejects strings that are empty after trimming whitespace.
	_ = validate.RegisterValidation("notblank", func(fl govalidator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, trans)
	_ = validate.RegisterTranslation("notblank", trans,
		func(ut ut.Translator) error {
			return ut.Add("notblank", "{0} must not be blank", true)
		},
		func(ut ut.Translator, fe govalidator.FieldError) string {
			msg, _ := ut.T("notblank", fe.Field())
			return msg
		})
}

// Check validates a tagged struct. It returns nil on success or a map of
// field name → human-readable error message on failure. These failures
// short-circuit before any network call is made.
func Check(dst interface{}) map[string]string {
	if validate == nil {
		Setup()
	}
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}
	return TranslateErrors(err)
}

// TranslateErrors takes a validation error and returns a map of field name
// → human-readable error message. If the error is not a validation error,
// it returns a single-key map with "detail".
func TranslateErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(trans)
		}
		return fields
	}

	fields["detail"] = err.Error()
	return fields
}

// First returns one message from a field error map, for surfacing a single
// transient notification. Order is not significant.
func First(fields map[string]string) string {
	for _, msg := range fields {
		return msg
	}
	return ""
}
