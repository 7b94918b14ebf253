package api

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/lueurxax/tastelog/internal/core/domain"
	"github.com/lueurxax/tastelog/internal/core/errors"
)

const tagSakeType = "saketype"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator returns the shared validator with the sake type rule registered.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}

			return name
		})

		//nolint:errcheck // registration only fails on an empty tag
		_ = validate.RegisterValidation(tagSakeType, func(fl validator.FieldLevel) bool {
			return domain.SakeType(fl.Field().String()).Valid()
		})
	})

	return validate
}

var errorMessageTemplates = map[string]string{
	"required":  "%s is required",
	tagSakeType: "%s must be a known sake classification",
}

var errorMessageWithParam = map[string]string{
	"min": "%s must be at least %s",
	"max": "%s must be at most %s",
}

// validateRequest returns a single message describing every failed field,
// or an empty string when v is valid.
func validateRequest(v interface{}) string {
	err := getValidator().Struct(v)
	if err == nil {
		return ""
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, translateError(fe))
	}

	return strings.Join(messages, "; ")
}

func translateError(fe validator.FieldError) string {
	if template, ok := errorMessageTemplates[fe.Tag()]; ok {
		return fmt.Sprintf(template, fe.Field())
	}

	if template, ok := errorMessageWithParam[fe.Tag()]; ok {
		return fmt.Sprintf(template, fe.Field(), fe.Param())
	}

	return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
}
