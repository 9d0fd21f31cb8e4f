// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"printhub/internal/domain/entity"
	"printhub/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator that knows the print domain enums and reports JSON field names.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}

		return field.Name
	})

	_ = v.RegisterValidation("paper_size", func(fl validator.FieldLevel) bool {
		return entity.PaperSize(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("color_mode", func(fl validator.FieldLevel) bool {
		return entity.ColorMode(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("order_status", func(fl validator.FieldLevel) bool {
		return entity.OrderStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("assignable_role", func(fl validator.FieldLevel) bool {
		return entity.Role(fl.Field().String()).IsValid()
	})

	return &CustomValidator{validate: v}
}

// Validate validates a bound request struct.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return &Error{cause: err}
	}

	return nil
}

// Error is a request validation failure.
type Error struct {
	cause error
}

func (e *Error) Error() string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(e.cause, &fieldErrs) {
		return e.cause.Error()
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}

	return strings.Join(msgs, "; ")
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Fields returns the failing field names mapped to their messages.
func (e *Error) Fields() map[string]string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(e.cause, &fieldErrs) {
		return nil
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = describe(fe)
	}

	return fields
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", fe.Field())
	case "paper_size", "color_mode", "order_status", "assignable_role":
		return fmt.Sprintf("%s has an unsupported value %q", fe.Field(), fe.Value())
	default:
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
}
