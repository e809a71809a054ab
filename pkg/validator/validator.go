package validator

import (
	"fmt"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
)

// Validator validates request structs using `validate` tags.
type Validator interface {
	Validate(interface{}) error
}

type validator struct {
	v *validatorv10.Validate
}

func New() Validator {
	return &validator{v: validatorv10.New(validatorv10.WithRequiredStructEnabled())}
}

func (val *validator) Validate(obj interface{}) error {
	err := val.v.Struct(obj)
	if err == nil {
		return nil
	}

	errs, ok := err.(validatorv10.ValidationErrors)
	if !ok {
		return err
	}

	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

func describe(fe validatorv10.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
