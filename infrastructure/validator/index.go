package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	validate.RegisterValidation("password", validatePasswordStrength)
	validate.RegisterValidation("name_special_char", validateNameWithSpecialChars)
}

type Validator struct{}

func (v *Validator) ValidateStruct(payload interface{}) *[]error {
	return validateStruct(payload)
}

func (v *Validator) ValidateValue(value any, rules string) error {
	return validate.Var(value, rules)
}

var ValidatorInstance = Validator{}

func validateStruct(payload interface{}) *[]error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		errs := []error{err}
		return &errs
	}
	errs := []error{}
	for _, fieldErr := range err.(validator.ValidationErrors) {
		errs = append(errs, fmt.Errorf("%s failed validation for rule %s", fieldErr.Field(), fieldErr.Tag()))
	}
	return &errs
}
