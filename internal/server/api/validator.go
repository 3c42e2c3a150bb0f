package api

import "github.com/dmitrijs2005/pizzastore/internal/validation"

// echoValidator lets handlers call c.Validate(req). Failures are
// *validation.Error, which the error handler turns into a 400.
type echoValidator struct{}

func NewValidator() *echoValidator {
	return &echoValidator{}
}

func (echoValidator) Validate(i any) error {
	return validation.Struct(i, nil)
}
