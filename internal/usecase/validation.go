package usecase

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"

	domainErrors "github.com/vitrine/catalog/internal/domain/errors"
)

// ValidateProduct checks the product constraints: name at least 3 characters,
// description non-empty, quantity at least 1, price at least 0.01. Fields are
// checked in a fixed order so the first violated constraint is the one reported.
func ValidateProduct(name, description string, quantity int, price float64) error {
	checks := []struct {
		field string
		err   error
	}{
		{"name", validation.Validate(name, validation.Required, validation.RuneLength(3, 0))},
		{"description", validation.Validate(description, validation.Required)},
		{"quantity", validation.Validate(quantity, validation.Required, validation.Min(1))},
		{"price", validation.Validate(price, validation.Required, validation.Min(0.01))},
	}

	for _, c := range checks {
		if c.err != nil {
			return fmt.Errorf("%w: %s %s", domainErrors.ErrValidation, c.field, c.err)
		}
	}
	return nil
}
