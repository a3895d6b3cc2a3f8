package cli

import "github.com/charmbracelet/huh"

// dateInput returns a huh.Input for an optional date field with YYYY-MM-DD validation.
func dateInput(title, placeholder string, value *string) *huh.Input {
	if placeholder == "" {
		placeholder = "2025-06-30"
	}
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateOptionalDate)
}

// amountInput returns a huh.Input for a decimal goal value.
func amountInput(title, placeholder string, value *string, required bool) *huh.Input {
	validate := validateNonNegativeAmount
	if required {
		validate = validatePositiveAmount
	}
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validate)
}
