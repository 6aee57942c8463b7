package config

import (
	apperrors "github.com/alexisbeaulieu97/timedbutton/pkg/errors"
)

// ValidateButton performs schema validation on a button configuration.
func ValidateButton(b *Button) error {
	if b == nil {
		return apperrors.NewValidationError("button", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(b); err != nil {
		return convertValidationError(err)
	}

	return nil
}
