package services

import (
	"shopapi/internal/models"
	"shopapi/internal/validators"
)

// addValidationErrors runs the field rules over target and records every
// violation as a BadRequest. Reports whether anything failed.
func addValidationErrors[T any](result *models.OperationResult[T], target any) bool {
	msgs := validators.Validate(target)
	for _, msg := range msgs {
		result.AddError(models.ErrBadRequest, msg)
	}
	return len(msgs) > 0
}

var passwordPolicy = validators.PasswordPolicy
