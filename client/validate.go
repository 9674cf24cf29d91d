package client

import (
	"fmt"

	"github.com/google/uuid"
)

// ValidateID validates that a path parameter is a well-formed UUID. Used for
// table, reservation, payment, notification, order and menu-item identifiers.
func ValidateID(id, fieldName string) error {
	if id == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%s must be a valid UUID", fieldName)
	}
	return nil
}

func requireField(value, fieldName string) error {
	if value == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}

var errAmountRequired = fmt.Errorf("amount must be positive")
