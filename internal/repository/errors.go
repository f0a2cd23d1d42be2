package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrDuplicate indicates a write violated a unique constraint.
var ErrDuplicate = errors.New("duplicate record")

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	// drivers without error translation still report the constraint in the message
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key value") {
		return ErrDuplicate
	}
	return err
}
