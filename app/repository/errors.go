package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Error taxonomy surfaced by every repository. Callers match with errors.Is
// and map to user-facing responses; repositories never recover locally.
var (
	// ErrNotFound aliases gorm.ErrRecordNotFound for convenience.
	ErrNotFound = gorm.ErrRecordNotFound

	// ErrConstraintViolation covers unique and not-null violations.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrForeignKeyViolation covers inserts/updates referencing a missing row.
	ErrForeignKeyViolation = errors.New("foreign key violation")

	// ErrValidation covers value-range failures (enum membership, required fields).
	ErrValidation = errors.New("validation error")

	// ErrCycleDetected is returned when a folder write would make the folder
	// its own ancestor. This is checked procedurally, not by the store.
	ErrCycleDetected = errors.New("folder cycle detected")
)

// translateError maps driver/GORM errors onto the repository taxonomy.
// Relies on gorm.Config{TranslateError: true} for duplicate-key and FK
// classification; not-null violations are matched on the driver message
// since neither MySQL nor SQLite translation covers them.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return fmt.Errorf("%w: %s", ErrValidation, verrs.Error())
	}
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %s", ErrConstraintViolation, err.Error())
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %s", ErrForeignKeyViolation, err.Error())
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "NOT NULL constraint failed"), // sqlite
		strings.Contains(msg, "cannot be null"): // mysql 1048
		return fmt.Errorf("%w: %s", ErrConstraintViolation, msg)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"), // sqlite
		strings.Contains(msg, "a foreign key constraint fails"): // mysql 1452
		return fmt.Errorf("%w: %s", ErrForeignKeyViolation, msg)
	}
	return err
}
