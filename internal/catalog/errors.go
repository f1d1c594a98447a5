package catalog

import (
	"errors"
	"fmt"

	"eatz-backend/internal/models"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrInvalidState = errors.New("invalid state")
	ErrNotFound     = errors.New("not found")
)

// ValidationError reports a rejected menu or proposal submission.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// InvalidStateError reports a transition attempted on a proposal that is no longer Pending.
type InvalidStateError struct {
	ProposalID uint
	Status     models.ProposalStatus
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("proposal %d is %s, only Pending proposals can change", e.ProposalID, e.Status)
}

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }

type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
