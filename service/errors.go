package service

import (
	"errors"
	"fmt"
)

var (
	ErrFailedValidation = errors.New("failed validation")
	ErrRecordNotFound   = errors.New("record not found")
	ErrEditConflict     = errors.New("edit conflict")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrNotPermitted     = errors.New("not permitted")
	ErrSelfVote         = errors.New("cannot vote on own review")
)

// failedValidation converts a validator error map into a single error that
// wraps ErrFailedValidation, so callers can match the sentinel while the
// message still carries the field-level reasons.
func (s *service) failedValidation(errorMap map[string]string) error {
	err := ErrFailedValidation
	for k, v := range errorMap {
		err = fmt.Errorf("%w; %q %s", err, k, v)
	}
	return err
}
