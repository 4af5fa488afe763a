package service

import (
	"database/sql"
	"errors"
	"fmt"

	"diaryapi/internal/validation"
)

var (
	// ErrNotFound matches every NotFoundError via errors.Is.
	ErrNotFound = errors.New("not found")
	// ErrBadInput matches every BadInputError via errors.Is.
	ErrBadInput = errors.New("bad input")
)

// NotFoundError reports that the requested record is absent from the store.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// BadInputError reports a validation failure. Field names the first offending
// field; Fields carries every failure for the response body.
type BadInputError struct {
	Field  string
	Fields validation.Errors
}

func (e *BadInputError) Error() string {
	return fmt.Sprintf("bad input: %s", e.Field)
}

func (e *BadInputError) Is(target error) bool {
	return target == ErrBadInput
}

// validate runs payload validation and converts rule failures into a BadInputError.
func validate(payload any) error {
	err := validation.Struct(payload)
	if err == nil {
		return nil
	}
	var verrs validation.Errors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &BadInputError{Field: verrs[0].Field, Fields: verrs}
	}
	return fmt.Errorf("validate payload: %w", err)
}

// notFound translates the repository's sql.ErrNoRows into a NotFoundError.
func notFound(err error, resource string, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return &NotFoundError{Resource: resource, ID: id}
	}
	return err
}
