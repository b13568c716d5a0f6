package services

import (
	"fmt"

	"github.com/pkg/errors"

	"scene-service/internal/repository"
	"scene-service/internal/validation"
)

// NotFoundError reports that no entity of Kind exists with the requested id.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Kind)
}

// InputError reports a malformed or incomplete request.
type InputError struct {
	Message string
	Fields  []validation.FieldError
}

func (e *InputError) Error() string {
	return e.Message
}

// NewInputError builds an InputError without field details.
func NewInputError(format string, args ...interface{}) *InputError {
	return &InputError{Message: fmt.Sprintf(format, args...)}
}

func validate(s interface{}) error {
	if verr := validation.ValidateStruct(s); verr != nil {
		return &InputError{Message: verr.Error(), Fields: verr.Fields}
	}
	return nil
}

// notFoundOr converts a repository miss into a NotFoundError and passes any other error through.
func notFoundOr(err error, kind, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{Kind: kind, ID: id}
	}
	return err
}
