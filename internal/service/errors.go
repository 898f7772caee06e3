package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"carrental/internal/repository"
)

// ErrInvalidCredentials is returned for both unknown e-mails and wrong
// passwords so callers cannot tell the two apart.
var ErrInvalidCredentials = errors.New("Invalid email or password.")

// NotFoundError names the missing record. Field is the lookup key and
// defaults to "id".
type NotFoundError struct {
	Entity string
	ID     any
	Field  string
}

func (e *NotFoundError) Error() string {
	field := e.Field
	if field == "" {
		field = "id"
	}
	return fmt.Sprintf("%s not found with %s: %v", e.Entity, field, e.ID)
}

func notFound(entity string, id any) error {
	return &NotFoundError{Entity: entity, ID: id}
}

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func conflict(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// ValidationError maps request field names to messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func invalid(field, msg string) error {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// translate turns storage errors into domain errors. Unique violations that
// slipped past the pre-checks surface as the same conflict a pre-check gives.
func translate(err error, entity string, id any, conflictMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return notFound(entity, id)
	case errors.Is(err, repository.ErrDuplicate):
		return &ConflictError{Message: conflictMsg}
	case errors.Is(err, repository.ErrReferenced):
		if id == nil {
			return conflict("%s refers to a record that no longer exists", entity)
		}
		return conflict("%s with id %v is still referenced by other records", entity, id)
	default:
		return err
	}
}
