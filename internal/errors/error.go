package errors

import (
	"errors"
	"fmt"
)

var (
	ErrParse         = errors.New("game record could not be parsed")
	ErrEmptyRecord   = errors.New("game record is empty")
	ErrPersistence   = errors.New("state persistence failed")
	ErrStateNotFound = errors.New("persisted state was not found")
	ErrStateCorrupt  = errors.New("persisted state is corrupt")
	ErrGameNotFound  = errors.New("game not found")
	ErrInternal      = errors.New("internal error")
)

// ParseError is returned when the rules engine rejects a game record.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", ErrParse, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// PersistenceError wraps a failed read or write of the state blob.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s (%s): %v", ErrPersistence, e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }
