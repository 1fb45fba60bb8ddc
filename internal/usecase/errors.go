package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrConflict              = errors.New("conflict")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

var (
	ErrMissingScoringFields = fmt.Errorf("%w: missing required fields", ErrInvalidInput)
	ErrNoSeasonForLeague    = fmt.Errorf("%w: no season found for the current league", ErrInvalidInput)
)
