package main

import (
	"errors"

	"github.com/iota-uz/pharma-admin/pkg/crud"
	"github.com/iota-uz/pharma-admin/pkg/restclient"
	"github.com/iota-uz/pharma-admin/pkg/serrors"
)

type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string {
	return e.err.Error()
}

func (e *cliError) Unwrap() error {
	return e.err
}

const (
	exitOK         = 0
	exitFailure    = 1
	exitValidation = 2
	exitUsage      = 3
	exitAPI        = 4
	exitCancelled  = 5
)

func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &cliError{code: code, err: err}
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}
	var verrs serrors.ValidationErrors
	var apiErr *restclient.Error
	switch {
	case errors.As(err, &verrs):
		return exitValidation
	case errors.Is(err, crud.ErrCancelled):
		return exitCancelled
	case errors.Is(err, crud.ErrInvalidStatus), errors.Is(err, crud.ErrNoForm), errors.Is(err, crud.ErrRowNotFound),
		errors.Is(err, crud.ErrNoRow):
		return exitUsage
	case errors.As(err, &apiErr):
		return exitAPI
	}
	return exitFailure
}
