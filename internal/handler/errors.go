package handler

import (
	"errors"
	"fmt"

	"github.com/fakhrymubarak/weather-cli/internal/model"
	"github.com/fakhrymubarak/weather-cli/internal/repository"
)

var ErrInputRead = errors.New("input read failed")

// FatalError marks a condition the run cannot continue from. The process
// should report Message and exit with a non-zero status.
type FatalError struct {
	Message string
	Err     error
}

func (e *FatalError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err carries a FatalError.
func IsFatal(err error) bool {
	var fatal *FatalError
	return errors.As(err, &fatal)
}

// describe turns a recoverable lookup error into the text of the
// "Error:" line shown to the user.
func describe(err error) string {
	var apiErr *model.APIError
	switch {
	case errors.As(err, &apiErr):
		return fmt.Sprintf("la API respondió: %s (código %d)", apiErr.Message, apiErr.Code)
	case errors.Is(err, repository.ErrExternalAPI):
		return fmt.Sprintf("no se pudo conectar con la API: %v", err)
	case errors.Is(err, repository.ErrMalformedResponse):
		return fmt.Sprintf("respuesta inválida de la API: %v", err)
	default:
		return err.Error()
	}
}
