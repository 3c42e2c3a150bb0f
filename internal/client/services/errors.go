package services

import (
	"errors"

	"github.com/dmitrijs2005/pizzastore/internal/client/client"
	"github.com/dmitrijs2005/pizzastore/internal/validation"
)

// ErrSubmissionInProgress is returned when a login or registration is
// submitted while another one is still waiting for the backend.
var ErrSubmissionInProgress = errors.New("a request is already in progress")

// IdentifyFailedMessage is shown whenever the account type lookup fails.
const IdentifyFailedMessage = "Could not verify email address."

// IdentificationError means the backend could not tell which kind of
// account an email belongs to. Sign-in is never attempted after it.
type IdentificationError struct {
	Err error
}

func (e *IdentificationError) Error() string { return IdentifyFailedMessage }

func (e *IdentificationError) Unwrap() error { return e.Err }

// UserError pairs an underlying failure with the text shown to the user.
type UserError struct {
	Message string
	Err     error
}

func (e *UserError) Error() string { return e.Message }

func (e *UserError) Unwrap() error { return e.Err }

// DisplayMessage returns the one line to show for err. Backend-provided
// messages win over fallback; nil yields "".
func DisplayMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var ue *UserError
	if errors.As(err, &ue) && ue.Message != "" {
		return ue.Message
	}
	var ie *IdentificationError
	if errors.As(err, &ie) {
		return IdentifyFailedMessage
	}
	var ve *validation.Error
	if errors.As(err, &ve) && ve.Message != "" {
		return ve.Message
	}
	var ae *client.APIError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	if errors.Is(err, ErrSubmissionInProgress) {
		return "Please wait for the current request to finish."
	}
	return fallback
}

// withFallback wraps err so that DisplayMessage yields the backend message
// when there is one and fallback otherwise.
func withFallback(err error, fallback string) error {
	if err == nil {
		return nil
	}
	return &UserError{Message: DisplayMessage(err, fallback), Err: err}
}
