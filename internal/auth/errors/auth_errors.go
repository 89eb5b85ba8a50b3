package autherrors

import (
	"net/http"

	"github.com/paambaati/sqlary/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Credentials provided were incorrect; please try again!",
		http.StatusUnauthorized,
	)

	// Distinct from ErrInvalidCredentials: the credentials checked out, but
	// no API key has been provisioned for the user.
	ErrAPIKeyNotProvisioned = apperror.New(
		apperror.CodeNotFound,
		"No API key found for user; please generate one before proceeding!",
		http.StatusNotFound,
	)
)
