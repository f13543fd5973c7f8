package apperrors

import (
	"net/http"
)

// Predefined errors and factories for the job-board domain. Repository
// sentinel errors get converted into these before they leave the services.

// ErrNotFound converts a repository not-found error into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrConflict is the generic conflict factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// --- auth ---

// ErrEmailAlreadyExists mirrors the original API: duplicate signup email is a 400.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already exists",
	http.StatusBadRequest,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid Credentials!",
	http.StatusBadRequest,
)

var ErrIncorrectPassword = New(
	CodeInvalidCredentials,
	"auth",
	"Incorrect Password",
	http.StatusBadRequest,
)

var ErrEmailNotVerified = New(
	CodeEmailNotVerified,
	"auth",
	"Email not verified. Please verify your email.",
	http.StatusBadRequest,
)

var ErrEmailAlreadyVerified = New(
	CodeInvalidOperation,
	"auth",
	"Email already verified",
	http.StatusBadRequest,
)

// ErrInvalidToken covers verification and password-reset tokens.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusBadRequest,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusBadRequest,
)

// --- jobs ---

var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

var ErrNotJobOwnerUpdate = New(
	CodeForbidden,
	"job",
	"You can only update your own jobs",
	http.StatusForbidden,
)

var ErrNotJobOwnerDelete = New(
	CodeForbidden,
	"job",
	"You can only delete your own jobs",
	http.StatusForbidden,
)

// --- applications ---

var ErrJobInactive = New(
	CodeInvalidStatus,
	"application",
	"This job is no longer active",
	http.StatusBadRequest,
)

var ErrAlreadyApplied = New(
	CodeConflict,
	"application",
	"You have already applied for this job",
	http.StatusBadRequest,
)

var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"Application not found",
	http.StatusNotFound,
)

var ErrInvalidApplicationStatus = New(
	CodeInvalidStatus,
	"application",
	"Invalid application status",
	http.StatusBadRequest,
)
