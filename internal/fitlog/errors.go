package fitlog

import "errors"

var (
	// ErrAuthenticationRequired is returned by remote writes when no user
	// identity can be resolved for the request.
	ErrAuthenticationRequired = errors.New("authentication required")

	ErrWorkoutNotFound = errors.New("workout not found")
	ErrProfileNotFound = errors.New("profile not found")

	// ErrDuplicateProfileName guards the case-insensitive uniqueness of
	// profile names within one account / local install.
	ErrDuplicateProfileName = errors.New("profile with this name already exists")

	ErrLastProfile = errors.New("cannot delete the last profile")

	ErrDuplicateExerciseID = errors.New("exercise with this id already exists")

	// ErrUnsupportedOperation marks profile mutations that have no meaning
	// for account-backed profiles, e.g. deleting the account's profile.
	ErrUnsupportedOperation = errors.New("operation not supported for account profiles")
)
