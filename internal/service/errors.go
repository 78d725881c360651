package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrAccessDenied        = errors.New("access to a different user's data denied")
	ErrOnlyPatientsCanBook = errors.New("only patients can book appointments")
	ErrSlotUnavailable     = errors.New("slot is not offered by the doctor")
)

// Client-side errors.
var (
	// ErrInvalidProfile is logged when a backend profile carries a user_type
	// outside the known roles. The session then has no current user.
	ErrInvalidProfile = errors.New("backend profile has an invalid user type")

	// ErrNoBackendSession is returned by portal operations that need a
	// signed-in backend account.
	ErrNoBackendSession = errors.New("no backend session")

	ErrSignUpOnServer = errors.New("sign up on server failed")
	ErrSignInOnServer = errors.New("sign in on server failed")

	ErrNotSignedIn = errors.New("no user is signed in")

	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
)
