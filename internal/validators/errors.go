package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidPassword  = errors.New("password must be between 6 and 72 characters")
	ErrInvalidFullName  = errors.New("full name is required")
	ErrInvalidPhone     = errors.New("phone must be exactly 10 digits")
	ErrInvalidUserType  = errors.New("user type must be patient or doctor")
	ErrInvalidProfileID = errors.New("invalid profile id")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrInvalidDoctorID  = errors.New("invalid doctor id")
	ErrInvalidDate      = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidSlot      = errors.New("slot is required")
)
