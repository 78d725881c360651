package validators

import (
	"context"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/health-vault/models"
)

// Field name constants used to specify which fields should be validated.
const (
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFullName  = "full_name"
	FieldPhone     = "phone"
	FieldUserType  = "user_type"
	FieldProfileID = "id"
	FieldUpdate    = "update"
	FieldDoctorID  = "doctor_id"
	FieldDate      = "date"
	FieldSlot      = "slot"
)

// DateLayout is the wire format of appointment dates.
const DateLayout = "2006-01-02"

const (
	minPasswordLen = 6
	maxPasswordLen = 72
	phoneLen       = 10
)

// RequestValidator implements the Validator interface for the portal's
// request models: SignUpRequest, SignInRequest, Profile, ProfileUpdate and
// BookAppointmentRequest.
//
// Both value and pointer forms are accepted. Optional field names restrict
// validation to a subset.
type RequestValidator struct {
}

// NewRequestValidator constructs a new RequestValidator
// and returns it as the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj.
// Returns ErrUnsupportedType for anything else.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUpRequest:
		return v.validateSignUp(value, fields...)
	case *models.SignUpRequest:
		return v.validateSignUp(*value, fields...)
	case models.SignInRequest:
		return v.validateSignIn(value, fields...)
	case *models.SignInRequest:
		return v.validateSignIn(*value, fields...)
	case models.Profile:
		return v.validateProfile(value, fields...)
	case *models.Profile:
		return v.validateProfile(*value, fields...)
	case models.ProfileUpdate:
		return v.validateProfileUpdate(value, fields...)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(*value, fields...)
	case models.BookAppointmentRequest:
		return v.validateBooking(value, fields...)
	case *models.BookAppointmentRequest:
		return v.validateBooking(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateSignUp(request models.SignUpRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldFullName, FieldPhone, FieldUserType}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldEmail:
			err = checkEmail(request.Email)
		case FieldPassword:
			err = checkPassword(request.Password)
		case FieldFullName:
			err = checkFullName(request.Data.FullName)
		case FieldPhone:
			err = checkPhone(request.Data.Phone)
		case FieldUserType:
			err = checkUserType(request.Data.UserType)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *RequestValidator) validateSignIn(request models.SignInRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := checkEmail(request.Email); err != nil {
				return err
			}
		case FieldPassword:
			// only presence: length rules may have changed since sign-up
			if request.Password == "" {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateProfile(profile models.Profile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProfileID, FieldFullName, FieldPhone, FieldUserType}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldProfileID:
			if strings.TrimSpace(profile.ID) == "" {
				err = ErrInvalidProfileID
			}
		case FieldFullName:
			err = checkFullName(profile.FullName)
		case FieldPhone:
			err = checkPhone(profile.Phone)
		case FieldUserType:
			err = checkUserType(profile.UserType)
		case FieldEmail:
			if profile.Email != "" {
				err = checkEmail(profile.Email)
			}
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *RequestValidator) validateProfileUpdate(update models.ProfileUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUpdate, FieldFullName, FieldPhone, FieldEmail}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUpdate:
			if update.IsEmpty() {
				err = ErrNoFieldsToUpdate
			}
		case FieldFullName:
			if update.FullName != nil {
				err = checkFullName(*update.FullName)
			}
		case FieldPhone:
			if update.Phone != nil {
				err = checkPhone(*update.Phone)
			}
		case FieldEmail:
			if update.Email != nil && *update.Email != "" {
				err = checkEmail(*update.Email)
			}
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *RequestValidator) validateBooking(request models.BookAppointmentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDoctorID, FieldDate, FieldSlot}
	}

	for _, f := range fields {
		switch f {
		case FieldDoctorID:
			if request.DoctorID <= 0 {
				return ErrInvalidDoctorID
			}
		case FieldDate:
			if _, err := time.Parse(DateLayout, request.Date); err != nil {
				return ErrInvalidDate
			}
		case FieldSlot:
			if strings.TrimSpace(request.Slot) == "" {
				return ErrInvalidSlot
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

func checkPassword(password string) error {
	n := utf8.RuneCountInString(password)
	if n < minPasswordLen || len(password) > maxPasswordLen {
		return ErrInvalidPassword
	}
	return nil
}

func checkFullName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidFullName
	}
	return nil
}

func checkPhone(phone string) error {
	if len(phone) != phoneLen {
		return ErrInvalidPhone
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return ErrInvalidPhone
		}
	}
	return nil
}

func checkUserType(userType string) error {
	if _, err := models.ParseRole(userType); err != nil {
		return ErrInvalidUserType
	}
	return nil
}
