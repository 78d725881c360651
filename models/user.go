package models

import (
	"errors"
	"time"
)

// Demo user display names.
const (
	demoDoctorName  = "Dr. Sarah Johnson"
	demoPatientName = "Priya Sharma"
	demoIDPrefix    = "demo-"
	demoEmailDomain = "@healthvault.demo"
)

// ErrIncompleteUser is returned by User.Validate when an identity field is
// empty.
var ErrIncompleteUser = errors.New("user record is incomplete")

// User is the identity the portal works with. It is created either by the
// demo login or from a backend profile, and is the JSON shape of the
// persisted session record.
type User struct {
	// ID is "demo-<phone>" for demo users or the backend profile id.
	ID string `json:"id"`

	// Name is the display name shown in the header and dashboards.
	Name string `json:"name"`

	// Phone is the 10-digit phone number.
	Phone string `json:"phone"`

	// Role decides which dashboard the user may see.
	Role Role `json:"role"`

	// Email is optional.
	Email string `json:"email,omitempty"`
}

// NewDemoUser builds the user a successful demo login produces.
func NewDemoUser(phone string) User {
	role := ClassifyPhone(phone)

	name := demoPatientName
	if role == RoleDoctor {
		name = demoDoctorName
	}

	return User{
		ID:    demoIDPrefix + phone,
		Name:  name,
		Phone: phone,
		Role:  role,
		Email: phone + demoEmailDomain,
	}
}

// IsDemo reports whether u came from the demo login.
func (u User) IsDemo() bool {
	return len(u.ID) > len(demoIDPrefix) && u.ID[:len(demoIDPrefix)] == demoIDPrefix
}

// Validate checks the invariants of a stored record: non-empty identity
// fields and a known role.
func (u User) Validate() error {
	if u.ID == "" || u.Name == "" || u.Phone == "" {
		return ErrIncompleteUser
	}

	if !u.Role.Valid() {
		return ErrInvalidRole
	}

	return nil
}

// Account is the server-side credential record.
// The password hash never leaves the server.
type Account struct {
	// ID is a UUID assigned on sign-up; profiles share it.
	ID string `json:"id"`

	// Email is the unique sign-in identifier.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
