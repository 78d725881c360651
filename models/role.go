// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// Role is the closed set of portal roles. The zero value is not a valid role.
type Role string

const (
	// RolePatient is assigned to every phone number except the demo doctor's.
	RolePatient Role = "patient"
	// RoleDoctor is assigned to the demo doctor number and to backend
	// profiles whose user_type is "doctor".
	RoleDoctor Role = "doctor"
)

// Demo authentication constants.
const (
	// DemoOTP is the only one-time code accepted by the demo login.
	DemoOTP = "123456"
	// DemoDoctorPhone is the phone number that logs in as a doctor.
	DemoDoctorPhone = "9876543210"
)

// ErrInvalidRole is returned by ParseRole for values outside the closed set.
var ErrInvalidRole = errors.New("invalid role")

// ParseRole converts an external value (a stored record, a backend
// user_type column) into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RolePatient, RoleDoctor:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RolePatient || r == RoleDoctor
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// ClassifyPhone returns the role a demo login with phone receives.
// It is the single source for both the login itself and the redirect that
// follows it.
func ClassifyPhone(phone string) Role {
	if phone == DemoDoctorPhone {
		return RoleDoctor
	}

	return RolePatient
}
