// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrMismatchedPassword is returned by Compare on a wrong password.
	ErrMismatchedPassword = errors.New("password does not match")

	// ErrPasswordTooLong is returned by Hash for passwords over 72 bytes.
	ErrPasswordTooLong = errors.New("password is too long")
)

// bcryptHasher is the private implementation of [PasswordHasher].
type bcryptHasher struct {
	// cost is the bcrypt work factor. Tests lower it to bcrypt.MinCost.
	cost int
}

// NewPasswordHasher constructs a [PasswordHasher] backed by bcrypt with the
// library's default cost (10).
func NewPasswordHasher() PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

// NewPasswordHasherWithCost is NewPasswordHasher with an explicit work
// factor. Values outside bcrypt's range fall back to the default.
func NewPasswordHasherWithCost(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash implements [PasswordHasher].
func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// Compare implements [PasswordHasher].
func (h *bcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatchedPassword
	}
	if err != nil {
		return fmt.Errorf("error comparing password hash: %w", err)
	}

	return nil
}
