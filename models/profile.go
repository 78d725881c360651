package models

// Profile is the backend's users row: display data plus the user type.
type Profile struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	UserType string `json:"user_type"`
	Email    string `json:"email,omitempty"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}

// ToUser converts the profile into a portal User. The user_type is validated
// here, on ingestion; an unknown value yields ErrInvalidRole.
func (p Profile) ToUser() (User, error) {
	role, err := ParseRole(p.UserType)
	if err != nil {
		return User{}, err
	}

	return User{
		ID:    p.ID,
		Name:  p.FullName,
		Phone: p.Phone,
		Role:  role,
		Email: p.Email,
	}, nil
}

// SignUpMetadata is the extra data sent along with a backend sign-up.
type SignUpMetadata struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	UserType string `json:"user_type"`
}

// ProfileUpdate carries the editable profile fields. Nil fields are left
// unchanged.
type ProfileUpdate struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u ProfileUpdate) IsEmpty() bool {
	return u.FullName == nil && u.Phone == nil && u.Email == nil
}
