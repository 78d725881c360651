package models

// SignUpRequest is the body of POST /api/auth/signup.
type SignUpRequest struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Data     SignUpMetadata `json:"data"`
}

// SignInRequest is the body of POST /api/auth/signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}
