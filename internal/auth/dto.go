package auth

// RegisterRequest is the POST /auth/register body.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the POST /auth/login body. Only presence is validated here:
// a malformed email falls through to the credential check so the response
// stays indistinguishable from a wrong password.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public slice of an account. Email and the password hash
// are never echoed.
type UserResponse struct {
	Name string `json:"name"`
}

// TokenResponse is the body returned by register and login.
type TokenResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
