package dto

import "strings"

type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=8,bcryptlen,strongpassword"`
	Name     *string `json:"name" validate:"omitempty,min=2,max=50"`
}

// Normalize trims input and lower-cases the email before validation. A blank
// name counts as no name.
func (r *RegisterRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		r.Name = &name
		if name == "" {
			r.Name = nil
		}
	}
}

func (r *RegisterRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"email":                   "Please provide a valid email address",
		"password.required":       "Password is required",
		"password.min":            "Password must be at least 8 characters long",
		"password.bcryptlen":      "Password must be at most 72 bytes long",
		"password.strongpassword": "Password must contain at least one lowercase letter, one uppercase letter, and one number",
		"name":                    "Name must be between 2 and 50 characters",
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
}

func (r *LoginRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"email":    "Please provide a valid email address",
		"password": "Password is required",
	}
}

// AuthResponse is the data payload of register and login.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type ProfileResponse struct {
	User UserResponse `json:"user"`
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
