package dto

import "time"

// RegisterRequest entrada para registro: email, password y role obligatorios.
type RegisterRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	Role        string  `json:"role" validate:"required,oneof=farmer trader logistics roaster admin educator"`
	FirstName   *string `json:"firstName" validate:"omitempty,max=100"`
	LastName    *string `json:"lastName" validate:"omitempty,max=100"`
	CompanyName *string `json:"companyName" validate:"omitempty,max=200"`
	Country     *string `json:"country" validate:"omitempty,max=100"`
	Phone       *string `json:"phone" validate:"omitempty,max=50"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	FirstName   *string    `json:"first_name"`
	LastName    *string    `json:"last_name"`
	CompanyName *string    `json:"company_name"`
	Country     *string    `json:"country"`
	Phone       *string    `json:"phone"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// AuthResponse salida de registro/login: usuario + token JWT.
type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// MeResponse envoltura de GET /api/auth/me.
type MeResponse struct {
	User UserResponse `json:"user"`
}

// ForgotPasswordRequest entrada para solicitar reset de contraseña.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPasswordResponse respuesta neutra: no revela si el email existe.
// Token solo viaja en development para facilitar pruebas manuales.
type ForgotPasswordResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// ResetPasswordRequest entrada para consumir un token de reset.
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}
