package auth

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/equitycoffee/equity-coffee-api/internal/application/dto"
	"github.com/equitycoffee/equity-coffee-api/internal/domain"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/entity"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/repository"
	"github.com/equitycoffee/equity-coffee-api/pkg/jwt"
)

const (
	bcryptCost = 12
	resetTTL   = time.Hour
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret  string
	ExpDays int
	Issuer  string
}

// AuthUseCase casos de uso de autenticación: registro, login, perfil y
// restablecimiento de contraseña.
type AuthUseCase struct {
	userRepo repository.UserRepository
	resets   ResetTokenStore
	jwtCfg   JWTConfig
	devMode  bool // en development el token de reset viaja en la respuesta
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, resets ResetTokenStore, jwtCfg JWTConfig, devMode bool) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, resets: resets, jwtCfg: jwtCfg, devMode: devMode}
}

// NormalizeEmail aplica la normalización canónica de emails: trim + minúsculas.
// Toda búsqueda y escritura de email pasa por aquí.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register crea una cuenta: valida el rol, normaliza el email, hashea la
// contraseña con bcrypt y persiste. Devuelve ErrEmailAlreadyExists si el
// email normalizado ya está registrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	email := NormalizeEmail(in.Email)

	existing, _ := uc.userRepo.GetByEmail(email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         in.Role,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		CompanyName:  in.CompanyName,
		Country:      in.Country,
		Phone:        in.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// El constraint único de la tabla cubre la carrera entre el chequeo de
	// arriba y este insert (el repo lo traduce a ErrEmailAlreadyExists).
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpDays)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Message: "Account created",
		User:    *toUserResponse(user),
		Token:   token,
	}, nil
}

// Login verifica email/password y genera el JWT. Email desconocido y
// contraseña incorrecta responden igual: ErrUnauthorized.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(NormalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	// last_login_at es informativo: si falla, el login igual procede.
	if err := uc.userRepo.TouchLastLogin(user.ID); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("no se pudo actualizar last_login_at")
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpDays)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Message: "Login successful",
		User:    *toUserResponse(user),
		Token:   token,
	}, nil
}

// Me devuelve el usuario autenticado, o ErrUserNotFound si ya no existe.
func (uc *AuthUseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

const neutralResetMessage = "If that email exists, reset instructions were sent."

// ForgotPassword emite un token de reset con TTL de una hora. La respuesta
// es neutra exista o no el email, para no filtrar cuentas registradas.
func (uc *AuthUseCase) ForgotPassword(in dto.ForgotPasswordRequest) (*dto.ForgotPasswordResponse, error) {
	out := &dto.ForgotPasswordResponse{Message: neutralResetMessage}
	if in.Email == "" {
		return out, nil
	}
	user, err := uc.userRepo.GetByEmail(NormalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return out, nil
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	token := hex.EncodeToString(buf)
	uc.resets.Save(token, user.ID, resetTTL)

	log.Info().Str("email", user.Email).Msg("token de reset de contraseña emitido")
	if uc.devMode {
		out.Token = token
	}
	return out, nil
}

// ResetPassword consume un token de reset (un solo uso) y reemplaza el hash
// de credenciales. Token desconocido, expirado o ya usado: ErrInvalidToken.
func (uc *AuthUseCase) ResetPassword(in dto.ResetPasswordRequest) error {
	userID, ok := uc.resets.Consume(in.Token)
	if !ok {
		return domain.ErrInvalidToken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcryptCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(userID, string(hash))
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Role:        u.Role,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		CompanyName: u.CompanyName,
		Country:     u.Country,
		Phone:       u.Phone,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}
