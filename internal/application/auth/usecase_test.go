package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equitycoffee/equity-coffee-api/internal/application/dto"
	"github.com/equitycoffee/equity-coffee-api/internal/domain"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de UserRepository en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID       map[string]*entity.User
	touchCalls int
	touchFails bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.byID {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.byID[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdatePassword(id, passwordHash string) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) TouchLastLogin(id string) error {
	r.touchCalls++
	if r.touchFails {
		return assert.AnError
	}
	return nil
}

func newTestUseCase(repo *fakeUserRepo, devMode bool) *AuthUseCase {
	return NewAuthUseCase(repo, NewMemoryResetStore(), JWTConfig{
		Secret:  "test-secret-key-for-unit-tests",
		ExpDays: 7,
		Issuer:  "equity-coffee-test",
	}, devMode)
}

func registerReq(email, role string) dto.RegisterRequest {
	return dto.RegisterRequest{Email: email, Password: "super-segura-123", Role: role}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_NormalizaEmailYDevuelveToken(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo(), false)

	out, err := uc.Register(registerReq("  Maria@Finca.CO ", "farmer"))
	require.NoError(t, err)

	assert.Equal(t, "maria@finca.co", out.User.Email, "el email debe persistirse normalizado")
	assert.Equal(t, "farmer", out.User.Role)
	assert.NotEmpty(t, out.User.ID)
	assert.NotEmpty(t, out.Token, "el registro debe emitir un JWT")
}

func TestRegister_DuplicadoCaseInsensitive_RetornaConflicto(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo(), false)

	_, err := uc.Register(registerReq("maria@finca.co", "farmer"))
	require.NoError(t, err)

	_, err = uc.Register(registerReq("MARIA@FINCA.CO", "farmer"))
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists,
		"el mismo email con otras mayúsculas debe chocar con el existente")
}

func TestRegister_RolInvalido_RetornaValidacion(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo(), false)

	_, err := uc.Register(registerReq("alguien@x.co", "barista"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo, false)

	_, err := uc.Register(registerReq("trader@x.co", "trader"))
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "Trader@X.CO", Password: "super-segura-123"})
	require.NoError(t, err)
	assert.Equal(t, "trader@x.co", out.User.Email)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, 1, repo.touchCalls, "el login debe tocar last_login_at")
}

func TestLogin_PasswordIncorrecta_Retorna401(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo(), false)

	_, err := uc.Register(registerReq("trader@x.co", "trader"))
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "trader@x.co", Password: "otra-cosa"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailDesconocido_MismoError(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo(), false)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@x.co", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"email desconocido y password mala deben responder igual")
}

func TestLogin_FallaTouchLastLogin_NoAfectaElLogin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo, false)

	_, err := uc.Register(registerReq("trader@x.co", "trader"))
	require.NoError(t, err)

	repo.touchFails = true
	out, err := uc.Login(dto.LoginRequest{Email: "trader@x.co", Password: "super-segura-123"})
	require.NoError(t, err, "un fallo al actualizar last_login_at no debe romper el login")
	assert.NotEmpty(t, out.Token)
}

// ──────────────────────────────────────────────────────────────────────────────
// Forgot / Reset password
// ──────────────────────────────────────────────────────────────────────────────

func TestForgotPassword_RespuestaNeutraSiNoExiste(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo(), true)

	out, err := uc.ForgotPassword(dto.ForgotPasswordRequest{Email: "nadie@x.co"})
	require.NoError(t, err)
	assert.Equal(t, neutralResetMessage, out.Message)
	assert.Empty(t, out.Token, "sin cuenta no debe emitirse token ni en development")
}

func TestResetPassword_FlujoCompletoYSegundoConsumoFalla(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo, true) // devMode: el token viaja en la respuesta

	_, err := uc.Register(registerReq("maria@finca.co", "farmer"))
	require.NoError(t, err)

	out, err := uc.ForgotPassword(dto.ForgotPasswordRequest{Email: "maria@finca.co"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token, "en development el token debe viajar en la respuesta")

	err = uc.ResetPassword(dto.ResetPasswordRequest{Token: out.Token, NewPassword: "nueva-clave-123"})
	require.NoError(t, err)

	// La contraseña nueva abre sesión; la vieja ya no.
	_, err = uc.Login(dto.LoginRequest{Email: "maria@finca.co", Password: "nueva-clave-123"})
	assert.NoError(t, err)
	_, err = uc.Login(dto.LoginRequest{Email: "maria@finca.co", Password: "super-segura-123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Un token de reset es de un solo uso.
	err = uc.ResetPassword(dto.ResetPasswordRequest{Token: out.Token, NewPassword: "otra-mas"})
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestResetPassword_TokenInventado_RetornaInvalido(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo(), false)

	err := uc.ResetPassword(dto.ResetPasswordRequest{Token: "deadbeef", NewPassword: "nueva-clave-123"})
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
