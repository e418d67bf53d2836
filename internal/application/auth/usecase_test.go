package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/fabrica-api/internal/application/auth"
	"github.com/tu-usuario/fabrica-api/internal/application/dto"
	"github.com/tu-usuario/fabrica-api/internal/domain"
	"github.com/tu-usuario/fabrica-api/pkg/jwt"
)

const (
	testPin    = "2025"
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "fabrica-api-test"
)

func newUseCase(cfg auth.Config) *auth.AuthUseCase {
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = testSecret
	}
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = testIssuer
	}
	if cfg.ExpMinutes == 0 {
		cfg.ExpMinutes = 60
	}
	return auth.NewAuthUseCase(cfg)
}

// PIN correcto en claro → sesión nueva con token parseable y claims coherentes.
func TestLogin_PinCorrecto(t *testing.T) {
	uc := newUseCase(auth.Config{Pin: testPin})

	resp, err := uc.Login(dto.LoginRequest{Pin: testPin, Actor: "Lucía"})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.SessionID)
	assert.False(t, resp.ExpiresAt.IsZero())

	sessionID, actor, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err, "el token emitido debe ser parseable con el mismo secret")
	assert.Equal(t, resp.SessionID, sessionID)
	assert.Equal(t, "Lucía", actor)
}

// Sin etiqueta de actor se usa la etiqueta por defecto.
func TestLogin_ActorPorDefecto(t *testing.T) {
	uc := newUseCase(auth.Config{Pin: testPin})

	resp, err := uc.Login(dto.LoginRequest{Pin: testPin})
	require.NoError(t, err)

	_, actor, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "Admin", actor)
}

// Cada login abre una sesión distinta.
func TestLogin_SesionesIndependientes(t *testing.T) {
	uc := newUseCase(auth.Config{Pin: testPin})

	a, err := uc.Login(dto.LoginRequest{Pin: testPin})
	require.NoError(t, err)
	b, err := uc.Login(dto.LoginRequest{Pin: testPin})
	require.NoError(t, err)

	assert.NotEqual(t, a.SessionID, b.SessionID, "cada login debe generar su propio session_id")
}

// PIN incorrecto o vacío → ErrInvalidPin, sin token.
func TestLogin_PinIncorrecto(t *testing.T) {
	uc := newUseCase(auth.Config{Pin: testPin})

	_, err := uc.Login(dto.LoginRequest{Pin: "0000"})
	assert.ErrorIs(t, err, domain.ErrInvalidPin)

	_, err = uc.Login(dto.LoginRequest{Pin: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidPin)
}

// Con hash bcrypt configurado, el hash manda y el PIN en claro se ignora.
func TestLogin_PinHashTienePrioridad(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("9184"), bcrypt.MinCost)
	require.NoError(t, err)
	uc := newUseCase(auth.Config{Pin: testPin, PinHash: string(hash)})

	_, err = uc.Login(dto.LoginRequest{Pin: "9184"})
	assert.NoError(t, err, "el PIN que coincide con el hash debe entrar")

	_, err = uc.Login(dto.LoginRequest{Pin: testPin})
	assert.ErrorIs(t, err, domain.ErrInvalidPin, "el PIN en claro se ignora cuando hay hash")
}
