// Package auth contiene el caso de uso de autenticación por PIN: la planta
// comparte un PIN de acceso y cada login abre una sesión con su propio ID y
// etiqueta de actor para la trazabilidad de los registros.
package auth

import (
	"crypto/subtle"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/fabrica-api/internal/application/dto"
	"github.com/tu-usuario/fabrica-api/internal/domain"
	"github.com/tu-usuario/fabrica-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// defaultActor etiqueta de actor cuando el login no indica una.
const defaultActor = "Admin"

// Config credenciales y parámetros de emisión de tokens.
// Si PinHash (bcrypt) está presente tiene prioridad sobre Pin en claro.
type Config struct {
	Pin        string
	PinHash    string
	JWTSecret  string
	JWTIssuer  string
	ExpMinutes int
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	cfg Config
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(cfg Config) *AuthUseCase {
	return &AuthUseCase{cfg: cfg}
}

// Login verifica el PIN y abre una sesión: genera un session_id nuevo y un JWT
// con el session_id y el actor como claims. PIN incorrecto → ErrInvalidPin.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if !uc.verifyPin(in.Pin) {
		return nil, domain.ErrInvalidPin
	}

	actor := in.Actor
	if actor == "" {
		actor = defaultActor
	}
	sessionID := uuid.New().String()

	token, err := jwt.Generate(uc.cfg.JWTSecret, sessionID, actor, uc.cfg.JWTIssuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		SessionID: sessionID,
		ExpiresAt: time.Now().Add(time.Duration(uc.cfg.ExpMinutes) * time.Minute),
	}, nil
}

func (uc *AuthUseCase) verifyPin(pin string) bool {
	if pin == "" {
		return false
	}
	if uc.cfg.PinHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(uc.cfg.PinHash), []byte(pin)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(uc.cfg.Pin), []byte(pin)) == 1
}
