package dto

import "time"

// LoginRequest ingreso por PIN compartido. Actor es una etiqueta de texto
// libre que se adjunta a la sesión para los registros de auditoría.
type LoginRequest struct {
	Pin   string `json:"pin" validate:"required"`
	Actor string `json:"actor"`
}

// LoginResponse token de sesión emitido.
type LoginResponse struct {
	Token     string    `json:"token"`
	SessionID string    `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
