package dto

import (
	"encoding/json"
	"time"
)

// SetSettingRequest crea o reemplaza el valor de una clave de configuración.
type SetSettingRequest struct {
	Value  json.RawMessage `json:"value" validate:"required"`
	UserID *string         `json:"user_id"`
}

// SettingResponse representación HTTP de una clave de configuración.
type SettingResponse struct {
	ID        int64           `json:"id"`
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UserID    *string         `json:"user_id"`
	CreatedAt time.Time       `json:"created_at"`
}
