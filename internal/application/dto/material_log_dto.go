package dto

import (
	"encoding/json"
	"time"
)

// MaterialLogFilterRequest filtros del registro de auditoría (query params).
type MaterialLogFilterRequest struct {
	MaterialID *int64     `query:"material_id"`
	ActionType *string    `query:"action_type" validate:"omitempty,oneof=create update delete"`
	Username   *string    `query:"username"`
	DateFrom   *time.Time `query:"date_from"`
	DateTo     *time.Time `query:"date_to"`
}

// MaterialLogResponse entrada de auditoría. Details conserva la forma de su
// variante (create/update/delete); MaterialName viene del join cuando el
// material aún existe y del snapshot cuando ya fue eliminado.
type MaterialLogResponse struct {
	ID           int64           `json:"id"`
	MaterialID   *int64          `json:"material_id"`
	MaterialName *string         `json:"material_name,omitempty"`
	ActionType   string          `json:"action_type"`
	Username     string          `json:"username"`
	Timestamp    time.Time       `json:"timestamp"`
	Details      json.RawMessage `json:"details"`
}
