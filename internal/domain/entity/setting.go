package entity

import (
	"encoding/json"
	"time"
)

// Setting es un par clave/valor de configuración de la aplicación (tema,
// preferencias del dashboard). UserID nulo significa alcance global.
type Setting struct {
	ID        int64
	Key       string
	Value     json.RawMessage
	UserID    *string
	CreatedAt time.Time
}
