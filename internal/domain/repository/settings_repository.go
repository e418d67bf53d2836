package repository

import (
	"context"
	"encoding/json"

	"github.com/tu-usuario/fabrica-api/internal/domain/entity"
)

// SettingsRepository define el puerto de persistencia para settings.
// userID nulo = alcance global (el único usado hoy: no hay usuarios reales).
type SettingsRepository interface {
	GetByKey(ctx context.Context, key string, userID *string) (*entity.Setting, error)
	List(ctx context.Context, userID *string) ([]*entity.Setting, error)
	Upsert(ctx context.Context, key string, value json.RawMessage, userID *string) (*entity.Setting, error)
	Delete(ctx context.Context, key string, userID *string) error
}
