package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/fabrica-api/internal/domain/entity"
)

// MaterialLogFilter condiciones de búsqueda sobre material_logs.
type MaterialLogFilter struct {
	MaterialID *int64
	ActionType *string // create | update | delete
	Username   *string // coincidencia parcial, case-insensitive
	DateFrom   *time.Time
	DateTo     *time.Time
}

// MaterialLogRepository define el puerto del registro de auditoría de
// materiales. Append-only: no hay update ni delete de filas; ClearMaterialRef
// anula la FK para que la auditoría sobreviva a la eliminación del material.
type MaterialLogRepository interface {
	Create(ctx context.Context, log *entity.MaterialLog) error
	List(ctx context.Context, filter MaterialLogFilter) ([]*entity.MaterialLogWithRefs, error)
	ListByMaterial(ctx context.Context, materialID int64) ([]*entity.MaterialLogWithRefs, error)
	ClearMaterialRef(ctx context.Context, materialID int64) error
}
