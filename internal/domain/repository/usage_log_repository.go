package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/fabrica-api/internal/domain/entity"
)

// UsageLogFilter condiciones de búsqueda sobre usage_logs.
// Todos los campos son opcionales; DateFrom/DateTo son inclusivos.
type UsageLogFilter struct {
	MaterialID *int64
	BatchID    *int64
	Username   *string // coincidencia parcial, case-insensitive
	DateFrom   *time.Time
	DateTo     *time.Time
}

// UsageLogRepository define el puerto de persistencia para UsageLog.
// Las filas son hechos históricos: se insertan una vez; ClearMaterialRef solo
// anula la referencia al material antes de eliminarlo, nunca toca cantidades.
type UsageLogRepository interface {
	Create(ctx context.Context, log *entity.UsageLog) error
	GetByID(ctx context.Context, id int64) (*entity.UsageLogWithRefs, error)
	List(ctx context.Context, filter UsageLogFilter) ([]*entity.UsageLogWithRefs, error)
	ListByMaterial(ctx context.Context, materialID int64) ([]*entity.UsageLogWithRefs, error)
	Delete(ctx context.Context, id int64) error
	ClearMaterialRef(ctx context.Context, materialID int64) error
}
