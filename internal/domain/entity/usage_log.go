package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SystemActor es la etiqueta reservada que marca registros generados por la
// propia aplicación (adiciones directas de stock, descuentos por lote).
const SystemActor = "System"

// UsageLog registra un movimiento de material. La convención de signo viene
// del esquema heredado y debe preservarse tal cual:
//
//	quantity > 0  → consumo (salida)
//	quantity < 0  → adición directa de stock (entrada), con Username == SystemActor
//
// MaterialID es nullable: se anula cuando el material referenciado se elimina,
// porque el historial debe sobrevivir a la eliminación.
type UsageLog struct {
	ID         int64
	MaterialID *int64
	Quantity   decimal.Decimal
	Date       time.Time
	Username   string // etiqueta de actor de texto libre, no una identidad real
	BatchID    *int64
	Notes      *string
	BillNumber *string
	CreatedAt  time.Time
}

// IsDirectAddition indica si la fila codifica una adición directa de stock
// (cantidad negativa registrada por el actor de sistema).
func (u *UsageLog) IsDirectAddition() bool {
	return u.Quantity.IsNegative() && u.Username == SystemActor
}

// UsageLogWithRefs es una fila de usage_logs con los datos denormalizados que
// las vistas y el libro de movimientos necesitan (nombre del material, número de lote).
type UsageLogWithRefs struct {
	UsageLog
	MaterialName     *string
	MaterialCategory *string
	MaterialUnit     *string
	BatchNumber      *string
}
