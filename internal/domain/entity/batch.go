package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un lote de producción.
const (
	BatchStatusInProgress = "In Progress"
	BatchStatusCompleted  = "Completed"
)

// Batch representa una corrida de producción que consume materiales.
type Batch struct {
	ID          int64
	BatchNumber string
	Product     string
	Date        time.Time
	Status      string // In Progress | Completed
	Description *string
	CreatedAt   time.Time
}

// BatchMaterial es la asignación de un material a un lote. Para el libro de
// movimientos del material cuenta como entrada (compra) fechada con el lote.
// Las filas se crean una vez y nunca se mutan: son hechos históricos.
type BatchMaterial struct {
	ID         int64
	BatchID    int64
	MaterialID int64
	Quantity   decimal.Decimal
	CreatedAt  time.Time
}

// BatchMaterialWithBatch es una fila de batch_materials junto con los datos
// del lote padre que el libro de movimientos necesita (fecha, número, producto).
type BatchMaterialWithBatch struct {
	BatchMaterial
	BatchNumber string
	BatchDate   time.Time
	Product     string
}
