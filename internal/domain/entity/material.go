package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material representa un insumo de planta con su stock vigente.
// CurrentStock es la única fuente de verdad del inventario físico: el historial
// de transacciones se reconstruye para ser consistente con este valor, nunca
// al revés.
type Material struct {
	ID           int64
	Name         string
	Category     string
	CurrentStock decimal.Decimal
	Unit         string          // unidad de medida: kg, L, unidades, etc.
	Threshold    decimal.Decimal // nivel bajo el cual el material se considera en stock bajo
	BillNumber   *string
	LastUpdated  time.Time
	CreatedAt    time.Time
}

// IsLowStock indica si el material está bajo su umbral de alerta.
func (m *Material) IsLowStock() bool {
	return m.CurrentStock.LessThan(m.Threshold)
}
