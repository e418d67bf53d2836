// Package ledger reconstruye el libro de movimientos de un material: combina
// consumos (usage_logs), asignaciones a lotes (batch_materials) y adiciones
// directas en una sola lista cronológica con saldo corrido, anclada al stock
// vigente del material.
//
// El saldo de cada transacción es derivado y explicativo; la fuente de verdad
// sigue siendo materials.current_stock.
package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/fabrica-api/internal/domain/entity"
)

// Categorías de transacción del libro.
const (
	CategoryPurchase    = "Purchase"    // entrada: compra, asignación a lote o adición directa
	CategoryConsumption = "Consumption" // salida: consumo registrado
)

// StartingBalanceID identifica la entrada sintética de saldo inicial.
const StartingBalanceID = "starting-balance"

// displayDateLayout formato corto de fecha para presentación (en-GB: 29 Aug 26).
const displayDateLayout = "02 Jan 06"

// Transaction es una entrada del libro de movimientos de un material.
// Inflow y Outflow son excluyentes; la entrada sintética de saldo inicial no
// lleva ninguno de los dos.
type Transaction struct {
	ID            string           `json:"id"`
	Date          time.Time        `json:"date"`
	Category      string           `json:"category"`
	Reference     string           `json:"reference"`
	Inflow        *decimal.Decimal `json:"inflow"`
	Outflow       *decimal.Decimal `json:"outflow"`
	Stock         decimal.Decimal  `json:"stock"`
	Notes         string           `json:"notes,omitempty"`
	BillNumber    *string          `json:"bill_number,omitempty"`
	FormattedDate string           `json:"formatted_date,omitempty"`
}

// FromUsageLog clasifica una fila de usage_logs.
//
// Cantidad negativa con actor de sistema → compra (adición directa) con
// inflow = |quantity|. Cualquier otra fila → consumo con outflow = quantity.
// La heurística de signo+actor viene del esquema heredado y se preserva
// exactamente: el saldo corrido depende de ella.
func FromUsageLog(l entity.UsageLogWithRefs) Transaction {
	if l.IsDirectAddition() {
		inflow := l.Quantity.Abs()
		ref := "Direct Addition"
		if l.BillNumber != nil && *l.BillNumber != "" {
			ref = "Bill #" + *l.BillNumber
		}
		return Transaction{
			ID:         fmt.Sprintf("addition-%d", l.ID),
			Date:       l.Date,
			Category:   CategoryPurchase,
			Reference:  ref,
			Inflow:     &inflow,
			Notes:      deref(l.Notes),
			BillNumber: l.BillNumber,
		}
	}

	outflow := l.Quantity
	ref := "-"
	if l.BatchNumber != nil && *l.BatchNumber != "" {
		ref = "B-" + *l.BatchNumber
	}
	return Transaction{
		ID:         fmt.Sprintf("consumption-%d", l.ID),
		Date:       l.Date,
		Category:   CategoryConsumption,
		Reference:  ref,
		Outflow:    &outflow,
		Notes:      deref(l.Notes),
		BillNumber: l.BillNumber,
	}
}

// FromBatchMaterial clasifica una asignación de material a lote como compra,
// fechada con el lote (o con created_at si el lote no tiene fecha).
func FromBatchMaterial(bm entity.BatchMaterialWithBatch) Transaction {
	date := bm.BatchDate
	if date.IsZero() {
		date = bm.CreatedAt
	}
	ref := "-"
	if bm.BatchNumber != "" {
		ref = "INV" + lastN(bm.BatchNumber, 3)
	}
	inflow := bm.Quantity
	batchLabel := bm.BatchNumber
	if batchLabel == "" {
		batchLabel = "Unknown"
	}
	return Transaction{
		ID:        fmt.Sprintf("purchase-%d", bm.ID),
		Date:      date,
		Category:  CategoryPurchase,
		Reference: ref,
		Inflow:    &inflow,
		Notes:     "Added for batch " + batchLabel,
	}
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
