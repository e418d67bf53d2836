package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Range acota el libro a un rango de fechas. Ambos extremos son inclusivos;
// un extremo nulo no acota por ese lado.
type Range struct {
	From *time.Time
	To   *time.Time
}

// Contains indica si t cae dentro del rango (extremos inclusive).
func (r Range) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// Reconstruct produce el libro de movimientos ordenado y con saldo corrido.
//
// currentStock debe ser el valor de materials.current_stock leído justo antes
// de llamar: el saldo de cada entrada se deriva hacia atrás desde ese ancla,
// de modo que sumar entradas menos salidas desde el saldo inicial reconcilia
// exactamente con el stock vigente.
//
// Pasos:
//  1. Ordenar descendente por fecha (orden de presentación, lo más reciente primero).
//  2. Filtrar por rango inclusivo sobre la fecha propia de cada transacción.
//  3. Recorrer de la más reciente a la más antigua: asignar el saldo vigente y
//     luego deshacer la transacción (restar entrada / sumar salida) para obtener
//     el saldo previo, que será el de la siguiente entrada más antigua.
//  4. Si el saldo previo a la transacción más antigua es positivo, agregar al
//     final una entrada sintética "Starting balance" fechada un día antes, sin
//     entrada ni salida, para que la lista cierre en un saldo explicable.
//
// Sin transacciones el resultado es vacío: no se sintetiza saldo inicial.
func Reconstruct(currentStock decimal.Decimal, txs []Transaction, r Range) []Transaction {
	ordered := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if r.Contains(tx.Date) {
			ordered = append(ordered, tx)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.After(ordered[j].Date)
		}
		// Desempate determinista para fechas idénticas
		return ordered[i].ID > ordered[j].ID
	})

	if len(ordered) == 0 {
		return ordered
	}

	// Saldo corrido: de la más reciente hacia atrás. El saldo asignado es el
	// que existía inmediatamente después de aplicarse la transacción.
	running := currentStock
	for i := range ordered {
		ordered[i].Stock = running
		switch {
		case ordered[i].Inflow != nil:
			running = running.Sub(*ordered[i].Inflow)
		case ordered[i].Outflow != nil:
			running = running.Add(*ordered[i].Outflow)
		}
	}

	// running quedó como el saldo previo a la transacción más antigua.
	if running.IsPositive() {
		oldest := ordered[len(ordered)-1]
		ordered = append(ordered, Transaction{
			ID:        StartingBalanceID,
			Date:      oldest.Date.AddDate(0, 0, -1),
			Category:  CategoryPurchase, // solo para presentación
			Reference: "-",
			Stock:     running,
			Notes:     "Starting balance",
		})
	}

	for i := range ordered {
		ordered[i].FormattedDate = ordered[i].Date.Format(displayDateLayout)
	}

	return ordered
}
