package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fabrica-api/internal/domain/entity"
	"github.com/tu-usuario/fabrica-api/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var (
	day0 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	day1 = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	day2 = time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)
	day3 = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func strPtr(s string) *string { return &s }

// usageRow construye una fila de usage_logs con actor humano (consumo).
func usageRow(id int64, qty string, date time.Time) entity.UsageLogWithRefs {
	return entity.UsageLogWithRefs{
		UsageLog: entity.UsageLog{
			ID:       id,
			Quantity: dec(qty),
			Date:     date,
			Username: "operario-1",
		},
	}
}

// additionRow construye una adición directa: cantidad negativa y actor de sistema.
func additionRow(id int64, qty string, date time.Time, bill *string) entity.UsageLogWithRefs {
	return entity.UsageLogWithRefs{
		UsageLog: entity.UsageLog{
			ID:         id,
			Quantity:   dec(qty).Neg(),
			Date:       date,
			Username:   entity.SystemActor,
			BillNumber: bill,
		},
	}
}

// batchRow construye una asignación de material a lote (entrada).
func batchRow(id int64, qty string, batchNumber string, batchDate time.Time) entity.BatchMaterialWithBatch {
	return entity.BatchMaterialWithBatch{
		BatchMaterial: entity.BatchMaterial{
			ID:        id,
			Quantity:  dec(qty),
			CreatedAt: batchDate.Add(time.Hour),
		},
		BatchNumber: batchNumber,
		BatchDate:   batchDate,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación de filas
// ──────────────────────────────────────────────────────────────────────────────

// Cantidad -10 con actor de sistema → compra con entrada 10.
func TestFromUsageLog_AdicionDirecta_EsCompra(t *testing.T) {
	tx := ledger.FromUsageLog(additionRow(7, "10", day1, nil))

	assert.Equal(t, ledger.CategoryPurchase, tx.Category)
	require.NotNil(t, tx.Inflow)
	assert.True(t, tx.Inflow.Equal(dec("10")), "inflow debe ser |quantity| = 10")
	assert.Nil(t, tx.Outflow)
	assert.Equal(t, "addition-7", tx.ID)
	assert.Equal(t, "Direct Addition", tx.Reference)
}

// Cantidad +10 con actor humano → consumo con salida 10.
func TestFromUsageLog_ActorHumano_EsConsumo(t *testing.T) {
	tx := ledger.FromUsageLog(usageRow(3, "10", day1))

	assert.Equal(t, ledger.CategoryConsumption, tx.Category)
	require.NotNil(t, tx.Outflow)
	assert.True(t, tx.Outflow.Equal(dec("10")))
	assert.Nil(t, tx.Inflow)
	assert.Equal(t, "consumption-3", tx.ID)
	assert.Equal(t, "-", tx.Reference, "sin lote la referencia es '-'")
}

// Cantidad negativa pero actor humano: NO es adición directa; la heurística
// exige ambas condiciones (signo + marcador de sistema).
func TestFromUsageLog_NegativaConActorHumano_SigueSiendoConsumo(t *testing.T) {
	row := usageRow(9, "5", day1)
	row.Quantity = row.Quantity.Neg()

	tx := ledger.FromUsageLog(row)

	assert.Equal(t, ledger.CategoryConsumption, tx.Category)
	require.NotNil(t, tx.Outflow)
	assert.True(t, tx.Outflow.Equal(dec("-5")), "la salida conserva el signo original")
}

// Adición directa con número de factura → referencia "Bill #N".
func TestFromUsageLog_AdicionConFactura_ReferenciaBill(t *testing.T) {
	tx := ledger.FromUsageLog(additionRow(1, "4", day1, strPtr("F-778")))
	assert.Equal(t, "Bill #F-778", tx.Reference)
}

// Consumo asociado a lote → referencia "B-<batch_number>".
func TestFromUsageLog_ConsumoConLote_ReferenciaB(t *testing.T) {
	row := usageRow(2, "6", day1)
	row.BatchNumber = strPtr("L-2026-014")

	tx := ledger.FromUsageLog(row)
	assert.Equal(t, "B-L-2026-014", tx.Reference)
}

// Asignación a lote → compra fechada con el lote, referencia INV + 3 últimos dígitos.
func TestFromBatchMaterial_EsCompraConFechaDelLote(t *testing.T) {
	tx := ledger.FromBatchMaterial(batchRow(12, "30", "L-2026-014", day1))

	assert.Equal(t, ledger.CategoryPurchase, tx.Category)
	require.NotNil(t, tx.Inflow)
	assert.True(t, tx.Inflow.Equal(dec("30")))
	assert.True(t, tx.Date.Equal(day1), "la fecha debe ser la del lote, no created_at")
	assert.Equal(t, "INV014", tx.Reference)
	assert.Equal(t, "purchase-12", tx.ID)
	assert.Equal(t, "Added for batch L-2026-014", tx.Notes)
}

// Lote sin fecha → se usa created_at de la fila.
func TestFromBatchMaterial_SinFechaDeLote_UsaCreatedAt(t *testing.T) {
	row := batchRow(5, "8", "X1", time.Time{})
	row.CreatedAt = day2

	tx := ledger.FromBatchMaterial(row)
	assert.True(t, tx.Date.Equal(day2))
}

// ──────────────────────────────────────────────────────────────────────────────
// Reconstrucción del saldo corrido
// ──────────────────────────────────────────────────────────────────────────────

// Ejemplo de referencia: stock actual 100; entrada de 30 el día 1; salida de 10
// el día 2. Recorriendo de la más reciente a la más antigua: la salida del día 2
// recibe saldo 100 (el vigente), el previo pasa a 110; la entrada del día 1
// recibe saldo 110, el previo pasa a 80; como 80 > 0 se agrega la entrada
// sintética de saldo inicial con 80, fechada un día antes.
func TestReconstruct_EjemploDeReferencia(t *testing.T) {
	txs := []ledger.Transaction{
		ledger.FromBatchMaterial(batchRow(1, "30", "B001", day1)),
		ledger.FromUsageLog(usageRow(2, "10", day2)),
	}

	got := ledger.Reconstruct(dec("100"), txs, ledger.Range{})

	require.Len(t, got, 3, "dos transacciones reales + saldo inicial sintético")

	// Día 2: salida de 10, saldo vigente
	assert.Equal(t, ledger.CategoryConsumption, got[0].Category)
	assert.True(t, got[0].Stock.Equal(dec("100")))

	// Día 1: entrada de 30, saldo previo a la salida
	assert.Equal(t, ledger.CategoryPurchase, got[1].Category)
	assert.True(t, got[1].Stock.Equal(dec("110")))

	// Saldo inicial sintético: 110 - 30 = 80, fechado un día antes del día 1
	assert.Equal(t, "starting-balance", got[2].ID)
	assert.True(t, got[2].Stock.Equal(dec("80")))
	assert.Nil(t, got[2].Inflow)
	assert.Nil(t, got[2].Outflow)
	assert.True(t, got[2].Date.Equal(day1.AddDate(0, 0, -1)),
		"el saldo inicial se fecha un día antes de la transacción más antigua")
	assert.Equal(t, "Starting balance", got[2].Notes)
}

// Sin movimientos la lista es vacía: no hay entrada sintética que explicar.
func TestReconstruct_SinMovimientos_ListaVacia(t *testing.T) {
	got := ledger.Reconstruct(dec("50"), nil, ledger.Range{})
	assert.Empty(t, got)
}

// Una sola entrada de cantidad Q con stock actual S: su saldo es S y el saldo
// inicial sintético vale S-Q cuando es positivo.
func TestReconstruct_UnaEntrada_SaldoInicialSMenosQ(t *testing.T) {
	txs := []ledger.Transaction{
		ledger.FromBatchMaterial(batchRow(1, "30", "B001", day1)),
	}

	got := ledger.Reconstruct(dec("100"), txs, ledger.Range{})

	require.Len(t, got, 2)
	assert.True(t, got[0].Stock.Equal(dec("100")), "la única entrada lleva el stock vigente")
	assert.True(t, got[1].Stock.Equal(dec("70")), "saldo inicial = S - Q")
}

// Si S-Q es exactamente cero no se sintetiza saldo inicial.
func TestReconstruct_SaldoInicialCero_NoSintetiza(t *testing.T) {
	txs := []ledger.Transaction{
		ledger.FromBatchMaterial(batchRow(1, "100", "B001", day1)),
	}

	got := ledger.Reconstruct(dec("100"), txs, ledger.Range{})

	require.Len(t, got, 1)
	assert.NotEqual(t, "starting-balance", got[0].ID)
}

// El orden devuelto es estrictamente descendente por fecha (presentación).
func TestReconstruct_OrdenDescendentePorFecha(t *testing.T) {
	txs := []ledger.Transaction{
		ledger.FromUsageLog(usageRow(1, "2", day1)),
		ledger.FromUsageLog(usageRow(2, "3", day3)),
		ledger.FromBatchMaterial(batchRow(3, "10", "B1", day2)),
		ledger.FromUsageLog(usageRow(4, "1", day0)),
	}

	got := ledger.Reconstruct(dec("40"), txs, ledger.Range{})

	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].Date.After(got[i-1].Date),
			"la posición %d rompe el orden descendente", i)
	}
}

// Propiedad de conciliación: partiendo del saldo inicial (sintético o el saldo
// previo implícito) y aplicando entradas menos salidas en orden cronológico se
// debe llegar exactamente al stock vigente.
func TestReconstruct_ConciliaConStockVigente(t *testing.T) {
	txs := []ledger.Transaction{
		ledger.FromBatchMaterial(batchRow(1, "50", "B001", day0)),
		ledger.FromUsageLog(usageRow(2, "12.5", day1)),
		ledger.FromUsageLog(additionRow(3, "20", day2, strPtr("F-9"))),
		ledger.FromUsageLog(usageRow(4, "7.25", day3)),
	}
	current := dec("133.75")

	got := ledger.Reconstruct(current, txs, ledger.Range{})
	require.NotEmpty(t, got)

	// Recorrer en orden cronológico (del final hacia el inicio de la lista).
	balance := decimal.Zero
	if got[len(got)-1].ID == "starting-balance" {
		balance = got[len(got)-1].Stock
	}
	for i := len(got) - 1; i >= 0; i-- {
		tx := got[i]
		if tx.ID == "starting-balance" {
			continue
		}
		if tx.Inflow != nil {
			balance = balance.Add(*tx.Inflow)
		}
		if tx.Outflow != nil {
			balance = balance.Sub(*tx.Outflow)
		}
		assert.True(t, balance.Equal(tx.Stock),
			"el saldo acumulado %s no coincide con el saldo asignado %s en %s",
			balance, tx.Stock, tx.ID)
	}
	assert.True(t, balance.Equal(current),
		"sumar entradas menos salidas debe reconciliar con current_stock")
}

// El saldo puede quedar negativo en el recorrido (stock mal cargado): la
// reconstrucción no lo corrige, solo no agrega saldo inicial.
func TestReconstruct_SaldoInicialNegativo_NoSintetiza(t *testing.T) {
	txs := []ledger.Transaction{
		ledger.FromBatchMaterial(batchRow(1, "200", "B001", day1)),
	}

	got := ledger.Reconstruct(dec("100"), txs, ledger.Range{})

	require.Len(t, got, 1, "saldo inicial -100 no genera entrada sintética")
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtro por rango de fechas
// ──────────────────────────────────────────────────────────────────────────────

// Los extremos del rango son inclusivos; lo estrictamente fuera se excluye.
func TestReconstruct_FiltroDeFechas_ExtremosInclusivos(t *testing.T) {
	txs := []ledger.Transaction{
		ledger.FromUsageLog(usageRow(1, "1", day0)),
		ledger.FromUsageLog(usageRow(2, "2", day1)),
		ledger.FromUsageLog(usageRow(3, "3", day2)),
		ledger.FromUsageLog(usageRow(4, "4", day3)),
	}

	got := ledger.Reconstruct(dec("90"), txs, ledger.Range{From: &day1, To: &day2})

	ids := make([]string, 0, len(got))
	for _, tx := range got {
		if tx.ID != "starting-balance" {
			ids = append(ids, tx.ID)
		}
	}
	assert.Equal(t, []string{"consumption-3", "consumption-2"}, ids,
		"day1 y day2 están en el borde y deben incluirse; day0 y day3 quedan fuera")
}

// El filtro se aplica antes del cálculo de saldo: el ancla sigue siendo el
// stock vigente aunque haya transacciones fuera del rango.
func TestReconstruct_FiltroAntesDelSaldo(t *testing.T) {
	txs := []ledger.Transaction{
		ledger.FromUsageLog(usageRow(1, "5", day0)),
		ledger.FromUsageLog(usageRow(2, "10", day2)),
	}

	got := ledger.Reconstruct(dec("100"), txs, ledger.Range{From: &day1})

	require.NotEmpty(t, got)
	assert.Equal(t, "consumption-2", got[0].ID)
	assert.True(t, got[0].Stock.Equal(dec("100")),
		"la entrada más reciente dentro del rango lleva el stock vigente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Presentación
// ──────────────────────────────────────────────────────────────────────────────

// Toda entrada devuelta lleva la fecha formateada en formato corto en-GB.
func TestReconstruct_FechaFormateada(t *testing.T) {
	txs := []ledger.Transaction{
		ledger.FromUsageLog(usageRow(1, "1", time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC))),
	}

	got := ledger.Reconstruct(dec("10"), txs, ledger.Range{})

	require.NotEmpty(t, got)
	assert.Equal(t, "29 Aug 26", got[0].FormattedDate)
}
