package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fabrica-api/internal/application/audit"
	"github.com/tu-usuario/fabrica-api/internal/application/dto"
	"github.com/tu-usuario/fabrica-api/internal/application/usecase"
	"github.com/tu-usuario/fabrica-api/internal/domain"
	"github.com/tu-usuario/fabrica-api/internal/domain/entity"
	"github.com/tu-usuario/fabrica-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type materialFixture struct {
	uc        *usecase.MaterialUseCase
	materials *fakeMaterialRepo
	usage     *fakeUsageLogRepo
	logs      *fakeMaterialLogRepo
	journal   *[]string
}

func newMaterialFixture() *materialFixture {
	journal := &[]string{}
	materials := newFakeMaterialRepo(journal)
	usage := newFakeUsageLogRepo(journal)
	logs := newFakeMaterialLogRepo(journal)
	uc := usecase.NewMaterialUseCase(materials, usage, logs, audit.NewMaterialRecorder(logs), logger.Nop())
	return &materialFixture{uc: uc, materials: materials, usage: usage, logs: logs, journal: journal}
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func seedHarina(f *materialFixture) *entity.Material {
	return f.materials.seed(entity.Material{
		Name:         "Harina",
		Category:     "Secos",
		Unit:         "kg",
		CurrentStock: dec("50"),
		Threshold:    dec("10"),
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Update y su canal de auditoría
// ──────────────────────────────────────────────────────────────────────────────

// El alta persiste el material y deja una fila de auditoría con el snapshot.
func TestMaterialUseCase_CreateRegistraAuditoria(t *testing.T) {
	f := newMaterialFixture()

	resp, err := f.uc.Create(context.Background(), dto.CreateMaterialRequest{
		Name:         "Azúcar",
		Category:     "Secos",
		Unit:         "kg",
		CurrentStock: dec("25"),
		Threshold:    dec("5"),
	}, "Carlos")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "Azúcar", resp.Name)
	assert.False(t, resp.LowStock, "25 sobre umbral 5 no es stock bajo")

	require.Len(t, f.logs.entries, 1, "debe quedar una fila de auditoría")
	entry := f.logs.entries[0]
	assert.Equal(t, entity.MaterialActionCreate, entry.ActionType)
	assert.Equal(t, "Carlos", entry.Username)
	require.NotNil(t, entry.MaterialID)
	assert.Equal(t, resp.ID, *entry.MaterialID)

	details, err := entry.DecodeDetails()
	require.NoError(t, err)
	created, ok := details.(entity.CreateDetails)
	require.True(t, ok)
	assert.Equal(t, "Azúcar", created.Name)
	assert.True(t, created.CurrentStock.Equal(dec("25")))
}

// La auditoría es best-effort: si falla, el alta igual se concreta.
func TestMaterialUseCase_CreateConAuditoriaCaida(t *testing.T) {
	f := newMaterialFixture()
	f.logs.createErr = errors.New("auditoría caída")

	resp, err := f.uc.Create(context.Background(), dto.CreateMaterialRequest{
		Name: "Sal", Category: "Secos", Unit: "kg",
		CurrentStock: dec("3"), Threshold: dec("1"),
	}, "Carlos")
	require.NoError(t, err, "el fallo de auditoría no debe bloquear el alta")
	require.NotNil(t, resp)
	assert.Len(t, f.materials.materials, 1)
	assert.Empty(t, f.logs.entries)
}

// El update guarda snapshots viejo/nuevo y el mapa de campos cambiados.
func TestMaterialUseCase_UpdateRegistraCambios(t *testing.T) {
	f := newMaterialFixture()
	m := seedHarina(f)

	nuevoNombre := "Harina 000"
	nuevoUmbral := dec("15")
	resp, err := f.uc.Update(context.Background(), m.ID, dto.UpdateMaterialRequest{
		Name:      &nuevoNombre,
		Threshold: &nuevoUmbral,
	}, "Lucía")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "Harina 000", resp.Name)

	require.Len(t, f.logs.entries, 1)
	details, err := f.logs.entries[0].DecodeDetails()
	require.NoError(t, err)
	updated, ok := details.(entity.UpdateDetails)
	require.True(t, ok)
	assert.Equal(t, "Harina", updated.Old.Name)
	assert.Equal(t, "Harina 000", updated.New.Name)
	assert.Contains(t, updated.Changes, "name")
	assert.Contains(t, updated.Changes, "threshold")
	assert.NotContains(t, updated.Changes, "unit", "campos sin cambio no deben aparecer")
}

// Update de un ID inexistente devuelve nil sin error (404 lo decide el handler).
func TestMaterialUseCase_UpdateInexistente(t *testing.T) {
	f := newMaterialFixture()
	nombre := "X"
	resp, err := f.uc.Update(context.Background(), 999, dto.UpdateMaterialRequest{Name: &nombre}, "Lucía")
	require.NoError(t, err)
	assert.Nil(t, resp)
}

// UpdateStock fija el valor absoluto, sin aritmética relativa.
func TestMaterialUseCase_UpdateStockFijaValorAbsoluto(t *testing.T) {
	f := newMaterialFixture()
	m := seedHarina(f)

	resp, err := f.uc.UpdateStock(context.Background(), m.ID, dec("7.5"), "Lucía")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.True(t, resp.CurrentStock.Equal(dec("7.5")))
	assert.True(t, resp.LowStock, "7.5 bajo umbral 10 debe marcar stock bajo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Contrato de eliminación
// ──────────────────────────────────────────────────────────────────────────────

// El delete anula las referencias en usage_logs y material_logs ANTES de
// borrar la fila, y la auditoría de eliminación se escribe antes que todo.
func TestMaterialUseCase_Delete_AnulaReferenciasAntesDeBorrar(t *testing.T) {
	f := newMaterialFixture()
	m := seedHarina(f)
	f.usage.logs = append(f.usage.logs, &entity.UsageLog{ID: 1, MaterialID: &m.ID, Quantity: dec("5"), Username: "Lucía"})

	err := f.uc.Delete(context.Background(), m.ID, "Carlos")
	require.NoError(t, err)

	assert.Empty(t, f.materials.materials, "la fila del material debe desaparecer")
	require.NotNil(t, f.usage.logs[0])
	assert.Nil(t, f.usage.logs[0].MaterialID, "el historial sobrevive con la referencia en null")

	// Orden de escrituras: auditoría → anular usage_logs → anular material_logs → delete.
	require.Equal(t, []string{
		"material_logs.create",
		"usage_logs.clear_ref",
		"material_logs.clear_ref",
		"materials.delete",
	}, *f.journal)
}

// Si la anulación de referencias falla, el delete se aborta y la fila queda.
func TestMaterialUseCase_Delete_AbortaSiFallaAnulacion(t *testing.T) {
	f := newMaterialFixture()
	m := seedHarina(f)
	f.usage.clearErr = errors.New("fk update falló")

	err := f.uc.Delete(context.Background(), m.ID, "Carlos")
	require.Error(t, err)
	assert.Len(t, f.materials.materials, 1, "el material no debe borrarse si la anulación falla")
}

// La auditoría de eliminación es best-effort: su fallo no frena el delete.
func TestMaterialUseCase_Delete_AuditoriaCaidaNoBloquea(t *testing.T) {
	f := newMaterialFixture()
	m := seedHarina(f)
	f.logs.createErr = errors.New("auditoría caída")

	err := f.uc.Delete(context.Background(), m.ID, "Carlos")
	require.NoError(t, err)
	assert.Empty(t, f.materials.materials)
}

func TestMaterialUseCase_DeleteInexistente(t *testing.T) {
	f := newMaterialFixture()
	err := f.uc.Delete(context.Background(), 42, "Carlos")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
