package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fabrica-api/internal/application/dto"
	"github.com/tu-usuario/fabrica-api/internal/application/usecase"
	"github.com/tu-usuario/fabrica-api/internal/domain"
	"github.com/tu-usuario/fabrica-api/internal/domain/entity"
)

type batchFixture struct {
	uc        *usecase.BatchUseCase
	batches   *fakeBatchRepo
	materials *fakeMaterialRepo
	usage     *fakeUsageLogRepo
}

func newBatchFixture() *batchFixture {
	journal := &[]string{}
	batches := newFakeBatchRepo(journal)
	materials := newFakeMaterialRepo(journal)
	usage := newFakeUsageLogRepo(journal)
	return &batchFixture{
		uc:        usecase.NewBatchUseCase(batches, materials, usage),
		batches:   batches,
		materials: materials,
		usage:     usage,
	}
}

// La creación de un lote consume sus materiales: fila en batch_materials,
// usage_log positivo con actor de sistema y descuento de stock.
func TestBatchUseCase_Create_ConsumeMateriales(t *testing.T) {
	f := newBatchFixture()
	harina := f.materials.seed(entity.Material{
		Name: "Harina", Category: "Secos", Unit: "kg",
		CurrentStock: dec("50"), Threshold: dec("10"),
	})

	resp, err := f.uc.Create(context.Background(), dto.CreateBatchRequest{
		BatchNumber: "B-2026-014",
		Product:     "Pan integral",
		Materials: []dto.BatchMaterialInput{
			{MaterialID: harina.ID, Quantity: dec("12.5")},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, entity.BatchStatusInProgress, resp.Status, "un lote nuevo arranca In Progress")

	require.Len(t, f.batches.batchMaterials, 1)
	assert.True(t, f.batches.batchMaterials[0].Quantity.Equal(dec("12.5")))

	require.Len(t, f.usage.logs, 1, "debe quedar el usage_log del consumo")
	log := f.usage.logs[0]
	assert.Equal(t, entity.SystemActor, log.Username)
	assert.True(t, log.Quantity.Equal(dec("12.5")), "cantidad positiva: es un consumo")
	require.NotNil(t, log.BatchID)
	assert.Equal(t, resp.ID, *log.BatchID)
	require.NotNil(t, log.Notes)
	assert.Equal(t, "Added to batch B-2026-014 for product Pan integral", *log.Notes)

	quedado, _ := f.materials.GetByID(context.Background(), harina.ID)
	assert.True(t, quedado.CurrentStock.Equal(dec("37.5")), "50 - 12.5 = 37.5")
}

// El descuento de stock tiene piso en cero: consumir más de lo disponible
// deja el stock en 0, nunca negativo.
func TestBatchUseCase_Create_StockConPisoEnCero(t *testing.T) {
	f := newBatchFixture()
	sal := f.materials.seed(entity.Material{
		Name: "Sal", Category: "Secos", Unit: "kg",
		CurrentStock: dec("4"), Threshold: dec("1"),
	})

	_, err := f.uc.Create(context.Background(), dto.CreateBatchRequest{
		BatchNumber: "B-2026-015",
		Product:     "Queso",
		Materials:   []dto.BatchMaterialInput{{MaterialID: sal.ID, Quantity: dec("10")}},
	})
	require.NoError(t, err)

	quedado, _ := f.materials.GetByID(context.Background(), sal.ID)
	assert.True(t, quedado.CurrentStock.IsZero(), "el stock no puede quedar negativo")
}

// Un material inexistente aborta la creación del consumo.
func TestBatchUseCase_Create_MaterialInexistente(t *testing.T) {
	f := newBatchFixture()
	_, err := f.uc.Create(context.Background(), dto.CreateBatchRequest{
		BatchNumber: "B-2026-016",
		Product:     "Yogur",
		Materials:   []dto.BatchMaterialInput{{MaterialID: 999, Quantity: dec("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Update rechaza estados fuera del par In Progress / Completed.
func TestBatchUseCase_Update_EstadoInvalido(t *testing.T) {
	f := newBatchFixture()
	resp, err := f.uc.Create(context.Background(), dto.CreateBatchRequest{
		BatchNumber: "B-2026-017", Product: "Pan",
	})
	require.NoError(t, err)

	estado := "Cancelled"
	_, err = f.uc.Update(context.Background(), resp.ID, dto.UpdateBatchRequest{Status: &estado})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	valido := entity.BatchStatusCompleted
	actualizado, err := f.uc.Update(context.Background(), resp.ID, dto.UpdateBatchRequest{Status: &valido})
	require.NoError(t, err)
	assert.Equal(t, entity.BatchStatusCompleted, actualizado.Status)
}

// El delete del lote elimina primero sus asignaciones de materiales.
func TestBatchUseCase_Delete_EliminaAsignaciones(t *testing.T) {
	f := newBatchFixture()
	harina := f.materials.seed(entity.Material{
		Name: "Harina", Category: "Secos", Unit: "kg",
		CurrentStock: dec("50"), Threshold: dec("10"),
	})
	resp, err := f.uc.Create(context.Background(), dto.CreateBatchRequest{
		BatchNumber: "B-2026-018", Product: "Pan",
		Materials: []dto.BatchMaterialInput{{MaterialID: harina.ID, Quantity: dec("5")}},
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(context.Background(), resp.ID))
	assert.Empty(t, f.batches.batches)
	assert.Empty(t, f.batches.batchMaterials)
	assert.Len(t, f.usage.logs, 1, "el usage_log del consumo es un hecho histórico y queda")
}
