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

type usageFixture struct {
	uc        *usecase.UsageLogUseCase
	usage     *fakeUsageLogRepo
	materials *fakeMaterialRepo
}

func newUsageFixture() *usageFixture {
	journal := &[]string{}
	usage := newFakeUsageLogRepo(journal)
	materials := newFakeMaterialRepo(journal)
	return &usageFixture{
		uc:        usecase.NewUsageLogUseCase(usage, materials),
		usage:     usage,
		materials: materials,
	}
}

// Registrar un consumo inserta el log con el actor y descuenta el stock.
func TestUsageLogUseCase_RegisterConsumption(t *testing.T) {
	f := newUsageFixture()
	leche := f.materials.seed(entity.Material{
		Name: "Leche", Category: "Lácteos", Unit: "L",
		CurrentStock: dec("20"), Threshold: dec("5"),
	})

	resp, err := f.uc.RegisterConsumption(context.Background(), dto.CreateUsageLogRequest{
		MaterialID: leche.ID,
		Quantity:   dec("3.5"),
	}, "Lucía")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "Lucía", resp.Username)
	assert.True(t, resp.Quantity.Equal(dec("3.5")), "el consumo se guarda con cantidad positiva")

	quedado, _ := f.materials.GetByID(context.Background(), leche.ID)
	assert.True(t, quedado.CurrentStock.Equal(dec("16.5")), "20 - 3.5 = 16.5")
}

// El descuento tiene piso en cero.
func TestUsageLogUseCase_RegisterConsumption_PisoEnCero(t *testing.T) {
	f := newUsageFixture()
	leche := f.materials.seed(entity.Material{
		Name: "Leche", Category: "Lácteos", Unit: "L",
		CurrentStock: dec("2"), Threshold: dec("5"),
	})

	_, err := f.uc.RegisterConsumption(context.Background(), dto.CreateUsageLogRequest{
		MaterialID: leche.ID,
		Quantity:   dec("9"),
	}, "Lucía")
	require.NoError(t, err)

	quedado, _ := f.materials.GetByID(context.Background(), leche.ID)
	assert.True(t, quedado.CurrentStock.IsZero())
}

// Consumo sobre material inexistente no inserta nada.
func TestUsageLogUseCase_RegisterConsumption_MaterialInexistente(t *testing.T) {
	f := newUsageFixture()
	_, err := f.uc.RegisterConsumption(context.Background(), dto.CreateUsageLogRequest{
		MaterialID: 404,
		Quantity:   dec("1"),
	}, "Lucía")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.usage.logs)
}

// Borrar un registro de uso NO restaura el stock: current_stock es la fuente
// de verdad y no se reescribe hacia atrás.
func TestUsageLogUseCase_Delete_NoRestauraStock(t *testing.T) {
	f := newUsageFixture()
	leche := f.materials.seed(entity.Material{
		Name: "Leche", Category: "Lácteos", Unit: "L",
		CurrentStock: dec("20"), Threshold: dec("5"),
	})
	resp, err := f.uc.RegisterConsumption(context.Background(), dto.CreateUsageLogRequest{
		MaterialID: leche.ID,
		Quantity:   dec("4"),
	}, "Lucía")
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(context.Background(), resp.ID))
	assert.Empty(t, f.usage.logs)

	quedado, _ := f.materials.GetByID(context.Background(), leche.ID)
	assert.True(t, quedado.CurrentStock.Equal(dec("16")), "el stock queda en 16, sin restaurar")
}
