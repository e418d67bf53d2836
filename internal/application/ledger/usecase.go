package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/fabrica-api/internal/application/dto"
	"github.com/tu-usuario/fabrica-api/internal/domain"
	"github.com/tu-usuario/fabrica-api/internal/domain/entity"
	"github.com/tu-usuario/fabrica-api/internal/domain/ledger"
	"github.com/tu-usuario/fabrica-api/internal/domain/repository"
)

// MaterialHistoryDTO historial de movimientos de un material con saldo corrido.
type MaterialHistoryDTO struct {
	MaterialID   int64                `json:"material_id"`
	MaterialName string               `json:"material_name"`
	Unit         string               `json:"unit"`
	CurrentStock decimal.Decimal      `json:"current_stock"`
	Transactions []ledger.Transaction `json:"transactions"`
}

// DirectAdditionInput entrada manual de stock con factura opcional.
type DirectAdditionInput struct {
	MaterialID int64
	Quantity   decimal.Decimal
	BillNumber *string
}

// HistoryUseCase reconstruye el libro de movimientos de un material.
type HistoryUseCase struct {
	materialRepo repository.MaterialRepository
	usageRepo    repository.UsageLogRepository
	batchRepo    repository.BatchRepository
	statements   StatementGenerator
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(
	materialRepo repository.MaterialRepository,
	usageRepo repository.UsageLogRepository,
	batchRepo repository.BatchRepository,
	statements StatementGenerator,
) *HistoryUseCase {
	return &HistoryUseCase{
		materialRepo: materialRepo,
		usageRepo:    usageRepo,
		batchRepo:    batchRepo,
		statements:   statements,
	}
}

// GetMaterialHistory arma el historial completo de un material.
//
// Lee usage_logs y batch_materials, y vuelve a leer el material justo antes
// de derivar saldos: el stock ancla debe ser el más fresco posible para que
// el libro reconcilie. Cualquier error de lectura aborta todo; no se devuelve
// un libro parcial.
func (uc *HistoryUseCase) GetMaterialHistory(ctx context.Context, materialID int64, from, to *time.Time) (*MaterialHistoryDTO, error) {
	logs, err := uc.usageRepo.ListByMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}
	batchMaterials, err := uc.batchRepo.ListMaterialsForMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}

	// Releer el material al final, justo antes de derivar saldos.
	material, err := uc.materialRepo.GetByID(ctx, materialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}

	txs := make([]ledger.Transaction, 0, len(logs)+len(batchMaterials))
	for _, l := range logs {
		txs = append(txs, ledger.FromUsageLog(*l))
	}
	for _, bm := range batchMaterials {
		txs = append(txs, ledger.FromBatchMaterial(*bm))
	}

	period := ledger.Range{From: from, To: to}
	return &MaterialHistoryDTO{
		MaterialID:   material.ID,
		MaterialName: material.Name,
		Unit:         material.Unit,
		CurrentStock: material.CurrentStock,
		Transactions: ledger.Reconstruct(material.CurrentStock, txs, period),
	}, nil
}

// RecordDirectAddition registra una entrada manual de stock: inserta el
// usage_log con cantidad negativa y actor de sistema (así el libro la
// clasifica como compra) y luego suma la cantidad al stock del material.
func (uc *HistoryUseCase) RecordDirectAddition(ctx context.Context, in DirectAdditionInput) (*dto.MaterialResponse, error) {
	if !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	material, err := uc.materialRepo.GetByID(ctx, in.MaterialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}

	notes := "Direct stock addition"
	if in.BillNumber != nil && *in.BillNumber != "" {
		notes = fmt.Sprintf("Direct stock addition (Bill #%s)", *in.BillNumber)
	}
	if err := uc.usageRepo.Create(ctx, &entity.UsageLog{
		MaterialID: &in.MaterialID,
		Quantity:   in.Quantity.Neg(),
		Date:       time.Now(),
		Username:   entity.SystemActor,
		Notes:      &notes,
		BillNumber: in.BillNumber,
		CreatedAt:  time.Now(),
	}); err != nil {
		return nil, err
	}

	material.CurrentStock = material.CurrentStock.Add(in.Quantity)
	if in.BillNumber != nil && *in.BillNumber != "" {
		material.BillNumber = in.BillNumber
	}
	material.LastUpdated = time.Now()
	if err := uc.materialRepo.Update(ctx, material); err != nil {
		return nil, err
	}

	return &dto.MaterialResponse{
		ID:           material.ID,
		Name:         material.Name,
		Category:     material.Category,
		CurrentStock: material.CurrentStock,
		Unit:         material.Unit,
		Threshold:    material.Threshold,
		BillNumber:   material.BillNumber,
		LowStock:     material.IsLowStock(),
		LastUpdated:  material.LastUpdated,
		CreatedAt:    material.CreatedAt,
	}, nil
}

// ExportHistoryPDF genera el estado de cuenta del material en PDF.
func (uc *HistoryUseCase) ExportHistoryPDF(ctx context.Context, materialID int64, from, to *time.Time) ([]byte, error) {
	history, err := uc.GetMaterialHistory(ctx, materialID, from, to)
	if err != nil {
		return nil, err
	}
	material, err := uc.materialRepo.GetByID(ctx, materialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	return uc.statements.LedgerStatement(material, history.Transactions, ledger.Range{From: from, To: to})
}
