package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/fabrica-api/internal/application/dto"
	"github.com/tu-usuario/fabrica-api/internal/domain/entity"
	"github.com/tu-usuario/fabrica-api/internal/domain/repository"
)

const (
	dashboardTopMaterials = 5  // materiales en el widget de más consumidos
	dashboardWindowDays   = 30 // ventana del resumen, en días
)

// DashboardUseCase arma el resumen de la pantalla principal: totales,
// materiales bajo umbral, más consumidos y consumo diario de la ventana.
type DashboardUseCase struct {
	materialRepo  repository.MaterialRepository
	dashboardRepo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	materialRepo repository.MaterialRepository,
	dashboardRepo repository.DashboardRepository,
) *DashboardUseCase {
	return &DashboardUseCase{materialRepo: materialRepo, dashboardRepo: dashboardRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro llamadas en paralelo:
//  1. Count                 → TotalMaterials
//  2. ListLowStock          → LowStock
//  3. GetTopMaterials (30d) → TopMaterials
//  4. GetDailyUsage (30d)   → DailyUsage
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// ── Ventana de fechas ──────────────────────────────────────────────────────
	// Últimos 30 días: 00:00 del día inicial – 23:59:59.999 de hoy.
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	windowEnd := dayStart.Add(24*time.Hour - time.Nanosecond)
	windowStart := dayStart.AddDate(0, 0, -(dashboardWindowDays - 1))

	// ── Goroutines para paralelizar las 4 consultas DB ────────────────────────
	type countResult struct {
		total int64
		err   error
	}
	type lowStockResult struct {
		materials []*entity.Material
		err       error
	}
	type topResult struct {
		items []repository.TopMaterialResult
		err   error
	}
	type dailyResult struct {
		items []repository.DailyUsageResult
		err   error
	}

	countCh := make(chan countResult, 1)
	lowCh := make(chan lowStockResult, 1)
	topCh := make(chan topResult, 1)
	dailyCh := make(chan dailyResult, 1)

	go func() {
		total, err := uc.materialRepo.Count(ctx)
		countCh <- countResult{total, err}
	}()
	go func() {
		materials, err := uc.materialRepo.ListLowStock(ctx)
		lowCh <- lowStockResult{materials, err}
	}()
	go func() {
		items, err := uc.dashboardRepo.GetTopMaterials(ctx, windowStart, windowEnd, dashboardTopMaterials)
		topCh <- topResult{items, err}
	}()
	go func() {
		items, err := uc.dashboardRepo.GetDailyUsage(ctx, windowStart, windowEnd)
		dailyCh <- dailyResult{items, err}
	}()

	count := <-countCh
	low := <-lowCh
	top := <-topCh
	daily := <-dailyCh

	if count.err != nil {
		return nil, fmt.Errorf("dashboard: total de materiales: %w", count.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: materiales bajo umbral: %w", low.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: más consumidos: %w", top.err)
	}
	if daily.err != nil {
		return nil, fmt.Errorf("dashboard: consumo diario: %w", daily.err)
	}

	// ── Construir DTO ──────────────────────────────────────────────────────────
	lowStock := make([]dto.MaterialResponse, 0, len(low.materials))
	for _, m := range low.materials {
		lowStock = append(lowStock, *toMaterialResponse(m))
	}
	topMaterials := make([]dto.TopMaterialDTO, 0, len(top.items))
	for _, t := range top.items {
		topMaterials = append(topMaterials, dto.TopMaterialDTO{
			MaterialID:   t.MaterialID,
			MaterialName: t.MaterialName,
			Unit:         t.Unit,
			TotalUsed:    t.TotalUsed,
		})
	}
	dailyUsage := make([]dto.DailyUsageDTO, 0, len(daily.items))
	for _, d := range daily.items {
		dailyUsage = append(dailyUsage, dto.DailyUsageDTO{Day: d.Day, TotalUsed: d.TotalUsed})
	}

	return &dto.DashboardSummaryDTO{
		TotalMaterials: count.total,
		LowStock:       lowStock,
		TopMaterials:   topMaterials,
		DailyUsage:     dailyUsage,
	}, nil
}
