package usecase_test

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/fabrica-api/internal/domain"
	"github.com/tu-usuario/fabrica-api/internal/domain/entity"
	"github.com/tu-usuario/fabrica-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia.
//
// journal es un diario compartido entre fakes: cada operación de escritura
// anota su nombre, lo que permite verificar el ORDEN de las escrituras
// (ej. que el delete anula referencias antes de borrar la fila).
// ──────────────────────────────────────────────────────────────────────────────

type fakeMaterialRepo struct {
	materials map[int64]*entity.Material
	nextID    int64
	journal   *[]string

	updateErr error
	deleteErr error
}

func newFakeMaterialRepo(journal *[]string) *fakeMaterialRepo {
	return &fakeMaterialRepo{materials: make(map[int64]*entity.Material), journal: journal}
}

func (f *fakeMaterialRepo) note(op string) {
	if f.journal != nil {
		*f.journal = append(*f.journal, op)
	}
}

func (f *fakeMaterialRepo) seed(m entity.Material) *entity.Material {
	f.nextID++
	m.ID = f.nextID
	f.materials[m.ID] = &m
	return &m
}

func (f *fakeMaterialRepo) Create(_ context.Context, m *entity.Material) error {
	f.nextID++
	m.ID = f.nextID
	cp := *m
	f.materials[m.ID] = &cp
	f.note("materials.create")
	return nil
}

func (f *fakeMaterialRepo) GetByID(_ context.Context, id int64) (*entity.Material, error) {
	m, ok := f.materials[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMaterialRepo) List(_ context.Context) ([]*entity.Material, error) {
	out := make([]*entity.Material, 0, len(f.materials))
	for _, m := range f.materials {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeMaterialRepo) ListLowStock(_ context.Context) ([]*entity.Material, error) {
	var out []*entity.Material
	for _, m := range f.materials {
		if m.IsLowStock() {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeMaterialRepo) Update(_ context.Context, m *entity.Material) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.materials[m.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *m
	f.materials[m.ID] = &cp
	f.note("materials.update")
	return nil
}

func (f *fakeMaterialRepo) UpdateStock(_ context.Context, id int64, newStock decimal.Decimal) (*entity.Material, error) {
	m, ok := f.materials[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	m.CurrentStock = newStock
	m.LastUpdated = time.Now()
	f.note("materials.update_stock")
	cp := *m
	return &cp, nil
}

func (f *fakeMaterialRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.materials[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.materials, id)
	f.note("materials.delete")
	return nil
}

func (f *fakeMaterialRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.materials)), nil
}

var _ repository.MaterialRepository = (*fakeMaterialRepo)(nil)

type fakeUsageLogRepo struct {
	logs    []*entity.UsageLog
	nextID  int64
	journal *[]string

	createErr error
	clearErr  error
	cleared   []int64
}

func newFakeUsageLogRepo(journal *[]string) *fakeUsageLogRepo {
	return &fakeUsageLogRepo{journal: journal}
}

func (f *fakeUsageLogRepo) note(op string) {
	if f.journal != nil {
		*f.journal = append(*f.journal, op)
	}
}

func (f *fakeUsageLogRepo) Create(_ context.Context, log *entity.UsageLog) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	log.ID = f.nextID
	cp := *log
	f.logs = append(f.logs, &cp)
	f.note("usage_logs.create")
	return nil
}

func (f *fakeUsageLogRepo) GetByID(_ context.Context, id int64) (*entity.UsageLogWithRefs, error) {
	for _, l := range f.logs {
		if l.ID == id {
			return &entity.UsageLogWithRefs{UsageLog: *l}, nil
		}
	}
	return nil, nil
}

func (f *fakeUsageLogRepo) List(_ context.Context, filter repository.UsageLogFilter) ([]*entity.UsageLogWithRefs, error) {
	var out []*entity.UsageLogWithRefs
	for _, l := range f.logs {
		if filter.MaterialID != nil && (l.MaterialID == nil || *l.MaterialID != *filter.MaterialID) {
			continue
		}
		if filter.BatchID != nil && (l.BatchID == nil || *l.BatchID != *filter.BatchID) {
			continue
		}
		if filter.Username != nil && !strings.Contains(strings.ToLower(l.Username), strings.ToLower(*filter.Username)) {
			continue
		}
		out = append(out, &entity.UsageLogWithRefs{UsageLog: *l})
	}
	return out, nil
}

func (f *fakeUsageLogRepo) ListByMaterial(ctx context.Context, materialID int64) ([]*entity.UsageLogWithRefs, error) {
	return f.List(ctx, repository.UsageLogFilter{MaterialID: &materialID})
}

func (f *fakeUsageLogRepo) Delete(_ context.Context, id int64) error {
	for i, l := range f.logs {
		if l.ID == id {
			f.logs = append(f.logs[:i], f.logs[i+1:]...)
			f.note("usage_logs.delete")
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeUsageLogRepo) ClearMaterialRef(_ context.Context, materialID int64) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	for _, l := range f.logs {
		if l.MaterialID != nil && *l.MaterialID == materialID {
			l.MaterialID = nil
		}
	}
	f.cleared = append(f.cleared, materialID)
	f.note("usage_logs.clear_ref")
	return nil
}

var _ repository.UsageLogRepository = (*fakeUsageLogRepo)(nil)

type fakeMaterialLogRepo struct {
	entries []*entity.MaterialLog
	nextID  int64
	journal *[]string

	createErr error
	clearErr  error
	cleared   []int64
}

func newFakeMaterialLogRepo(journal *[]string) *fakeMaterialLogRepo {
	return &fakeMaterialLogRepo{journal: journal}
}

func (f *fakeMaterialLogRepo) note(op string) {
	if f.journal != nil {
		*f.journal = append(*f.journal, op)
	}
}

func (f *fakeMaterialLogRepo) Create(_ context.Context, log *entity.MaterialLog) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	log.ID = f.nextID
	cp := *log
	f.entries = append(f.entries, &cp)
	f.note("material_logs.create")
	return nil
}

func (f *fakeMaterialLogRepo) List(_ context.Context, filter repository.MaterialLogFilter) ([]*entity.MaterialLogWithRefs, error) {
	var out []*entity.MaterialLogWithRefs
	for _, e := range f.entries {
		if filter.MaterialID != nil && (e.MaterialID == nil || *e.MaterialID != *filter.MaterialID) {
			continue
		}
		if filter.ActionType != nil && e.ActionType != *filter.ActionType {
			continue
		}
		out = append(out, &entity.MaterialLogWithRefs{MaterialLog: *e})
	}
	return out, nil
}

func (f *fakeMaterialLogRepo) ListByMaterial(ctx context.Context, materialID int64) ([]*entity.MaterialLogWithRefs, error) {
	return f.List(ctx, repository.MaterialLogFilter{MaterialID: &materialID})
}

func (f *fakeMaterialLogRepo) ClearMaterialRef(_ context.Context, materialID int64) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	for _, e := range f.entries {
		if e.MaterialID != nil && *e.MaterialID == materialID {
			e.MaterialID = nil
		}
	}
	f.cleared = append(f.cleared, materialID)
	f.note("material_logs.clear_ref")
	return nil
}

var _ repository.MaterialLogRepository = (*fakeMaterialLogRepo)(nil)

type fakeBatchRepo struct {
	batches        map[int64]*entity.Batch
	batchMaterials []*entity.BatchMaterial
	nextID         int64
	nextBMID       int64
	journal        *[]string
}

func newFakeBatchRepo(journal *[]string) *fakeBatchRepo {
	return &fakeBatchRepo{batches: make(map[int64]*entity.Batch), journal: journal}
}

func (f *fakeBatchRepo) note(op string) {
	if f.journal != nil {
		*f.journal = append(*f.journal, op)
	}
}

func (f *fakeBatchRepo) Create(_ context.Context, b *entity.Batch) error {
	f.nextID++
	b.ID = f.nextID
	cp := *b
	f.batches[b.ID] = &cp
	f.note("batches.create")
	return nil
}

func (f *fakeBatchRepo) GetByID(_ context.Context, id int64) (*entity.Batch, error) {
	b, ok := f.batches[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBatchRepo) List(_ context.Context) ([]*entity.Batch, error) {
	out := make([]*entity.Batch, 0, len(f.batches))
	for _, b := range f.batches {
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeBatchRepo) Update(_ context.Context, b *entity.Batch) error {
	if _, ok := f.batches[b.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *b
	f.batches[b.ID] = &cp
	f.note("batches.update")
	return nil
}

func (f *fakeBatchRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.batches[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.batches, id)
	f.note("batches.delete")
	return nil
}

func (f *fakeBatchRepo) AddMaterial(_ context.Context, bm *entity.BatchMaterial) error {
	f.nextBMID++
	bm.ID = f.nextBMID
	cp := *bm
	f.batchMaterials = append(f.batchMaterials, &cp)
	f.note("batch_materials.add")
	return nil
}

func (f *fakeBatchRepo) ListMaterials(_ context.Context, batchID int64) ([]*entity.BatchMaterial, error) {
	var out []*entity.BatchMaterial
	for _, bm := range f.batchMaterials {
		if bm.BatchID == batchID {
			cp := *bm
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeBatchRepo) ListMaterialsForMaterial(_ context.Context, materialID int64) ([]*entity.BatchMaterialWithBatch, error) {
	var out []*entity.BatchMaterialWithBatch
	for _, bm := range f.batchMaterials {
		if bm.MaterialID != materialID {
			continue
		}
		row := &entity.BatchMaterialWithBatch{BatchMaterial: *bm}
		if b, ok := f.batches[bm.BatchID]; ok {
			row.BatchNumber = b.BatchNumber
			row.BatchDate = b.Date
			row.Product = b.Product
		}
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeBatchRepo) RemoveMaterial(_ context.Context, batchMaterialID int64) error {
	for i, bm := range f.batchMaterials {
		if bm.ID == batchMaterialID {
			f.batchMaterials = append(f.batchMaterials[:i], f.batchMaterials[i+1:]...)
			f.note("batch_materials.remove")
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeBatchRepo) RemoveMaterialsByBatch(_ context.Context, batchID int64) error {
	kept := f.batchMaterials[:0]
	for _, bm := range f.batchMaterials {
		if bm.BatchID != batchID {
			kept = append(kept, bm)
		}
	}
	f.batchMaterials = kept
	f.note("batch_materials.remove_by_batch")
	return nil
}

var _ repository.BatchRepository = (*fakeBatchRepo)(nil)
