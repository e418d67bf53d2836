package usecase

import (
	"context"

	"github.com/tu-usuario/fabrica-api/internal/application/dto"
	"github.com/tu-usuario/fabrica-api/internal/domain"
	"github.com/tu-usuario/fabrica-api/internal/domain/entity"
	"github.com/tu-usuario/fabrica-api/internal/domain/repository"
)

// SettingsUseCase preferencias clave/valor de la aplicación.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve el valor de una clave. Devuelve nil si no existe.
func (uc *SettingsUseCase) Get(ctx context.Context, key string, userID *string) (*dto.SettingResponse, error) {
	if key == "" {
		return nil, domain.ErrInvalidInput
	}
	setting, err := uc.repo.GetByKey(ctx, key, userID)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, nil
	}
	return toSettingResponse(setting), nil
}

// List devuelve todas las claves del alcance indicado.
func (uc *SettingsUseCase) List(ctx context.Context, userID *string) ([]*dto.SettingResponse, error) {
	settings, err := uc.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SettingResponse, 0, len(settings))
	for _, s := range settings {
		out = append(out, toSettingResponse(s))
	}
	return out, nil
}

// Set crea o reemplaza el valor de una clave (upsert por key + user_id).
func (uc *SettingsUseCase) Set(ctx context.Context, key string, in dto.SetSettingRequest) (*dto.SettingResponse, error) {
	if key == "" || len(in.Value) == 0 {
		return nil, domain.ErrInvalidInput
	}
	setting, err := uc.repo.Upsert(ctx, key, in.Value, in.UserID)
	if err != nil {
		return nil, err
	}
	return toSettingResponse(setting), nil
}

// Delete elimina una clave. Borrar una clave inexistente no es error.
func (uc *SettingsUseCase) Delete(ctx context.Context, key string, userID *string) error {
	if key == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, key, userID)
}

func toSettingResponse(s *entity.Setting) *dto.SettingResponse {
	return &dto.SettingResponse{
		ID:        s.ID,
		Key:       s.Key,
		Value:     s.Value,
		UserID:    s.UserID,
		CreatedAt: s.CreatedAt,
	}
}
