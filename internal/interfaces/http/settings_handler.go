package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fabrica-api/internal/application/dto"
	"github.com/tu-usuario/fabrica-api/internal/application/usecase"
	"github.com/tu-usuario/fabrica-api/internal/domain"
)

// SettingsHandler maneja las preferencias clave/valor (protegido).
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// List godoc
// @Summary      Listar claves de configuración
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Param        user_id  query  string  false  "Alcance; omitir para el global"
// @Success      200  {array}  dto.SettingResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), queryString(c, "user_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener una clave de configuración
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Param        key      path   string  true   "Clave"
// @Param        user_id  query  string  false  "Alcance; omitir para el global"
// @Success      200  {object}  dto.SettingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/settings/{key} [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	key := c.Params("key")
	out, err := h.uc.Get(c.UserContext(), key, queryString(c, "user_id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_KEY", Message: "key es requerida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "clave no encontrada"})
	}
	return c.JSON(out)
}

// Set godoc
// @Summary      Crear o reemplazar una clave de configuración
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        key   path  string  true  "Clave"
// @Param        body  body  dto.SetSettingRequest  true  "Valor JSON y alcance opcional"
// @Success      200   {object}  dto.SettingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/{key} [put]
func (h *SettingsHandler) Set(c *fiber.Ctx) error {
	key := c.Params("key")
	var in dto.SetSettingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Set(c.UserContext(), key, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "key y value son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar una clave de configuración
// @Tags         settings
// @Security     Bearer
// @Param        key      path   string  true   "Clave"
// @Param        user_id  query  string  false  "Alcance; omitir para el global"
// @Success      204
// @Router       /api/settings/{key} [delete]
func (h *SettingsHandler) Delete(c *fiber.Ctx) error {
	key := c.Params("key")
	if err := h.uc.Delete(c.UserContext(), key, queryString(c, "user_id")); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_KEY", Message: "key es requerida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
