package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fabrica-api/internal/application/dto"
	"github.com/tu-usuario/fabrica-api/internal/application/usecase"
	"github.com/tu-usuario/fabrica-api/internal/domain"
)

// UsageLogHandler maneja las peticiones HTTP para registros de uso (protegido).
type UsageLogHandler struct {
	uc *usecase.UsageLogUseCase
}

// NewUsageLogHandler construye el handler.
func NewUsageLogHandler(uc *usecase.UsageLogUseCase) *UsageLogHandler {
	return &UsageLogHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar consumo de material
// @Description  Inserta el registro con el actor de la sesión y descuenta el stock con piso en cero.
// @Tags         usage-logs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUsageLogRequest  true  "Consumo"
// @Success      201   {object}  dto.UsageLogResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/usage-logs [post]
func (h *UsageLogHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUsageLogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validateStruct(in); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Fields: fields})
	}
	out, err := h.uc.RegisterConsumption(c.UserContext(), in, GetActor(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "material no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar registros de uso
// @Tags         usage-logs
// @Security     Bearer
// @Produce      json
// @Param        material_id  query  int     false  "Filtrar por material"
// @Param        batch_id     query  int     false  "Filtrar por lote"
// @Param        username     query  string  false  "Filtrar por actor (parcial)"
// @Param        date_from    query  string  false  "Fecha desde (inclusive)"
// @Param        date_to      query  string  false  "Fecha hasta (inclusive)"
// @Success      200  {array}  dto.UsageLogResponse
// @Router       /api/usage-logs [get]
func (h *UsageLogHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), dto.UsageLogFilterRequest{
		MaterialID: queryInt64(c, "material_id"),
		BatchID:    queryInt64(c, "batch_id"),
		Username:   queryString(c, "username"),
		DateFrom:   queryDate(c, "date_from"),
		DateTo:     queryDate(c, "date_to"),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener registro de uso por ID
// @Tags         usage-logs
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del registro"
// @Success      200  {object}  dto.UsageLogResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usage-logs/{id} [get]
func (h *UsageLogHandler) GetByID(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar registro de uso
// @Description  No restaura stock: el stock vigente del material no se toca.
// @Tags         usage-logs
// @Security     Bearer
// @Param        id  path  int  true  "ID del registro"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usage-logs/{id} [delete]
func (h *UsageLogHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
