package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tallertex/telas-api/internal/application/dto"
	"github.com/tallertex/telas-api/internal/application/usecase"
	"github.com/tallertex/telas-api/internal/domain"
	"github.com/tallertex/telas-api/internal/domain/entity"
)

// MovementHandler maneja las peticiones HTTP de movimientos de inventario.
type MovementHandler struct {
	uc *usecase.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// parseMovementFilter arma el filtro desde query params. Fechas en formato
// AAAA-MM-DD; date_to se extiende al último instante de ese día (inclusivo).
func parseMovementFilter(c *fiber.Ctx) (entity.MovementFilter, error) {
	filter := entity.MovementFilter{Fabric: c.Query("tecido")}

	if raw := c.Query("date_from"); raw != "" {
		from, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			return filter, err
		}
		filter.DateFrom = &from
	}
	if raw := c.Query("date_to"); raw != "" {
		to, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			return filter, err
		}
		endOfDay := to.Add(24*time.Hour - time.Millisecond)
		filter.DateTo = &endOfDay
	}
	return filter, nil
}

// List godoc
// @Summary      Listar movimientos
// @Tags         movimientos
// @Produce      json
// @Param        tecido     query  string  false  "Filtrar por nombre de tela"
// @Param        date_from  query  string  false  "Desde (AAAA-MM-DD, inclusivo)"
// @Param        date_to    query  string  false  "Hasta (AAAA-MM-DD, inclusivo)"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movimentacoes [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	filter, err := parseMovementFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "fecha inválida, formato AAAA-MM-DD"})
	}
	out, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Register godoc
// @Summary      Registrar movimiento (Entrada o Saída)
// @Tags         movimientos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "tipo_movimentacao, tecido, quantidade (1-999999), motivo, operador"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar un movimiento
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimentacoes/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "movimiento eliminado"})
}

// DeleteBatch godoc
// @Summary      Eliminar varios movimientos en una sola acción
// @Description  Cada id se intenta de forma independiente; la respuesta
// @Description  reporta cuántos se eliminaron y cuántos fallaron. Siempre
// @Description  responde 200 para que el cliente refresque sus listados.
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchDeleteRequest  true  "IDs a eliminar"
// @Success      200   {object}  dto.BatchDeleteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes/batch-delete [post]
func (h *MovementHandler) DeleteBatch(c *fiber.Ctx) error {
	var in dto.BatchDeleteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.IDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ids es requerido"})
	}
	out := h.uc.DeleteBatch(c.Context(), in.IDs)
	return c.JSON(out)
}
