package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tallertex/telas-api/internal/application/dto"
	"github.com/tallertex/telas-api/internal/application/usecase"
	"github.com/tallertex/telas-api/internal/domain"
)

// CatalogHandler maneja las peticiones HTTP de un catálogo (telas, operadores
// o motivos). Se instancia una vez por catálogo; label aparece en los
// mensajes de error ("tela", "operador", "motivo").
type CatalogHandler struct {
	uc    *usecase.CatalogUseCase
	label string
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase, label string) *CatalogHandler {
	return &CatalogHandler{uc: uc, label: label}
}

// List godoc
// @Summary      Listar entradas del catálogo
// @Tags         catalogos
// @Produce      json
// @Success      200  {array}   dto.CatalogItemResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/tecidos [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// Create godoc
// @Summary      Crear entrada de catálogo
// @Tags         catalogos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCatalogItemRequest  true  "Nombre (1-100 caracteres, letras/dígitos/espacio/guion/guion bajo)"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tecidos [post]
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCatalogItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.uc.Create(c.Context(), in.Name)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre de " + h.label + " inválido"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: h.label + " ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": h.label + " creado"})
}

// Delete godoc
// @Summary      Eliminar entrada de catálogo
// @Tags         catalogos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la entrada"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tecidos/{id} [delete]
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: h.label + " no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": h.label + " eliminado"})
}
