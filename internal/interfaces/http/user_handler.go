package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/itael/inventory-products-api/internal/application/dto"
	"github.com/itael/inventory-products-api/internal/application/usecase"
	"github.com/itael/inventory-products-api/internal/domain"
)

// UserHandler maneja las peticiones HTTP para cuentas del panel (protegido).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cuenta
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos de la cuenta"
// @Success      201   {object}  dto.UserResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List devuelve todas las cuentas.
func (h *UserHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// ListWithRoles godoc
// @Summary      Listar cuentas con el nombre de su rol
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UserWithRoleResponse
// @Router       /api/users/with-roles [get]
func (h *UserHandler) ListWithRoles(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListWithRoles())
}

// GetByID obtiene una cuenta por ID.
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out := h.uc.GetByID(id)
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cuenta no encontrada"})
	}
	return c.JSON(out)
}

// Update fusiona el patch sobre la cuenta.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cuenta no encontrada"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}

// Delete elimina una cuenta.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cuenta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UsernameExists chequeo de unicidad para los formularios de edición.
// ?value=<username>&excludeId=<id>
func (h *UserHandler) UsernameExists(c *fiber.Ctx) error {
	value := c.Query("value")
	if value == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_VALUE", Message: "value es requerido"})
	}
	return c.JSON(dto.ExistsResponse{Exists: h.uc.UsernameExists(value, c.Query("excludeId"))})
}

// EmailExists chequeo de unicidad para los formularios de edición.
func (h *UserHandler) EmailExists(c *fiber.Ctx) error {
	value := c.Query("value")
	if value == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_VALUE", Message: "value es requerido"})
	}
	return c.JSON(dto.ExistsResponse{Exists: h.uc.EmailExists(value, c.Query("excludeId"))})
}
