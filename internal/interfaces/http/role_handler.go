package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/itael/inventory-products-api/internal/application/dto"
	"github.com/itael/inventory-products-api/internal/application/usecase"
	"github.com/itael/inventory-products-api/internal/domain"
)

// RoleHandler maneja las peticiones HTTP para roles y el catálogo de
// permisos (protegido).
type RoleHandler struct {
	uc *usecase.RoleUseCase
}

// NewRoleHandler construye el handler.
func NewRoleHandler(uc *usecase.RoleUseCase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// Create crea un rol con permisos embebidos.
func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List devuelve todos los roles.
func (h *RoleHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// GetByID obtiene un rol por ID.
func (h *RoleHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out := h.uc.GetByID(id)
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "rol no encontrado"})
	}
	return c.JSON(out)
}

// Update fusiona el patch sobre el rol.
func (h *RoleHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "rol no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar rol
// @Tags         roles
// @Security     Bearer
// @Param        id  path  string  true  "ID del rol"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "rol protegido"
// @Router       /api/roles/{id} [delete]
func (h *RoleHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrProtectedRole):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PROTECTED_ROLE", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "rol no encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListPermissions devuelve el catálogo completo de permisos.
func (h *RoleHandler) ListPermissions(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListPermissions())
}

// CreatePermission añade una entrada al catálogo.
func (h *RoleHandler) CreatePermission(c *fiber.Ctx) error {
	var in dto.CreatePermissionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.CreatePermission(c.UserContext(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdatePermission edita una entrada del catálogo.
func (h *RoleHandler) UpdatePermission(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdatePermissionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.UpdatePermission(c.UserContext(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "permiso no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DeletePermission elimina una entrada del catálogo.
func (h *RoleHandler) DeletePermission(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.DeletePermission(c.UserContext(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "permiso no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
