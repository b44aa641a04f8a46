package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/itael/inventory-products-api/internal/application/dto"
	"github.com/itael/inventory-products-api/internal/domain"
	"github.com/itael/inventory-products-api/internal/i18n"
)

// I18nHandler expone el catálogo de traducciones y el idioma seleccionado.
type I18nHandler struct {
	translator *i18n.Translator
}

// NewI18nHandler construye el handler.
func NewI18nHandler(translator *i18n.Translator) *I18nHandler {
	return &I18nHandler{translator: translator}
}

// localeBody cuerpo de PUT /api/i18n/locale.
type localeBody struct {
	Locale string `json:"locale" validate:"required"`
}

// localeResponse idioma seleccionado actual.
type localeResponse struct {
	Locale string `json:"locale"`
}

// Translations godoc
// @Summary      Catálogo de traducciones
// @Tags         i18n
// @Produce      json
// @Param        lang  query  string  false  "Locale (en, es); por defecto el seleccionado"
// @Success      200   {object}  map[string]string
// @Router       /api/i18n/translations [get]
func (h *I18nHandler) Translations(c *fiber.Ctx) error {
	locale := c.Query("lang")
	if locale == "" {
		locale = h.translator.Locale()
	}
	return c.JSON(i18n.All(locale))
}

// Locale devuelve el idioma seleccionado actual.
func (h *I18nHandler) Locale(c *fiber.Ctx) error {
	return c.JSON(localeResponse{Locale: h.translator.Locale()})
}

// SetLocale cambia y persiste el idioma seleccionado.
func (h *I18nHandler) SetLocale(c *fiber.Ctx) error {
	var in localeBody
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Locale == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "locale es requerido"})
	}
	if err := h.translator.SetLocale(c.UserContext(), in.Locale); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(localeResponse{Locale: h.translator.Locale()})
}
