package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/equitycoffee/equity-coffee-api/internal/application/dto"
	"github.com/equitycoffee/equity-coffee-api/internal/application/usecase"
)

// ContactHandler maneja los mensajes de contacto (creación pública, lectura admin).
type ContactHandler struct {
	uc *usecase.ContactUseCase
}

// NewContactHandler construye el handler de contacto.
func NewContactHandler(uc *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Create godoc
// @Summary      Enviar mensaje de contacto
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ContactRequest  true  "name, email, message"
// @Success      201   {object}  dto.ContactCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contact [post]
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var in dto.ContactRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Email == "" || in.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email y message son requeridos"})
	}
	out, err := h.uc.Create(in, c.IP(), c.Get(fiber.HeaderUserAgent))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMessages godoc
// @Summary      Listar mensajes recibidos
// @Tags         contact
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo de filas"  default(100)
// @Success      200  {object}  dto.ContactListEnvelope
// @Router       /api/contact/messages [get]
func (h *ContactHandler) ListMessages(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}
	out, err := h.uc.ListRecent(limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
