package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/equitycoffee/equity-coffee-api/internal/application/dto"
	"github.com/equitycoffee/equity-coffee-api/internal/application/usecase"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/repository"
)

// LogisticsHandler maneja los embarques (protegido).
type LogisticsHandler struct {
	uc *usecase.ShipmentUseCase
}

// NewLogisticsHandler construye el handler de logística.
func NewLogisticsHandler(uc *usecase.ShipmentUseCase) *LogisticsHandler {
	return &LogisticsHandler{uc: uc}
}

// Ping confirma que el router de logística responde.
func (h *LogisticsHandler) Ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true, "area": "logistics"})
}

// ListShipments godoc
// @Summary      Listar embarques
// @Tags         logistics
// @Security     Bearer
// @Produce      json
// @Param        contractId  query  string  false  "Filtro por contrato"
// @Param        status      query  string  false  "Filtro por estado"
// @Success      200  {object}  dto.ShipmentListEnvelope
// @Router       /api/logistics/shipments [get]
func (h *LogisticsHandler) ListShipments(c *fiber.Ctx) error {
	out, err := h.uc.List(repository.ShipmentFilter{
		ContractID: c.Query("contractId"),
		Status:     c.Query("status"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateShipment godoc
// @Summary      Crear embarque
// @Tags         logistics
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShipmentRequest  true  "contractId, reference"
// @Success      201   {object}  dto.ShipmentEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/logistics/shipments [post]
func (h *LogisticsHandler) CreateShipment(c *fiber.Ctx) error {
	var in dto.CreateShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ContractID == "" || in.Reference == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "contractId y reference son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
