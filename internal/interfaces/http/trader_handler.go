package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/equitycoffee/equity-coffee-api/internal/application/dto"
	"github.com/equitycoffee/equity-coffee-api/internal/application/usecase"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/repository"
)

// TraderHandler maneja las ofertas de compra (protegido).
type TraderHandler struct {
	uc *usecase.OfferUseCase
}

// NewTraderHandler construye el handler de trader.
func NewTraderHandler(uc *usecase.OfferUseCase) *TraderHandler {
	return &TraderHandler{uc: uc}
}

// Ping confirma que el router de trader responde.
func (h *TraderHandler) Ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true, "area": "trader"})
}

// ListOffers godoc
// @Summary      Listar ofertas
// @Tags         trader
// @Security     Bearer
// @Produce      json
// @Param        lotId    query  string  false  "Filtro por lote"
// @Param        buyerId  query  string  false  "Filtro por comprador"
// @Param        status   query  string  false  "Filtro por estado"
// @Success      200  {object}  dto.OfferListEnvelope
// @Router       /api/trader/offers [get]
func (h *TraderHandler) ListOffers(c *fiber.Ctx) error {
	out, err := h.uc.List(repository.OfferFilter{
		LotID:   c.Query("lotId"),
		BuyerID: c.Query("buyerId"),
		Status:  c.Query("status"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateOffer godoc
// @Summary      Crear oferta
// @Tags         trader
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOfferRequest  true  "lotId, pricePerKg"
// @Success      201   {object}  dto.OfferEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/trader/offers [post]
func (h *TraderHandler) CreateOffer(c *fiber.Ctx) error {
	var in dto.CreateOfferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.LotID == "" || in.PricePerKg == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lotId y pricePerKg son requeridos"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
