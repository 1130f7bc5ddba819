package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/equitycoffee/equity-coffee-api/internal/application/dto"
	"github.com/equitycoffee/equity-coffee-api/internal/application/usecase"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/repository"
)

// MarketplaceHandler maneja el catálogo público de lotes.
type MarketplaceHandler struct {
	uc *usecase.MarketplaceUseCase
}

// NewMarketplaceHandler construye el handler del marketplace.
func NewMarketplaceHandler(uc *usecase.MarketplaceUseCase) *MarketplaceHandler {
	return &MarketplaceHandler{uc: uc}
}

// ListLots godoc
// @Summary      Catálogo público de lotes publicados
// @Tags         marketplace
// @Produce      json
// @Param        country   query  string  false  "País de origen (igualdad)"
// @Param        minScore  query  number  false  "Puntaje de taza mínimo"
// @Param        maxPrice  query  number  false  "Precio por kg máximo"
// @Success      200  {object}  dto.MarketplaceListEnvelope
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/marketplace/lots [get]
func (h *MarketplaceHandler) ListLots(c *fiber.Ctx) error {
	f := repository.MarketplaceFilter{Country: c.Query("country")}

	if raw := c.Query("minScore"); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "minScore debe ser numérico"})
		}
		f.MinScore = &v
	}
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "maxPrice debe ser numérico"})
		}
		f.MaxPrice = &v
	}

	out, err := h.uc.List(f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
