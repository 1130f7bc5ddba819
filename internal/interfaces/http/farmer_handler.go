package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/equitycoffee/equity-coffee-api/internal/application/dto"
	"github.com/equitycoffee/equity-coffee-api/internal/application/usecase"
)

// FarmerHandler maneja los lotes del caficultor (protegido).
type FarmerHandler struct {
	uc *usecase.LotUseCase
}

// NewFarmerHandler construye el handler de caficultor.
func NewFarmerHandler(uc *usecase.LotUseCase) *FarmerHandler {
	return &FarmerHandler{uc: uc}
}

// Ping confirma que el router de caficultor responde.
func (h *FarmerHandler) Ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true, "area": "farmer"})
}

// ListLots godoc
// @Summary      Listar lotes propios
// @Tags         farmer
// @Security     Bearer
// @Produce      json
// @Param        status    query  string  false  "Filtro de estado"
// @Param        farmerId  query  string  false  "Solo admin: lotes de otro caficultor"
// @Success      200  {object}  dto.LotListEnvelope
// @Router       /api/farmer/lots [get]
func (h *FarmerHandler) ListLots(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c), GetRole(c), c.Query("farmerId"), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetLot godoc
// @Summary      Obtener un lote propio
// @Tags         farmer
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {object}  dto.LotEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/farmer/lots/{id} [get]
func (h *FarmerHandler) GetLot(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetUserID(c), GetRole(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateLot godoc
// @Summary      Crear lote
// @Tags         farmer
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLotRequest  true  "Datos del lote"
// @Success      201   {object}  dto.LotEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/farmer/lots [post]
func (h *FarmerHandler) CreateLot(c *fiber.Ctx) error {
	var in dto.CreateLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.LotName == "" || in.CropYear == 0 || in.Country == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lotName, cropYear y country son requeridos"})
	}
	out, err := h.uc.Create(GetUserID(c), GetRole(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateLot godoc
// @Summary      Actualizar lote (parcial)
// @Tags         farmer
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  dto.UpdateLotRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.LotEnvelope
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/farmer/lots/{id} [put]
func (h *FarmerHandler) UpdateLot(c *fiber.Ctx) error {
	var in dto.UpdateLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetUserID(c), GetRole(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteLot godoc
// @Summary      Eliminar lote
// @Tags         farmer
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/farmer/lots/{id} [delete]
func (h *FarmerHandler) DeleteLot(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), GetRole(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Lot deleted"})
}

// PublishLot pone el lote en estado published.
func (h *FarmerHandler) PublishLot(c *fiber.Ctx) error {
	out, err := h.uc.SetStatus(GetUserID(c), GetRole(c), c.Params("id"), "published")
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UnpublishLot regresa el lote a estado draft.
func (h *FarmerHandler) UnpublishLot(c *fiber.Ctx) error {
	out, err := h.uc.SetStatus(GetUserID(c), GetRole(c), c.Params("id"), "draft")
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
