package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/equitycoffee/equity-coffee-api/internal/application/dto"
	"github.com/equitycoffee/equity-coffee-api/internal/application/usecase"
)

// RoasterHandler maneja contratos e inventario del tostador (protegido).
type RoasterHandler struct {
	contracts *usecase.ContractUseCase
	inventory *usecase.InventoryUseCase
}

// NewRoasterHandler construye el handler de tostador.
func NewRoasterHandler(contracts *usecase.ContractUseCase, inventory *usecase.InventoryUseCase) *RoasterHandler {
	return &RoasterHandler{contracts: contracts, inventory: inventory}
}

// Ping confirma que el router de tostador responde.
func (h *RoasterHandler) Ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true, "area": "roaster"})
}

// ListContracts godoc
// @Summary      Listar contratos propios
// @Tags         roaster
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtro de estado"
// @Success      200  {object}  dto.ContractListEnvelope
// @Router       /api/roaster/contracts [get]
func (h *RoasterHandler) ListContracts(c *fiber.Ctx) error {
	out, err := h.contracts.List(GetUserID(c), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateContract godoc
// @Summary      Crear contrato
// @Tags         roaster
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContractRequest  true  "Datos del contrato"
// @Success      201   {object}  dto.ContractEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/roaster/contracts [post]
func (h *RoasterHandler) CreateContract(c *fiber.Ctx) error {
	var in dto.CreateContractRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ContractNumber == "" || in.LotID == "" || in.FarmerID == "" ||
		in.QuantityBags == nil || in.PricePerKg == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "contract_number, lot_id, farmer_id, quantity_bags y price_per_kg son requeridos"})
	}
	out, err := h.contracts.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateContract godoc
// @Summary      Actualizar contrato (parcial)
// @Tags         roaster
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del contrato"
// @Param        body  body  dto.UpdateContractRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ContractEnvelope
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/roaster/contracts/{id} [put]
func (h *RoasterHandler) UpdateContract(c *fiber.Ctx) error {
	var in dto.UpdateContractRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.contracts.Update(GetUserID(c), GetRole(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ContractPDF godoc
// @Summary      Confirmación de contrato en PDF
// @Tags         roaster
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del contrato"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/roaster/contracts/{id}/pdf [get]
func (h *RoasterHandler) ContractPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.contracts.ConfirmationPDF(GetUserID(c), GetRole(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="contract-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}

// ListInventory godoc
// @Summary      Listar inventario propio
// @Tags         roaster
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryListEnvelope
// @Router       /api/roaster/inventory [get]
func (h *RoasterHandler) ListInventory(c *fiber.Ctx) error {
	out, err := h.inventory.List(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateInventory godoc
// @Summary      Crear renglón de inventario
// @Tags         roaster
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "Datos del renglón"
// @Success      201   {object}  dto.InventoryEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/roaster/inventory [post]
func (h *RoasterHandler) CreateInventory(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ContractID == "" || in.LotID == "" || in.CurrentBags == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "contract_id, lot_id y current_bags son requeridos"})
	}
	out, err := h.inventory.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateInventory godoc
// @Summary      Actualizar renglón de inventario (parcial)
// @Tags         roaster
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del renglón"
// @Param        body  body  dto.UpdateInventoryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.InventoryEnvelope
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/roaster/inventory/{id} [put]
func (h *RoasterHandler) UpdateInventory(c *fiber.Ctx) error {
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.inventory.Update(GetUserID(c), GetRole(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteInventory godoc
// @Summary      Eliminar renglón de inventario
// @Tags         roaster
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del renglón"
// @Success      200  {object}  dto.InventoryDeletedResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/roaster/inventory/{id} [delete]
func (h *RoasterHandler) DeleteInventory(c *fiber.Ctx) error {
	out, err := h.inventory.Delete(GetUserID(c), GetRole(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
