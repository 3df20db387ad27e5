package handlers

import (
	"painel/internal/repositories"
	"painel/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PedidoHandler handles HTTP requests for orders.
type PedidoHandler struct {
	service *services.PedidoService
}

// NewPedidoHandler creates a new PedidoHandler.
func NewPedidoHandler(service *services.PedidoService) *PedidoHandler {
	return &PedidoHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *PedidoHandler) RegisterRoutes(router fiber.Router) {
	pedidos := router.Group("/orders")
	pedidos.Get("/", h.HandleList)
	pedidos.Get("/:id", h.HandleGet)
	pedidos.Post("/", h.HandleCreate)
	pedidos.Put("/:id", h.HandleUpdate)
	pedidos.Delete("/:id", h.HandleDelete)
}

// HandleList lists orders with optional produto_id/vendedor_id filters and
// pagination.
func (h *PedidoHandler) HandleList(c *fiber.Ctx) error {
	produtoID, err := queryUint(c, "produto_id")
	if err != nil {
		return respondDomainError(c, err, "Erro ao listar pedidos")
	}
	vendedorID, err := queryUint(c, "vendedor_id")
	if err != nil {
		return respondDomainError(c, err, "Erro ao listar pedidos")
	}

	filter := repositories.PedidoFilter{
		ProdutoID:  produtoID,
		VendedorID: vendedorID,
		Limit:      c.QueryInt("limit", 100),
		Offset:     c.QueryInt("offset", 0),
	}
	pedidos, total, err := h.service.ListPedidos(filter)
	if err != nil {
		return respondDomainError(c, err, "Erro ao listar pedidos")
	}
	return respondList(c, pedidos, Pagination{
		Total:    total,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
		Returned: len(pedidos),
	})
}

// HandleGet returns one order with joined product and seller detail.
func (h *PedidoHandler) HandleGet(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondDomainError(c, err, "Erro ao buscar pedido")
	}
	pedido, err := h.service.GetPedido(id)
	if err != nil {
		return respondDomainError(c, err, "Erro ao buscar pedido")
	}
	return respondData(c, fiber.StatusOK, pedido)
}

// HandleCreate creates an order; the stock decrement commits in the same
// transaction as the insert.
func (h *PedidoHandler) HandleCreate(c *fiber.Ctx) error {
	var req struct {
		ProdutoID  uint `json:"produto_id"`
		VendedorID uint `json:"vendedor_id"`
		Quantidade int  `json:"quantidade"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	criado, err := h.service.CreatePedido(req.ProdutoID, req.VendedorID, req.Quantidade)
	if err != nil {
		return respondDomainError(c, err, "Erro ao criar pedido")
	}
	return respondMessage(c, fiber.StatusCreated, "Pedido criado com sucesso", criado)
}

// HandleUpdate changes an order's quantity.
func (h *PedidoHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondDomainError(c, err, "Erro ao atualizar pedido")
	}

	var req struct {
		Quantidade int `json:"quantidade"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	atualizado, err := h.service.UpdatePedido(id, req.Quantidade)
	if err != nil {
		return respondDomainError(c, err, "Erro ao atualizar pedido")
	}
	return respondMessage(c, fiber.StatusOK, "Pedido atualizado com sucesso", atualizado)
}

// HandleDelete removes an order and reports how much stock was restored.
func (h *PedidoHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondDomainError(c, err, "Erro ao remover pedido")
	}

	removido, err := h.service.DeletePedido(id)
	if err != nil {
		return respondDomainError(c, err, "Erro ao remover pedido")
	}
	return respondMessage(c, fiber.StatusOK, "Pedido removido com sucesso", removido)
}
