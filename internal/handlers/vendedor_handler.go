package handlers

import (
	"painel/internal/models"
	"painel/internal/repositories"
	"painel/internal/services"

	"github.com/gofiber/fiber/v2"
)

// VendedorHandler handles HTTP requests for sellers.
type VendedorHandler struct {
	service *services.VendedorService
}

// NewVendedorHandler creates a new VendedorHandler.
func NewVendedorHandler(service *services.VendedorService) *VendedorHandler {
	return &VendedorHandler{
		service: service,
	}
}

// RegisterRoutes registers the seller routes with the Fiber app.
func (h *VendedorHandler) RegisterRoutes(router fiber.Router) {
	vendedores := router.Group("/sellers")
	vendedores.Get("/", h.HandleList)
	vendedores.Get("/:id", h.HandleGet)
	vendedores.Post("/", h.HandleCreate)
	vendedores.Put("/:id", h.HandleUpdate)
	vendedores.Delete("/:id", h.HandleDelete)
}

// CreateVendedorRequest is the POST /sellers body.
type CreateVendedorRequest struct {
	Nome     string  `json:"nome" validate:"required,min=1,max=255"`
	Email    string  `json:"email" validate:"required,email"`
	Telefone *string `json:"telefone"`
}

// HandleList lists sellers with optional search and pagination.
func (h *VendedorHandler) HandleList(c *fiber.Ctx) error {
	filter := repositories.VendedorFilter{
		Search: c.Query("search"),
		Limit:  c.QueryInt("limit", 100),
		Offset: c.QueryInt("offset", 0),
	}
	vendedores, total, err := h.service.ListVendedores(filter)
	if err != nil {
		return respondDomainError(c, err, "Erro ao listar vendedores")
	}
	return respondList(c, vendedores, Pagination{
		Total:    total,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
		Returned: len(vendedores),
	})
}

// HandleGet returns one seller with its sales figures.
func (h *VendedorHandler) HandleGet(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondDomainError(c, err, "Erro ao buscar vendedor")
	}
	vendedor, err := h.service.GetVendedor(id)
	if err != nil {
		return respondDomainError(c, err, "Erro ao buscar vendedor")
	}
	return respondData(c, fiber.StatusOK, vendedor)
}

// HandleCreate creates a seller; duplicate emails are rejected.
func (h *VendedorHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateVendedorRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Nome e email válido são obrigatórios")
	}

	vendedor := models.Vendedor{
		Nome:     req.Nome,
		Email:    req.Email,
		Telefone: req.Telefone,
	}
	if err := h.service.CreateVendedor(&vendedor); err != nil {
		return respondDomainError(c, err, "Erro ao criar vendedor")
	}
	return respondMessage(c, fiber.StatusCreated, "Vendedor criado com sucesso", vendedor)
}

// HandleUpdate applies a partial update; a changed email is validated and
// checked for uniqueness.
func (h *VendedorHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondDomainError(c, err, "Erro ao atualizar vendedor")
	}

	var patch models.VendedorPatch
	if err := c.BodyParser(&patch); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if patch.Email != nil {
		if err := validate.Var(*patch.Email, "email"); err != nil {
			return respondError(c, fiber.StatusBadRequest, "Email inválido")
		}
	}

	if err := h.service.PatchVendedor(id, patch); err != nil {
		return respondDomainError(c, err, "Erro ao atualizar vendedor")
	}
	return respondMessage(c, fiber.StatusOK, "Vendedor atualizado com sucesso", nil)
}

// HandleDelete removes a seller unless orders reference them.
func (h *VendedorHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondDomainError(c, err, "Erro ao remover vendedor")
	}

	if err := h.service.DeleteVendedor(id); err != nil {
		return respondDomainError(c, err, "Erro ao remover vendedor")
	}
	return respondMessage(c, fiber.StatusOK, "Vendedor removido com sucesso", nil)
}
