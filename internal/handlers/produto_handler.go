package handlers

import (
	"painel/internal/models"
	"painel/internal/repositories"
	"painel/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProdutoHandler handles HTTP requests for products.
type ProdutoHandler struct {
	service *services.ProdutoService
}

// NewProdutoHandler creates a new ProdutoHandler.
func NewProdutoHandler(service *services.ProdutoService) *ProdutoHandler {
	return &ProdutoHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProdutoHandler) RegisterRoutes(router fiber.Router) {
	produtos := router.Group("/products")
	produtos.Get("/", h.HandleList)
	produtos.Get("/:id", h.HandleGet)
	produtos.Post("/", h.HandleCreate)
	produtos.Put("/:id", h.HandleUpdate)
	produtos.Delete("/:id", h.HandleDelete)
}

// CreateProdutoRequest is the POST /products body.
type CreateProdutoRequest struct {
	Nome        string  `json:"nome" validate:"required,min=1,max=255"`
	Descricao   *string `json:"descricao" validate:"omitempty,max=500"`
	Preco       float64 `json:"preco" validate:"required,gte=0"`
	Estoque     int     `json:"estoque" validate:"gte=0"`
	CategoriaID *uint   `json:"categoria_id"`
	Custo       float64 `json:"custo" validate:"gte=0"`
	Imagem      *string `json:"imagem"`
}

// HandleList lists products with optional categoria_id/search filters and
// pagination.
func (h *ProdutoHandler) HandleList(c *fiber.Ctx) error {
	categoriaID, err := queryUint(c, "categoria_id")
	if err != nil {
		return respondDomainError(c, err, "Erro ao listar produtos")
	}

	filter := repositories.ProdutoFilter{
		CategoriaID: categoriaID,
		Search:      c.Query("search"),
		Limit:       c.QueryInt("limit", 100),
		Offset:      c.QueryInt("offset", 0),
	}
	produtos, total, err := h.service.ListProdutos(filter)
	if err != nil {
		return respondDomainError(c, err, "Erro ao listar produtos")
	}
	return respondList(c, produtos, Pagination{
		Total:    total,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
		Returned: len(produtos),
	})
}

// HandleGet returns one product.
func (h *ProdutoHandler) HandleGet(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondDomainError(c, err, "Erro ao buscar produto")
	}
	produto, err := h.service.GetProduto(id)
	if err != nil {
		return respondDomainError(c, err, "Erro ao buscar produto")
	}
	return respondData(c, fiber.StatusOK, produto)
}

// HandleCreate creates a product.
func (h *ProdutoHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateProdutoRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Nome e preço são obrigatórios e valores não podem ser negativos")
	}

	produto := models.Produto{
		Nome:        req.Nome,
		Descricao:   req.Descricao,
		Preco:       req.Preco,
		Estoque:     req.Estoque,
		CategoriaID: req.CategoriaID,
		Custo:       req.Custo,
		Imagem:      req.Imagem,
	}
	if err := h.service.CreateProduto(&produto); err != nil {
		return respondDomainError(c, err, "Erro ao criar produto")
	}
	return respondMessage(c, fiber.StatusCreated, "Produto criado com sucesso", produto)
}

// HandleUpdate applies a partial update; only the supplied fields change.
func (h *ProdutoHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondDomainError(c, err, "Erro ao atualizar produto")
	}

	var patch models.ProdutoPatch
	if err := c.BodyParser(&patch); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	if err := h.service.PatchProduto(id, patch); err != nil {
		return respondDomainError(c, err, "Erro ao atualizar produto")
	}
	return respondMessage(c, fiber.StatusOK, "Produto atualizado com sucesso", nil)
}

// HandleDelete removes a product unless orders reference it.
func (h *ProdutoHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondDomainError(c, err, "Erro ao remover produto")
	}

	if err := h.service.DeleteProduto(id); err != nil {
		return respondDomainError(c, err, "Erro ao remover produto")
	}
	return respondMessage(c, fiber.StatusOK, "Produto removido com sucesso", nil)
}
