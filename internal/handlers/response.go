package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"painel/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

// validate is shared by the handlers that check request DTO tags.
var validate = validator.New()

// Pagination mirrors the API's pagination block on list responses.
type Pagination struct {
	Total    int64 `json:"total"`
	Limit    int   `json:"limit"`
	Offset   int   `json:"offset"`
	Returned int   `json:"returned"`
}

func respondData(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func respondMessage(c *fiber.Ctx, status int, message string, data interface{}) error {
	body := fiber.Map{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}

func respondList(c *fiber.Ctx, data interface{}, p Pagination) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"data":       data,
		"pagination": p,
	})
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// respondDomainError maps the domain error taxonomy to HTTP statuses.
// Unrecognized errors are logged and surfaced as a generic 500; the
// underlying message leaks only in development mode.
func respondDomainError(c *fiber.Ctx, err error, fallback string) error {
	var validation *models.ValidationError
	if errors.As(err, &validation) {
		return respondError(c, fiber.StatusBadRequest, validation.Message)
	}

	var stock *models.InsufficientStockError
	if errors.As(err, &stock) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":            false,
			"message":            fmt.Sprintf("Estoque insuficiente. Disponível: %d", stock.Disponivel),
			"estoque_disponivel": stock.Disponivel,
		})
	}

	switch {
	case errors.Is(err, models.ErrProdutoNotFound):
		return respondError(c, fiber.StatusNotFound, "Produto não encontrado")
	case errors.Is(err, models.ErrVendedorNotFound):
		return respondError(c, fiber.StatusNotFound, "Vendedor não encontrado")
	case errors.Is(err, models.ErrPedidoNotFound):
		return respondError(c, fiber.StatusNotFound, "Pedido não encontrado")
	case errors.Is(err, models.ErrEmailTaken):
		return respondError(c, fiber.StatusBadRequest, "Email já cadastrado")
	case errors.Is(err, models.ErrProdutoReferenced):
		return respondError(c, fiber.StatusBadRequest, "Não é possível remover produto com pedidos associados")
	case errors.Is(err, models.ErrVendedorReferenced):
		return respondError(c, fiber.StatusBadRequest, "Não é possível remover vendedor com pedidos associados")
	}

	log.Printf("%s: %v", fallback, err)
	body := fiber.Map{
		"success": false,
		"message": fallback,
	}
	if viper.GetString("APP_ENV") == "development" {
		body["error"] = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}

// paramID parses the :id route parameter.
func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("id inválido")
	}
	return uint(id), nil
}

// queryUint parses an optional unsigned query parameter, returning nil when
// absent.
func queryUint(c *fiber.Ctx, key string) (*uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, models.NewValidationError("%s inválido", key)
	}
	u := uint(v)
	return &u, nil
}
