package services

import (
	"log"
	"time"

	"painel/internal/models"
	"painel/internal/repositories"
	"painel/pkg/rabbitmq"

	"github.com/google/uuid"
)

// StockEventPublisher publishes stock movement events after an order
// mutation commits. *rabbitmq.Client satisfies it; tests substitute a mock.
type StockEventPublisher interface {
	PublishStockEvent(event rabbitmq.StockEvent) error
}

// PedidoService handles business logic related to orders. Every mutation
// goes through the repository's stock-consistency routine; the service adds
// input validation and best-effort event publishing.
type PedidoService struct {
	pedidoRepo repositories.PedidoRepository
	mq         StockEventPublisher
}

// NewPedidoService creates a new PedidoService. mq may be nil, in which case
// no events are published.
func NewPedidoService(pedidoRepo repositories.PedidoRepository, mq StockEventPublisher) *PedidoService {
	return &PedidoService{
		pedidoRepo: pedidoRepo,
		mq:         mq,
	}
}

// ListPedidos retrieves orders matching the filter.
func (s *PedidoService) ListPedidos(filter repositories.PedidoFilter) ([]models.PedidoResumo, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.pedidoRepo.List(filter)
}

// GetPedido retrieves a single order with joined detail.
func (s *PedidoService) GetPedido(id uint) (*models.PedidoDetalhe, error) {
	return s.pedidoRepo.GetByID(id)
}

// CreatePedido creates an order and decrements stock atomically. The event
// publish happens after the commit and never undoes it; a broker failure is
// only logged.
func (s *PedidoService) CreatePedido(produtoID, vendedorID uint, quantidade int) (*models.PedidoCriado, error) {
	if produtoID == 0 || vendedorID == 0 || quantidade == 0 {
		return nil, models.NewValidationError("produto_id, vendedor_id e quantidade são obrigatórios")
	}
	if quantidade < 0 {
		return nil, models.NewValidationError("quantidade deve ser maior que zero")
	}

	criado, err := s.pedidoRepo.CreateWithStock(produtoID, vendedorID, quantidade)
	if err != nil {
		return nil, err
	}

	s.publish(rabbitmq.StockEvent{
		Tipo:      "pedido.criado",
		PedidoID:  criado.ID,
		ProdutoID: criado.ProdutoID,
		Delta:     -criado.Quantidade,
		Estoque:   criado.EstoqueAtual,
	})
	return criado, nil
}

// UpdatePedido changes an order's quantity, adjusting stock by the
// difference.
func (s *PedidoService) UpdatePedido(id uint, quantidade int) (*models.PedidoAtualizado, error) {
	if quantidade <= 0 {
		return nil, models.NewValidationError("quantidade inválida")
	}

	atualizado, err := s.pedidoRepo.UpdateWithStock(id, quantidade)
	if err != nil {
		return nil, err
	}

	s.publish(rabbitmq.StockEvent{
		Tipo:      "pedido.atualizado",
		PedidoID:  atualizado.ID,
		ProdutoID: atualizado.ProdutoID,
		Delta:     atualizado.QuantidadeAnterior - atualizado.QuantidadeNova,
		Estoque:   atualizado.EstoqueAtualizado,
	})
	return atualizado, nil
}

// DeletePedido removes an order, restoring its quantity to stock.
func (s *PedidoService) DeletePedido(id uint) (*models.PedidoRemovido, error) {
	removido, err := s.pedidoRepo.DeleteWithStock(id)
	if err != nil {
		return nil, err
	}

	s.publish(rabbitmq.StockEvent{
		Tipo:      "pedido.removido",
		PedidoID:  removido.ID,
		ProdutoID: removido.ProdutoID,
		Delta:     removido.EstoqueRestaurado,
	})
	return removido, nil
}

func (s *PedidoService) publish(event rabbitmq.StockEvent) {
	if s.mq == nil {
		return
	}
	event.EventID = uuid.New().String()
	event.OcorreuEm = time.Now()
	if err := s.mq.PublishStockEvent(event); err != nil {
		log.Printf("Warning: failed to publish %s event for pedido %d: %v", event.Tipo, event.PedidoID, err)
	}
}
