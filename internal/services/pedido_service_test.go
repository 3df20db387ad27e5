package services_test

import (
	"fmt"
	"testing"

	"painel/internal/models"
	"painel/internal/repositories"
	"painel/internal/services"
	"painel/pkg/rabbitmq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPedidoRepository is a mock implementation of repositories.PedidoRepository.
type MockPedidoRepository struct {
	mock.Mock
}

func (m *MockPedidoRepository) List(filter repositories.PedidoFilter) ([]models.PedidoResumo, int64, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.PedidoResumo), args.Get(1).(int64), args.Error(2)
}

func (m *MockPedidoRepository) GetByID(id uint) (*models.PedidoDetalhe, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PedidoDetalhe), args.Error(1)
}

func (m *MockPedidoRepository) CreateWithStock(produtoID, vendedorID uint, quantidade int) (*models.PedidoCriado, error) {
	args := m.Called(produtoID, vendedorID, quantidade)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PedidoCriado), args.Error(1)
}

func (m *MockPedidoRepository) UpdateWithStock(id uint, quantidade int) (*models.PedidoAtualizado, error) {
	args := m.Called(id, quantidade)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PedidoAtualizado), args.Error(1)
}

func (m *MockPedidoRepository) DeleteWithStock(id uint) (*models.PedidoRemovido, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PedidoRemovido), args.Error(1)
}

func (m *MockPedidoRepository) ExistsForProduto(produtoID uint) (bool, error) {
	args := m.Called(produtoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPedidoRepository) ExistsForVendedor(vendedorID uint) (bool, error) {
	args := m.Called(vendedorID)
	return args.Bool(0), args.Error(1)
}

// MockPublisher is a mock implementation of services.StockEventPublisher.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishStockEvent(event rabbitmq.StockEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func TestPedidoServiceCreateValidation(t *testing.T) {
	mockRepo := new(MockPedidoRepository)
	service := services.NewPedidoService(mockRepo, nil)

	_, err := service.CreatePedido(0, 1, 3)
	var validation *models.ValidationError
	assert.ErrorAs(t, err, &validation)

	_, err = service.CreatePedido(1, 1, -2)
	assert.ErrorAs(t, err, &validation)

	// Invalid input never reaches the repository.
	mockRepo.AssertNotCalled(t, "CreateWithStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestPedidoServiceCreatePublishesEvent(t *testing.T) {
	mockRepo := new(MockPedidoRepository)
	mockMQ := new(MockPublisher)
	service := services.NewPedidoService(mockRepo, mockMQ)

	criado := &models.PedidoCriado{
		ID: 7, ProdutoID: 1, VendedorID: 2, Quantidade: 3,
		PrecoUnitario: 100, PrecoTotal: 300,
		EstoqueAnterior: 5, EstoqueAtual: 2,
	}
	mockRepo.On("CreateWithStock", uint(1), uint(2), 3).Return(criado, nil).Once()
	mockMQ.On("PublishStockEvent", mock.MatchedBy(func(e rabbitmq.StockEvent) bool {
		return e.Tipo == "pedido.criado" && e.PedidoID == 7 && e.Delta == -3 && e.Estoque == 2 && e.EventID != ""
	})).Return(nil).Once()

	got, err := service.CreatePedido(1, 2, 3)
	assert.NoError(t, err)
	assert.Equal(t, criado, got)
	mockRepo.AssertExpectations(t)
	mockMQ.AssertExpectations(t)
}

func TestPedidoServiceCreateRepoErrorSkipsPublish(t *testing.T) {
	mockRepo := new(MockPedidoRepository)
	mockMQ := new(MockPublisher)
	service := services.NewPedidoService(mockRepo, mockMQ)

	stockErr := &models.InsufficientStockError{ProdutoID: 1, Disponivel: 2}
	mockRepo.On("CreateWithStock", uint(1), uint(2), 3).Return(nil, stockErr).Once()

	_, err := service.CreatePedido(1, 2, 3)
	var got *models.InsufficientStockError
	assert.ErrorAs(t, err, &got)
	assert.Equal(t, 2, got.Disponivel)

	mockMQ.AssertNotCalled(t, "PublishStockEvent", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestPedidoServiceCreatePublishFailureIsNotFatal(t *testing.T) {
	mockRepo := new(MockPedidoRepository)
	mockMQ := new(MockPublisher)
	service := services.NewPedidoService(mockRepo, mockMQ)

	criado := &models.PedidoCriado{ID: 1, ProdutoID: 1, Quantidade: 1, EstoqueAtual: 4}
	mockRepo.On("CreateWithStock", uint(1), uint(2), 1).Return(criado, nil).Once()
	mockMQ.On("PublishStockEvent", mock.Anything).Return(fmt.Errorf("broker down")).Once()

	// The commit already happened; a broker failure must not surface.
	got, err := service.CreatePedido(1, 2, 1)
	assert.NoError(t, err)
	assert.Equal(t, criado, got)
	mockMQ.AssertExpectations(t)
}

func TestPedidoServiceUpdate(t *testing.T) {
	mockRepo := new(MockPedidoRepository)
	mockMQ := new(MockPublisher)
	service := services.NewPedidoService(mockRepo, mockMQ)

	_, err := service.UpdatePedido(5, 0)
	var validation *models.ValidationError
	assert.ErrorAs(t, err, &validation)
	mockRepo.AssertNotCalled(t, "UpdateWithStock", mock.Anything, mock.Anything)

	atualizado := &models.PedidoAtualizado{
		ID: 5, ProdutoID: 1,
		QuantidadeAnterior: 3, QuantidadeNova: 4,
		PrecoTotal: 400, EstoqueAtualizado: 1,
	}
	mockRepo.On("UpdateWithStock", uint(5), 4).Return(atualizado, nil).Once()
	mockMQ.On("PublishStockEvent", mock.MatchedBy(func(e rabbitmq.StockEvent) bool {
		return e.Tipo == "pedido.atualizado" && e.Delta == -1 && e.Estoque == 1
	})).Return(nil).Once()

	got, err := service.UpdatePedido(5, 4)
	assert.NoError(t, err)
	assert.Equal(t, atualizado, got)
	mockRepo.AssertExpectations(t)
	mockMQ.AssertExpectations(t)
}

func TestPedidoServiceDelete(t *testing.T) {
	mockRepo := new(MockPedidoRepository)
	mockMQ := new(MockPublisher)
	service := services.NewPedidoService(mockRepo, mockMQ)

	removido := &models.PedidoRemovido{ID: 5, ProdutoID: 1, EstoqueRestaurado: 3}
	mockRepo.On("DeleteWithStock", uint(5)).Return(removido, nil).Once()
	mockMQ.On("PublishStockEvent", mock.MatchedBy(func(e rabbitmq.StockEvent) bool {
		return e.Tipo == "pedido.removido" && e.Delta == 3
	})).Return(nil).Once()

	got, err := service.DeletePedido(5)
	assert.NoError(t, err)
	assert.Equal(t, 3, got.EstoqueRestaurado)
	mockRepo.AssertExpectations(t)
	mockMQ.AssertExpectations(t)

	mockRepo.On("DeleteWithStock", uint(99)).Return(nil, models.ErrPedidoNotFound).Once()
	_, err = service.DeletePedido(99)
	assert.ErrorIs(t, err, models.ErrPedidoNotFound)
}
