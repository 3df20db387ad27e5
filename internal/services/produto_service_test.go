package services_test

import (
	"fmt"
	"testing"

	"painel/internal/models"
	"painel/internal/repositories"
	"painel/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProdutoRepository is a mock implementation of repositories.ProdutoRepository.
type MockProdutoRepository struct {
	mock.Mock
}

func (m *MockProdutoRepository) List(filter repositories.ProdutoFilter) ([]models.Produto, int64, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Produto), args.Get(1).(int64), args.Error(2)
}

func (m *MockProdutoRepository) GetByID(id uint) (*models.Produto, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Produto), args.Error(1)
}

func (m *MockProdutoRepository) Create(produto *models.Produto) error {
	args := m.Called(produto)
	return args.Error(0)
}

func (m *MockProdutoRepository) Patch(id uint, patch models.ProdutoPatch) error {
	args := m.Called(id, patch)
	return args.Error(0)
}

func (m *MockProdutoRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestProdutoServiceList(t *testing.T) {
	mockRepo := new(MockProdutoRepository)
	service := services.NewProdutoService(mockRepo, new(MockPedidoRepository))

	expected := []models.Produto{
		{ID: 1, Nome: "Notebook", Preco: 1200, Estoque: 10},
		{ID: 2, Nome: "Teclado", Preco: 75, Estoque: 25},
	}
	// The default page size is filled in before the repository is hit.
	mockRepo.On("List", repositories.ProdutoFilter{Limit: 100}).Return(expected, int64(2), nil).Once()

	produtos, total, err := service.ListProdutos(repositories.ProdutoFilter{})
	assert.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, expected, produtos)
	mockRepo.AssertExpectations(t)
}

func TestProdutoServiceCreateValidation(t *testing.T) {
	mockRepo := new(MockProdutoRepository)
	service := services.NewProdutoService(mockRepo, new(MockPedidoRepository))

	var validation *models.ValidationError

	err := service.CreateProduto(&models.Produto{Nome: "", Preco: 10})
	assert.ErrorAs(t, err, &validation)

	err = service.CreateProduto(&models.Produto{Nome: "Notebook", Preco: 100, Custo: -1})
	assert.ErrorAs(t, err, &validation)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything)

	produto := &models.Produto{Nome: "Notebook", Preco: 100, Estoque: 5}
	mockRepo.On("Create", produto).Return(nil).Once()
	assert.NoError(t, service.CreateProduto(produto))
	mockRepo.AssertExpectations(t)
}

func TestProdutoServicePatch(t *testing.T) {
	mockRepo := new(MockProdutoRepository)
	service := services.NewProdutoService(mockRepo, new(MockPedidoRepository))

	var validation *models.ValidationError

	err := service.PatchProduto(1, models.ProdutoPatch{})
	assert.ErrorAs(t, err, &validation)

	negativo := -5.0
	err = service.PatchProduto(1, models.ProdutoPatch{Preco: &negativo})
	assert.ErrorAs(t, err, &validation)
	mockRepo.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything)

	preco := 99.9
	patch := models.ProdutoPatch{Preco: &preco}
	mockRepo.On("Patch", uint(1), patch).Return(nil).Once()
	assert.NoError(t, service.PatchProduto(1, patch))

	mockRepo.On("Patch", uint(99), patch).Return(models.ErrProdutoNotFound).Once()
	err = service.PatchProduto(99, patch)
	assert.ErrorIs(t, err, models.ErrProdutoNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProdutoServiceDeleteReferenced(t *testing.T) {
	mockRepo := new(MockProdutoRepository)
	mockPedidos := new(MockPedidoRepository)
	service := services.NewProdutoService(mockRepo, mockPedidos)

	// A product with orders cannot be removed.
	mockPedidos.On("ExistsForProduto", uint(1)).Return(true, nil).Once()
	err := service.DeleteProduto(1)
	assert.ErrorIs(t, err, models.ErrProdutoReferenced)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything)

	mockPedidos.On("ExistsForProduto", uint(2)).Return(false, nil).Once()
	mockRepo.On("Delete", uint(2)).Return(nil).Once()
	assert.NoError(t, service.DeleteProduto(2))

	mockPedidos.On("ExistsForProduto", uint(3)).Return(false, fmt.Errorf("database error")).Once()
	err = service.DeleteProduto(3)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")

	mockRepo.AssertExpectations(t)
	mockPedidos.AssertExpectations(t)
}
