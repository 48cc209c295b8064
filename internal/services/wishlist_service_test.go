package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
)

// MockWishlistRepository is a mock implementation of repositories.WishlistRepository
type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) GetByClient(clientID string) ([]models.WishlistItem, error) {
	args := m.Called(clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WishlistItem), args.Error(1)
}

func (m *MockWishlistRepository) Add(item *models.WishlistItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockWishlistRepository) Remove(clientID, productID string) error {
	args := m.Called(clientID, productID)
	return args.Error(0)
}

func TestWishlistService_GetWishlist_SkipsStaleEntries(t *testing.T) {
	mockWishlist := new(MockWishlistRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewWishlistService(mockWishlist, mockProducts)

	items := []models.WishlistItem{
		{ClientID: "client-a", ProductID: "p1"},
		{ClientID: "client-a", ProductID: "gone"},
	}
	mockWishlist.On("GetByClient", "client-a").Return(items, nil).Once()
	mockProducts.On("GetByID", "p1").Return(&models.Product{ID: "p1", Name: "Mouse"}, nil).Once()
	mockProducts.On("GetByID", "gone").Return(nil, repositories.ErrProductNotFound).Once()

	products, err := service.GetWishlist("client-a")

	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "Mouse", products[0].Name)
	mockWishlist.AssertExpectations(t)
	mockProducts.AssertExpectations(t)
}

func TestWishlistService_AddToWishlist(t *testing.T) {
	mockWishlist := new(MockWishlistRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewWishlistService(mockWishlist, mockProducts)

	mockProducts.On("GetByID", "p1").Return(&models.Product{ID: "p1"}, nil).Once()
	mockWishlist.On("Add", mock.MatchedBy(func(item *models.WishlistItem) bool {
		return item.ClientID == "client-a" && item.ProductID == "p1"
	})).Return(nil).Once()

	err := service.AddToWishlist("client-a", "p1")

	assert.NoError(t, err)
	mockWishlist.AssertExpectations(t)
	mockProducts.AssertExpectations(t)
}

func TestWishlistService_AddToWishlist_UnknownProduct(t *testing.T) {
	mockWishlist := new(MockWishlistRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewWishlistService(mockWishlist, mockProducts)

	mockProducts.On("GetByID", "missing").Return(nil, repositories.ErrProductNotFound).Once()

	err := service.AddToWishlist("client-a", "missing")

	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	mockWishlist.AssertNotCalled(t, "Add", mock.Anything)
}

func TestWishlistService_RemoveFromWishlist(t *testing.T) {
	mockWishlist := new(MockWishlistRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewWishlistService(mockWishlist, mockProducts)

	mockWishlist.On("Remove", "client-a", "p1").Return(nil).Once()
	err := service.RemoveFromWishlist("client-a", "p1")
	assert.NoError(t, err)

	mockWishlist.On("Remove", "client-a", "p2").Return(repositories.ErrWishlistItemNotFound).Once()
	err = service.RemoveFromWishlist("client-a", "p2")
	assert.ErrorIs(t, err, repositories.ErrWishlistItemNotFound)
	mockWishlist.AssertExpectations(t)
}
