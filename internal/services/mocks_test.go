package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/xdSharp/Dashly-sub000/internal/models"
)

type MockSalesAnalytics struct {
	mock.Mock
}

var _ SalesAnalytics = (*MockSalesAnalytics)(nil)

func (m *MockSalesAnalytics) Summary(ctx context.Context, filters models.SaleFilters) (*models.SalesSummary, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SalesSummary), args.Error(1)
}

func (m *MockSalesAnalytics) RevenueByCategory(ctx context.Context, filters models.SaleFilters) ([]models.CategoryRevenue, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CategoryRevenue), args.Error(1)
}

func (m *MockSalesAnalytics) MonthlyRevenue(ctx context.Context, filters models.SaleFilters) ([]models.MonthlyRevenue, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MonthlyRevenue), args.Error(1)
}

func (m *MockSalesAnalytics) TopProducts(ctx context.Context, filters models.SaleFilters, limit int) ([]models.ProductSales, error) {
	args := m.Called(ctx, filters, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductSales), args.Error(1)
}

func (m *MockSalesAnalytics) PaymentMethods(ctx context.Context, filters models.SaleFilters) ([]models.PaymentMethodBreakdown, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PaymentMethodBreakdown), args.Error(1)
}

type MockSalesLister struct {
	mock.Mock
}

var _ SalesLister = (*MockSalesLister)(nil)

func (m *MockSalesLister) ListAll(ctx context.Context, filters models.SaleFilters) ([]models.Sale, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Sale), args.Error(1)
}

type MockBusinessStore struct {
	mock.Mock
}

var (
	_ BusinessStore    = (*MockBusinessStore)(nil)
	_ BusinessProvider = (*MockBusinessStore)(nil)
)

func (m *MockBusinessStore) GetOrCreate(ctx context.Context, ownerID uuid.UUID, name string) (*models.Business, error) {
	args := m.Called(ctx, ownerID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Business), args.Error(1)
}

func (m *MockBusinessStore) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Business, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Business), args.Error(1)
}

type MockUserStore struct {
	mock.Mock
}

var _ UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
