package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xdSharp/Dashly-sub000/internal/models"
)

func TestParsePeriod(t *testing.T) {
	from, to, err := ParsePeriod("2025-01-01", "2025-01-31")
	require.NoError(t, err)
	require.NotNil(t, from)
	require.NotNil(t, to)

	assert.Equal(t, 2025, from.Year())
	assert.Equal(t, time.January, from.Month())
	assert.Equal(t, 1, from.Day())

	// The "to" bound covers the whole day
	assert.Equal(t, 31, to.Day())
	assert.Equal(t, 23, to.Hour())
	assert.Equal(t, 59, to.Minute())
}

func TestParsePeriod_Empty(t *testing.T) {
	from, to, err := ParsePeriod("", "")
	require.NoError(t, err)
	assert.Nil(t, from)
	assert.Nil(t, to)
}

func TestParsePeriod_Invalid(t *testing.T) {
	_, _, err := ParsePeriod("01/01/2025", "")
	assert.Error(t, err)

	_, _, err = ParsePeriod("", "not-a-date")
	assert.Error(t, err)
}

func TestDashboard_AssemblesAllSections(t *testing.T) {
	owner := uuid.New()
	filters := models.SaleFilters{OwnerID: owner}

	sales := new(MockSalesAnalytics)
	sales.On("Summary", mock.Anything, filters).Return(&models.SalesSummary{
		TotalRevenue: 149.97,
		SaleCount:    3,
		UnitsSold:    5,
		AverageSale:  49.99,
	}, nil)
	sales.On("RevenueByCategory", mock.Anything, filters).Return([]models.CategoryRevenue{
		{CategoryName: "Coffee", Revenue: 149.97, SaleCount: 3},
	}, nil)
	sales.On("MonthlyRevenue", mock.Anything, filters).Return([]models.MonthlyRevenue{
		{Month: "2025-11", Revenue: 149.97, SaleCount: 3},
	}, nil)
	sales.On("TopProducts", mock.Anything, filters, topProductsLimit).Return([]models.ProductSales{
		{ProductName: "Espresso Beans 1kg", UnitsSold: 5, Revenue: 149.97},
	}, nil)
	sales.On("PaymentMethods", mock.Anything, filters).Return([]models.PaymentMethodBreakdown{
		{PaymentMethod: "card", SaleCount: 3, Revenue: 149.97},
	}, nil)

	svc := NewAnalyticsService(sales, nil)
	dashboard, err := svc.Dashboard(context.Background(), owner, filters)

	require.NoError(t, err)
	assert.Equal(t, 149.97, dashboard.Summary.TotalRevenue)
	assert.Len(t, dashboard.ByCategory, 1)
	assert.Equal(t, "2025-11", dashboard.Monthly[0].Month)
	assert.Equal(t, "Espresso Beans 1kg", dashboard.TopProducts[0].ProductName)
	assert.Equal(t, "card", dashboard.PaymentMethods[0].PaymentMethod)
	sales.AssertExpectations(t)
}

func TestDashboard_PropagatesErrors(t *testing.T) {
	owner := uuid.New()
	filters := models.SaleFilters{OwnerID: owner}

	sales := new(MockSalesAnalytics)
	sales.On("Summary", mock.Anything, filters).Return(nil, assert.AnError)

	svc := NewAnalyticsService(sales, nil)
	_, err := svc.Dashboard(context.Background(), owner, filters)
	assert.Error(t, err)
}
