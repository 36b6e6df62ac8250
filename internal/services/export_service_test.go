package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/xdSharp/Dashly-sub000/internal/models"
)

func exportFixture(owner uuid.UUID) []models.Sale {
	card := "card"
	date := time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC)
	return []models.Sale{
		{
			OwnerID:       owner,
			Price:         "24.99",
			Quantity:      3,
			TotalAmount:   "74.97",
			SaleDate:      date,
			PaymentMethod: &card,
			Product: &models.Product{
				Name:     "Espresso Beans 1kg",
				Category: &models.Category{Name: "Coffee"},
			},
		},
		{
			OwnerID:     owner,
			Price:       "12.50",
			Quantity:    1,
			TotalAmount: "12.50",
			SaleDate:    date.AddDate(0, 0, 1),
			Product: &models.Product{
				Name:     "Ceramic Mug",
				Category: &models.Category{Name: "Merchandise"},
			},
		},
	}
}

func TestExportCSV(t *testing.T) {
	owner := uuid.New()
	filters := models.SaleFilters{OwnerID: owner}

	lister := new(MockSalesLister)
	lister.On("ListAll", mock.Anything, filters).Return(exportFixture(owner), nil)

	svc := NewExportService(lister)
	data, err := svc.ExportCSV(context.Background(), filters)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, exportColumns, records[0])
	assert.Equal(t, "Espresso Beans 1kg", records[1][0])
	assert.Equal(t, "Coffee", records[1][1])
	assert.Equal(t, "24.99", records[1][2])
	assert.Equal(t, "3", records[1][3])
	assert.Equal(t, "2025-11-04", records[1][5])
	assert.Equal(t, "card", records[1][9])

	// Optional fields stay empty when unset
	assert.Equal(t, "", records[2][9])
}

func TestExportXLSX(t *testing.T) {
	owner := uuid.New()
	filters := models.SaleFilters{OwnerID: owner}

	lister := new(MockSalesLister)
	lister.On("ListAll", mock.Anything, filters).Return(exportFixture(owner), nil)

	svc := NewExportService(lister)
	data, err := svc.ExportXLSX(context.Background(), filters)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sales")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "product_name", rows[0][0])
	assert.Equal(t, "Espresso Beans 1kg", rows[1][0])
	assert.Equal(t, "Merchandise", rows[2][1])
}

func TestExportCSV_Empty(t *testing.T) {
	owner := uuid.New()
	filters := models.SaleFilters{OwnerID: owner}

	lister := new(MockSalesLister)
	lister.On("ListAll", mock.Anything, filters).Return([]models.Sale{}, nil)

	svc := NewExportService(lister)
	data, err := svc.ExportCSV(context.Background(), filters)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1) // header only
}
