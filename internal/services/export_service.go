package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/xdSharp/Dashly-sub000/internal/models"
)

// SalesLister is the slice of the sale repository the export service reads.
type SalesLister interface {
	ListAll(ctx context.Context, filters models.SaleFilters) ([]models.Sale, error)
}

// exportColumns mirror the import header so an export round-trips
// through the import endpoint unchanged.
var exportColumns = []string{
	"product_name",
	"category_name",
	"price",
	"quantity",
	"total_amount",
	"date",
	"employee",
	"customer_name",
	"customer_email",
	"payment_method",
	"status",
}

// ExportService renders an owner's sales into downloadable CSV or XLSX files.
type ExportService struct {
	sales SalesLister
}

func NewExportService(sales SalesLister) *ExportService {
	return &ExportService{sales: sales}
}

// ExportCSV writes every sale matching the filters as CSV.
func (s *ExportService) ExportCSV(ctx context.Context, filters models.SaleFilters) ([]byte, error) {
	sales, err := s.sales.ListAll(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportColumns); err != nil {
		return nil, err
	}
	for _, sale := range sales {
		if err := writer.Write(exportRow(&sale)); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportXLSX writes every sale matching the filters as an Excel workbook.
func (s *ExportService) ExportXLSX(ctx context.Context, filters models.SaleFilters) ([]byte, error) {
	sales, err := s.sales.ListAll(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sales"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})

	for i, column := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, column)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)

		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 18)
	}

	for rowIdx, sale := range sales {
		for colIdx, value := range exportRow(&sale) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func exportRow(sale *models.Sale) []string {
	productName, categoryName := "", ""
	if sale.Product != nil {
		productName = sale.Product.Name
		if sale.Product.Category != nil {
			categoryName = sale.Product.Category.Name
		}
	}

	return []string{
		productName,
		categoryName,
		sale.Price,
		fmt.Sprintf("%d", sale.Quantity),
		sale.TotalAmount,
		sale.SaleDate.Format("2006-01-02"),
		derefString(sale.Employee),
		derefString(sale.CustomerName),
		derefString(sale.CustomerEmail),
		derefString(sale.PaymentMethod),
		derefString(sale.Status),
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
