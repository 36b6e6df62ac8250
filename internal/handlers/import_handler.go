package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/xdSharp/Dashly-sub000/internal/ingest"
	"github.com/xdSharp/Dashly-sub000/internal/services"
)

// ImportFormat represents the file format for import
type ImportFormat string

const (
	ImportFormatCSV  ImportFormat = "csv"
	ImportFormatXLSX ImportFormat = "xlsx"
)

// ImportTemplateColumn defines a column in the import template
type ImportTemplateColumn struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Type        string `json:"type"`
	Example     string `json:"example"`
}

// ImportTemplate defines the structure of an import template
type ImportTemplate struct {
	Entity     string                 `json:"entity"`
	Version    string                 `json:"version"`
	Columns    []ImportTemplateColumn `json:"columns"`
	SampleData []map[string]string    `json:"sampleData,omitempty"`
}

type ImportHandler struct {
	ingest    *ingest.Service
	analytics *services.AnalyticsService
}

func NewImportHandler(ingestService *ingest.Service, analytics *services.AnalyticsService) *ImportHandler {
	return &ImportHandler{ingest: ingestService, analytics: analytics}
}

// SalesImportTemplate returns the template definition for sales uploads
func SalesImportTemplate() ImportTemplate {
	return ImportTemplate{
		Entity:  "sales",
		Version: "1.0",
		Columns: []ImportTemplateColumn{
			{Name: "product_name", Description: "Product name (created on first use)", Required: true, Type: "string", Example: "Espresso Beans 1kg"},
			{Name: "category_name", Description: "Category name (created on first use)", Required: true, Type: "string", Example: "Coffee"},
			{Name: "price", Description: "Unit price", Required: true, Type: "number", Example: "24.99"},
			{Name: "quantity", Description: "Units sold", Required: true, Type: "number", Example: "3"},
			{Name: "total_amount", Description: "Total paid for the line", Required: true, Type: "number", Example: "74.97"},
			{Name: "date", Description: "Sale date (YYYY-MM-DD or RFC 3339)", Required: true, Type: "date", Example: "2025-11-04"},
			{Name: "employee", Description: "Employee who recorded the sale", Required: false, Type: "string", Example: "Dana"},
			{Name: "customer_name", Description: "Customer name", Required: false, Type: "string", Example: "Acme, Inc."},
			{Name: "customer_email", Description: "Customer email", Required: false, Type: "string", Example: "billing@acme.test"},
			{Name: "payment_method", Description: "Payment method", Required: false, Type: "string", Example: "card"},
			{Name: "status", Description: "Sale status", Required: false, Type: "string", Example: "completed"},
		},
		SampleData: []map[string]string{
			{
				"product_name":   "Espresso Beans 1kg",
				"category_name":  "Coffee",
				"price":          "24.99",
				"quantity":       "3",
				"total_amount":   "74.97",
				"date":           "2025-11-04",
				"employee":       "Dana",
				"customer_name":  "Acme, Inc.",
				"customer_email": "billing@acme.test",
				"payment_method": "card",
				"status":         "completed",
			},
			{
				"product_name":   "Ceramic Mug",
				"category_name":  "Merchandise",
				"price":          "12.50",
				"quantity":       "1",
				"total_amount":   "12.50",
				"date":           "2025-11-05",
				"employee":       "",
				"customer_name":  "",
				"customer_email": "",
				"payment_method": "cash",
				"status":         "completed",
			},
		},
	}
}

// GetImportTemplate returns the import template definition or file
// GET /api/v1/sales/import/template
func (h *ImportHandler) GetImportTemplate(c *gin.Context) {
	format := c.DefaultQuery("format", "json")

	template := SalesImportTemplate()

	switch format {
	case "csv":
		h.generateCSVTemplate(c, template)
	case "xlsx":
		h.generateXLSXTemplate(c, template)
	default:
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"template": template,
		})
	}
}

// generateCSVTemplate generates and downloads a CSV template
func (h *ImportHandler) generateCSVTemplate(c *gin.Context, template ImportTemplate) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=sales_import_template.csv")

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	headers := make([]string, len(template.Columns))
	for i, col := range template.Columns {
		headers[i] = col.Name
	}
	writer.Write(headers)

	for _, sample := range template.SampleData {
		row := make([]string, len(template.Columns))
		for i, col := range template.Columns {
			row[i] = sample[col.Name]
		}
		writer.Write(row)
	}
}

// generateXLSXTemplate generates and downloads an Excel template
func (h *ImportHandler) generateXLSXTemplate(c *gin.Context, template ImportTemplate) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sales"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})

	requiredStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"C65911"}, Pattern: 1},
	})

	for i, col := range template.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col.Name)

		if col.Required {
			f.SetCellStyle(sheetName, cell, cell, requiredStyle)
		} else {
			f.SetCellStyle(sheetName, cell, cell, headerStyle)
		}

		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	for rowIdx, sample := range template.SampleData {
		for colIdx, col := range template.Columns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, sample[col.Name])
		}
	}

	f.NewSheet("Instructions")
	f.SetCellValue("Instructions", "A1", "Sales Import Instructions")
	f.SetCellValue("Instructions", "A3", "Column Definitions:")

	for i, col := range template.Columns {
		row := i + 4
		f.SetCellValue("Instructions", fmt.Sprintf("A%d", row), col.Name)
		f.SetCellValue("Instructions", fmt.Sprintf("B%d", row), col.Description)
		required := "Optional"
		if col.Required {
			required = "Required"
		}
		f.SetCellValue("Instructions", fmt.Sprintf("C%d", row), required)
		f.SetCellValue("Instructions", fmt.Sprintf("D%d", row), col.Type)
		f.SetCellValue("Instructions", fmt.Sprintf("E%d", row), col.Example)
	}

	f.SetColWidth("Instructions", "A", "A", 20)
	f.SetColWidth("Instructions", "B", "B", 40)
	f.SetColWidth("Instructions", "C", "C", 15)
	f.SetColWidth("Instructions", "D", "D", 15)
	f.SetColWidth("Instructions", "E", "E", 40)

	sheetIdx, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIdx)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=sales_import_template.xlsx")

	f.Write(c.Writer)
}

// ImportSales imports sales from a CSV or Excel file. Malformed files are
// rejected whole; row-level failures are reported per row while the rest
// of the batch goes through.
// POST /api/v1/sales/import
func (h *ImportHandler) ImportSales(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "FILE_REQUIRED", "Please upload a CSV or Excel file")
		return
	}
	defer file.Close()

	filename := strings.ToLower(header.Filename)
	var format ImportFormat
	switch {
	case strings.HasSuffix(filename, ".csv"):
		format = ImportFormatCSV
	case strings.HasSuffix(filename, ".xlsx"):
		format = ImportFormatXLSX
	default:
		respondError(c, http.StatusBadRequest, "INVALID_FORMAT", "Only CSV and XLSX files are supported")
		return
	}

	var result *ingest.BatchResult
	if format == ImportFormatCSV {
		data, err := io.ReadAll(file)
		if err != nil {
			respondError(c, http.StatusBadRequest, "READ_ERROR", "Failed to read uploaded file")
			return
		}
		result, err = h.ingest.ImportCSV(c.Request.Context(), owner, string(data))
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_FILE", err.Error())
			return
		}
	} else {
		csvHeader, records, err := readXLSX(file)
		if err != nil {
			respondError(c, http.StatusBadRequest, "PARSE_ERROR", err.Error())
			return
		}
		result, err = h.ingest.ImportRecords(c.Request.Context(), owner, csvHeader, records)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_FILE", err.Error())
			return
		}
	}

	h.analytics.InvalidateDashboard(c.Request.Context(), owner)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// readXLSX pulls the header and data records out of the first sheet.
// Excelize drops trailing empty cells, so short rows are padded back to
// the header width before validation.
func readXLSX(file io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("no sheets found in Excel file")
	}

	sheetName := sheets[0]
	for _, name := range sheets {
		if strings.EqualFold(name, "Sales") {
			sheetName = name
			break
		}
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("the file contains no data rows")
	}

	header := rows[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records [][]string
	for _, row := range rows[1:] {
		empty := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		record := row
		if len(row) < len(header) {
			record = make([]string, len(header))
			copy(record, row)
		}
		records = append(records, record)
	}

	return header, records, nil
}
