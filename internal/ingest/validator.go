package ingest

import (
	"fmt"
	"strconv"
	"strings"
)

// RequiredColumns are the header columns every upload must carry, checked in
// this order so the first missing one is named in the error.
var RequiredColumns = []string{
	"product_name",
	"category_name",
	"price",
	"quantity",
	"total_amount",
	"date",
}

// NumericColumns are coerced to floats during validation.
var NumericColumns = []string{"price", "quantity", "total_amount"}

// OptionalColumns may appear in the header and are carried through as strings.
var OptionalColumns = []string{"employee", "customer_name", "customer_email", "payment_method", "status"}

// Row is one validated upload row. Line is the 1-based data-line number
// (the header line is not counted), which doubles as the row number in
// batch error reporting. Values holds every column trimmed; Numbers holds
// the coerced numeric columns.
type Row struct {
	Line    int
	Values  map[string]string
	Numbers map[string]float64
}

// Validate splits raw CSV text into header and data lines and builds the
// ordered sequence of validated rows. Any failure here (bad header, line
// length mismatch, unparseable number) is batch-fatal: the whole file is
// malformed and no row gets processed.
func Validate(text string) ([]Row, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, fmt.Errorf("CSV file is empty")
	}

	header := ParseLine(lines[0])
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records [][]string
	for _, raw := range lines[1:] {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		records = append(records, ParseLine(raw))
	}

	return ValidateRecords(header, records)
}

// ValidateRecords validates a pre-tokenized header and data records. The CSV
// path arrives here via Validate; the XLSX import path feeds cell rows in
// directly.
func ValidateRecords(header []string, records [][]string) ([]Row, error) {
	for _, col := range RequiredColumns {
		if !containsColumn(header, col) {
			return nil, fmt.Errorf("Missing required column: %s", col)
		}
	}

	rows := make([]Row, 0, len(records))
	for i, fields := range records {
		line := i + 1
		if len(fields) != len(header) {
			return nil, fmt.Errorf("Line %d has %d values but expected %d", line, len(fields), len(header))
		}

		row := Row{
			Line:    line,
			Values:  make(map[string]string, len(header)),
			Numbers: make(map[string]float64, len(NumericColumns)),
		}
		for j, col := range header {
			row.Values[col] = strings.TrimSpace(fields[j])
		}
		for _, col := range NumericColumns {
			v := row.Values[col]
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("Invalid number for %s in line %d: %s", col, line, v)
			}
			row.Numbers[col] = f
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func containsColumn(header []string, name string) bool {
	for _, h := range header {
		if h == name {
			return true
		}
	}
	return false
}
