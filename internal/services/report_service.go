package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/xdSharp/Dashly-sub000/internal/models"
)

// BusinessProvider loads the business profile stamped onto reports.
type BusinessProvider interface {
	GetOrCreate(ctx context.Context, ownerID uuid.UUID, name string) (*models.Business, error)
}

// ReportData is everything that goes onto a sales report PDF.
type ReportData struct {
	Business       *models.Business
	PeriodFrom     *time.Time
	PeriodTo       *time.Time
	Summary        *models.SalesSummary
	ByCategory     []models.CategoryRevenue
	TopProducts    []models.ProductSales
	PaymentMethods []models.PaymentMethodBreakdown
	GeneratedAt    time.Time
}

// ReportService renders sales analytics into downloadable PDF reports.
type ReportService struct {
	sales      SalesAnalytics
	businesses BusinessProvider
}

func NewReportService(sales SalesAnalytics, businesses BusinessProvider) *ReportService {
	return &ReportService{sales: sales, businesses: businesses}
}

// GenerateSalesReport builds the PDF for one owner and period.
func (s *ReportService) GenerateSalesReport(ctx context.Context, ownerID uuid.UUID, filters models.SaleFilters) ([]byte, error) {
	business, err := s.businesses.GetOrCreate(ctx, ownerID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load business profile: %w", err)
	}

	summary, err := s.sales.Summary(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to compute summary: %w", err)
	}

	byCategory, err := s.sales.RevenueByCategory(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to compute category revenue: %w", err)
	}

	topProducts, err := s.sales.TopProducts(ctx, filters, topProductsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to compute top products: %w", err)
	}

	paymentMethods, err := s.sales.PaymentMethods(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to compute payment method breakdown: %w", err)
	}

	data := &ReportData{
		Business:       business,
		PeriodFrom:     filters.DateFrom,
		PeriodTo:       filters.DateTo,
		Summary:        summary,
		ByCategory:     byCategory,
		TopProducts:    topProducts,
		PaymentMethods: paymentMethods,
		GeneratedAt:    time.Now(),
	}

	return s.generatePDF(data)
}

// generatePDF renders the report using maroto
func (s *ReportService) generatePDF(data *ReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber().
		WithLeftMargin(10).
		WithTopMargin(15).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	s.addHeader(m, data)
	s.addSummary(m, data)
	s.addCategoryTable(m, data)
	s.addTopProductsTable(m, data)
	s.addPaymentMethodsTable(m, data)
	s.addFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addHeader adds the business identity and the report period
func (s *ReportService) addHeader(m core.Maroto, data *ReportData) {
	business := data.Business

	m.AddRow(30,
		col.New(6).Add(
			text.New(business.Name, props.Text{
				Size:  16,
				Style: fontstyle.Bold,
				Align: align.Left,
			}),
			text.New(business.Address, props.Text{
				Size:  9,
				Top:   8,
				Align: align.Left,
			}),
			text.New(business.Email, props.Text{
				Size:  9,
				Top:   13,
				Align: align.Left,
			}),
		),
		col.New(6).Add(
			text.New("SALES REPORT", props.Text{
				Size:  20,
				Style: fontstyle.Bold,
				Align: align.Right,
			}),
			text.New(formatPeriod(data.PeriodFrom, data.PeriodTo), props.Text{
				Size:  10,
				Top:   8,
				Align: align.Right,
			}),
		),
	)

	m.AddRow(5, line.NewCol(12))
}

// addSummary adds the headline numbers
func (s *ReportService) addSummary(m core.Maroto, data *ReportData) {
	currency := currencySymbol(data.Business.Currency)

	m.AddRow(10,
		col.New(12).Add(
			text.New("Summary", props.Text{
				Size:  12,
				Style: fontstyle.Bold,
				Align: align.Left,
			}),
		),
	)

	m.AddRow(18,
		summaryCell("Total Revenue", fmt.Sprintf("%s%.2f", currency, data.Summary.TotalRevenue)),
		summaryCell("Sales", fmt.Sprintf("%d", data.Summary.SaleCount)),
		summaryCell("Units Sold", fmt.Sprintf("%d", data.Summary.UnitsSold)),
		summaryCell("Average Sale", fmt.Sprintf("%s%.2f", currency, data.Summary.AverageSale)),
	)

	m.AddRow(5, line.NewCol(12))
}

func summaryCell(label, value string) core.Col {
	return col.New(3).Add(
		text.New(label, props.Text{
			Size:  9,
			Align: align.Center,
		}),
		text.New(value, props.Text{
			Size:  13,
			Style: fontstyle.Bold,
			Top:   6,
			Align: align.Center,
		}),
	)
}

// addCategoryTable adds the revenue-by-category breakdown
func (s *ReportService) addCategoryTable(m core.Maroto, data *ReportData) {
	if len(data.ByCategory) == 0 {
		return
	}

	currency := currencySymbol(data.Business.Currency)

	m.AddRow(10,
		col.New(12).Add(
			text.New("Revenue by Category", props.Text{
				Size:  12,
				Style: fontstyle.Bold,
				Align: align.Left,
			}),
		),
	)

	m.AddRow(8,
		tableHeaderCell(6, "Category", align.Left),
		tableHeaderCell(3, "Sales", align.Center),
		tableHeaderCell(3, "Revenue", align.Right),
	)
	m.AddRow(2, line.NewCol(12))

	for _, row := range data.ByCategory {
		m.AddRow(7,
			tableCell(6, row.CategoryName, align.Left),
			tableCell(3, fmt.Sprintf("%d", row.SaleCount), align.Center),
			tableCell(3, fmt.Sprintf("%s%.2f", currency, row.Revenue), align.Right),
		)
	}

	m.AddRow(5, line.NewCol(12))
}

// addTopProductsTable adds the best-sellers table
func (s *ReportService) addTopProductsTable(m core.Maroto, data *ReportData) {
	if len(data.TopProducts) == 0 {
		return
	}

	currency := currencySymbol(data.Business.Currency)

	m.AddRow(10,
		col.New(12).Add(
			text.New("Top Products", props.Text{
				Size:  12,
				Style: fontstyle.Bold,
				Align: align.Left,
			}),
		),
	)

	m.AddRow(8,
		tableHeaderCell(6, "Product", align.Left),
		tableHeaderCell(3, "Units", align.Center),
		tableHeaderCell(3, "Revenue", align.Right),
	)
	m.AddRow(2, line.NewCol(12))

	for _, row := range data.TopProducts {
		m.AddRow(7,
			tableCell(6, row.ProductName, align.Left),
			tableCell(3, fmt.Sprintf("%d", row.UnitsSold), align.Center),
			tableCell(3, fmt.Sprintf("%s%.2f", currency, row.Revenue), align.Right),
		)
	}

	m.AddRow(5, line.NewCol(12))
}

// addPaymentMethodsTable adds the payment-method breakdown
func (s *ReportService) addPaymentMethodsTable(m core.Maroto, data *ReportData) {
	if len(data.PaymentMethods) == 0 {
		return
	}

	currency := currencySymbol(data.Business.Currency)

	m.AddRow(10,
		col.New(12).Add(
			text.New("Payment Methods", props.Text{
				Size:  12,
				Style: fontstyle.Bold,
				Align: align.Left,
			}),
		),
	)

	m.AddRow(8,
		tableHeaderCell(6, "Method", align.Left),
		tableHeaderCell(3, "Sales", align.Center),
		tableHeaderCell(3, "Revenue", align.Right),
	)
	m.AddRow(2, line.NewCol(12))

	for _, row := range data.PaymentMethods {
		m.AddRow(7,
			tableCell(6, row.PaymentMethod, align.Left),
			tableCell(3, fmt.Sprintf("%d", row.SaleCount), align.Center),
			tableCell(3, fmt.Sprintf("%s%.2f", currency, row.Revenue), align.Right),
		)
	}

	m.AddRow(5, line.NewCol(12))
}

// addFooter adds the footer text and generation timestamp
func (s *ReportService) addFooter(m core.Maroto, data *ReportData) {
	footer := data.Business.FooterText
	if footer == "" {
		footer = "Generated by Dashly"
	}

	m.AddRow(15,
		col.New(12).Add(
			text.New(footer, props.Text{
				Size:  9,
				Top:   5,
				Align: align.Center,
			}),
			text.New(fmt.Sprintf("Generated on %s", data.GeneratedAt.Format("Jan 02, 2006 15:04")), props.Text{
				Size:  8,
				Top:   10,
				Align: align.Center,
			}),
		),
	)
}

func tableHeaderCell(width int, label string, alignment align.Type) core.Col {
	return col.New(width).Add(
		text.New(label, props.Text{
			Size:  10,
			Style: fontstyle.Bold,
			Align: alignment,
		}),
	)
}

func tableCell(width int, value string, alignment align.Type) core.Col {
	return col.New(width).Add(
		text.New(value, props.Text{
			Size:  9,
			Align: alignment,
		}),
	)
}

func formatPeriod(from, to *time.Time) string {
	switch {
	case from != nil && to != nil:
		return fmt.Sprintf("%s - %s", from.Format("Jan 02, 2006"), to.Format("Jan 02, 2006"))
	case from != nil:
		return fmt.Sprintf("From %s", from.Format("Jan 02, 2006"))
	case to != nil:
		return fmt.Sprintf("Until %s", to.Format("Jan 02, 2006"))
	default:
		return "All time"
	}
}

func currencySymbol(code string) string {
	switch code {
	case "USD":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	case "RUB":
		return "₽"
	default:
		return code + " "
	}
}
