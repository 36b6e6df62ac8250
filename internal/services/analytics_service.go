package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/xdSharp/Dashly-sub000/internal/models"
)

const (
	dashboardCacheTTL = 2 * time.Minute
	topProductsLimit  = 10
)

// SalesAnalytics is the slice of the sale repository the analytics
// service aggregates over.
type SalesAnalytics interface {
	Summary(ctx context.Context, filters models.SaleFilters) (*models.SalesSummary, error)
	RevenueByCategory(ctx context.Context, filters models.SaleFilters) ([]models.CategoryRevenue, error)
	MonthlyRevenue(ctx context.Context, filters models.SaleFilters) ([]models.MonthlyRevenue, error)
	TopProducts(ctx context.Context, filters models.SaleFilters, limit int) ([]models.ProductSales, error)
	PaymentMethods(ctx context.Context, filters models.SaleFilters) ([]models.PaymentMethodBreakdown, error)
}

// AnalyticsService assembles dashboard aggregates for one owner.
type AnalyticsService struct {
	sales SalesAnalytics
	redis *redis.Client
}

func NewAnalyticsService(sales SalesAnalytics, redisClient *redis.Client) *AnalyticsService {
	return &AnalyticsService{sales: sales, redis: redisClient}
}

// ParsePeriod converts from/to query strings into filter timestamps.
// The "to" bound is pushed to end of day so a same-day range matches.
func ParsePeriod(from, to string) (*time.Time, *time.Time, error) {
	var dateFrom, dateTo *time.Time

	if from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid from date: %s", from)
		}
		dateFrom = &t
	}
	if to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid to date: %s", to)
		}
		end := t.Add(24*time.Hour - time.Nanosecond)
		dateTo = &end
	}
	return dateFrom, dateTo, nil
}

// Summary returns the headline numbers for a period.
func (s *AnalyticsService) Summary(ctx context.Context, filters models.SaleFilters) (*models.SalesSummary, error) {
	return s.sales.Summary(ctx, filters)
}

// RevenueByCategory returns the revenue breakdown per category.
func (s *AnalyticsService) RevenueByCategory(ctx context.Context, filters models.SaleFilters) ([]models.CategoryRevenue, error) {
	return s.sales.RevenueByCategory(ctx, filters)
}

// MonthlyRevenue returns the month-by-month revenue series.
func (s *AnalyticsService) MonthlyRevenue(ctx context.Context, filters models.SaleFilters) ([]models.MonthlyRevenue, error) {
	return s.sales.MonthlyRevenue(ctx, filters)
}

// TopProducts returns the best sellers for a period.
func (s *AnalyticsService) TopProducts(ctx context.Context, filters models.SaleFilters) ([]models.ProductSales, error) {
	return s.sales.TopProducts(ctx, filters, topProductsLimit)
}

// PaymentMethods returns the sale counts and revenue per payment method.
func (s *AnalyticsService) PaymentMethods(ctx context.Context, filters models.SaleFilters) ([]models.PaymentMethodBreakdown, error) {
	return s.sales.PaymentMethods(ctx, filters)
}

// Dashboard assembles the combined analytics payload. Results are cached
// briefly in Redis since the frontend polls this endpoint.
func (s *AnalyticsService) Dashboard(ctx context.Context, ownerID uuid.UUID, filters models.SaleFilters) (*models.Dashboard, error) {
	cacheKey := dashboardCacheKey(ownerID, filters)

	if s.redis != nil {
		cached, err := s.redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var dashboard models.Dashboard
			if json.Unmarshal([]byte(cached), &dashboard) == nil {
				return &dashboard, nil
			}
		}
	}

	summary, err := s.sales.Summary(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to compute summary: %w", err)
	}

	byCategory, err := s.sales.RevenueByCategory(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to compute category revenue: %w", err)
	}

	monthly, err := s.sales.MonthlyRevenue(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly revenue: %w", err)
	}

	topProducts, err := s.sales.TopProducts(ctx, filters, topProductsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to compute top products: %w", err)
	}

	paymentMethods, err := s.sales.PaymentMethods(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to compute payment method breakdown: %w", err)
	}

	dashboard := &models.Dashboard{
		Summary:        *summary,
		ByCategory:     byCategory,
		Monthly:        monthly,
		TopProducts:    topProducts,
		PaymentMethods: paymentMethods,
	}

	if s.redis != nil {
		if data, err := json.Marshal(dashboard); err == nil {
			s.redis.Set(ctx, cacheKey, data, dashboardCacheTTL)
		}
	}

	return dashboard, nil
}

// InvalidateDashboard drops cached dashboards after an import or a
// sale mutation.
func (s *AnalyticsService) InvalidateDashboard(ctx context.Context, ownerID uuid.UUID) {
	if s.redis == nil {
		return
	}
	pattern := fmt.Sprintf("dashly:dashboard:%s:*", ownerID)
	keys, err := s.redis.Keys(ctx, pattern).Result()
	if err == nil && len(keys) > 0 {
		s.redis.Del(ctx, keys...)
	}
}

func dashboardCacheKey(ownerID uuid.UUID, filters models.SaleFilters) string {
	from, to := "", ""
	if filters.DateFrom != nil {
		from = filters.DateFrom.Format("2006-01-02")
	}
	if filters.DateTo != nil {
		to = filters.DateTo.Format("2006-01-02")
	}
	return fmt.Sprintf("dashly:dashboard:%s:%s:%s", ownerID, from, to)
}
