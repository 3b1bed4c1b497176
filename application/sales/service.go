// Package sales serves the overall-statistics and dashboard summaries.
package sales

import (
	"context"
	"errors"
	"time"

	"dashboard/domain/stats"
	"dashboard/domain/transaction"
	apperrors "dashboard/pkg/errors"
)

// dashboardTransactionCount How many recent transactions the dashboard
// summary carries.
const dashboardTransactionCount = 50

// Service Sales and dashboard application service.
type Service struct {
	stats        stats.Repository
	transactions transaction.Repository
}

// NewService creates the sales service.
func NewService(statsRepo stats.Repository, transactionRepo transaction.Repository) *Service {
	return &Service{stats: statsRepo, transactions: transactionRepo}
}

// Overview returns the overall-statistics record.
func (s *Service) Overview(ctx context.Context) (*stats.Overall, error) {
	overall, err := s.stats.First(ctx)
	if err != nil {
		if errors.Is(err, stats.ErrNoStats) {
			return nil, apperrors.NotFound("No sales statistics recorded")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "Server error")
	}
	return overall, nil
}

// DashboardResponse The aggregate view the dashboard landing page reads.
type DashboardResponse struct {
	TotalCustomers       int64                     `json:"totalCustomers"`
	YearlySalesTotal     float64                   `json:"yearlySalesTotal"`
	YearlyTotalSoldUnits int64                     `json:"yearlyTotalSoldUnits"`
	MonthlyData          []stats.MonthlyData       `json:"monthlyData"`
	SalesByCategory      map[string]float64        `json:"salesByCategory"`
	ThisMonthStats       stats.MonthlyData         `json:"thisMonthStats"`
	TodayStats           stats.DailyData           `json:"todayStats"`
	Transactions         []transaction.Transaction `json:"transactions"`
}

// Dashboard combines the overall statistics with the most recent
// transactions. The current month and day are picked out of the recorded
// series; a missing datapoint leaves a zero entry rather than failing.
func (s *Service) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	overall, err := s.Overview(ctx)
	if err != nil {
		return nil, err
	}

	latest, err := s.transactions.Latest(ctx, dashboardTransactionCount)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "Server error")
	}
	if latest == nil {
		latest = []transaction.Transaction{}
	}

	now := time.Now()
	currentMonth := now.Month().String()
	currentDay := now.Format("2006-01-02")

	resp := &DashboardResponse{
		TotalCustomers:       overall.TotalCustomers,
		YearlySalesTotal:     overall.YearlySalesTotal,
		YearlyTotalSoldUnits: overall.YearlyTotalSoldUnits,
		MonthlyData:          overall.MonthlyData,
		SalesByCategory:      overall.SalesByCategory,
		Transactions:         latest,
	}
	for _, m := range overall.MonthlyData {
		if m.Month == currentMonth {
			resp.ThisMonthStats = m
			break
		}
	}
	for _, d := range overall.DailyData {
		if d.Date == currentDay {
			resp.TodayStats = d
			break
		}
	}
	return resp, nil
}
