package sales

import (
	"context"
	"fmt"
	"testing"
	"time"

	"dashboard/domain/stats"
	"dashboard/domain/transaction"
	"dashboard/infrastructure/persistence/memory"
	apperrors "dashboard/pkg/errors"
)

func overallFixture() *stats.Overall {
	now := time.Now()
	return &stats.Overall{
		ID:                   "overall-1",
		TotalCustomers:       120,
		YearlySalesTotal:     45000,
		YearlyTotalSoldUnits: 900,
		Year:                 now.Year(),
		MonthlyData: []stats.MonthlyData{
			{Month: now.Month().String(), TotalSales: 4000, TotalUnits: 80},
		},
		DailyData: []stats.DailyData{
			{Date: now.Format("2006-01-02"), TotalSales: 150, TotalUnits: 3},
		},
		SalesByCategory: map[string]float64{"shoes": 20000, "clothing": 25000},
	}
}

func TestOverview(t *testing.T) {
	s := NewService(memory.NewStatsRepository(overallFixture()), memory.NewTransactionRepository())

	overall, err := s.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if overall.TotalCustomers != 120 || overall.SalesByCategory["shoes"] != 20000 {
		t.Errorf("unexpected overview: %+v", overall)
	}
}

func TestOverviewWithoutStats(t *testing.T) {
	s := NewService(memory.NewStatsRepository(nil), memory.NewTransactionRepository())
	if _, err := s.Overview(context.Background()); !apperrors.Is(err, apperrors.CodeNotFound) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}

func TestDashboard(t *testing.T) {
	transactionRepo := memory.NewTransactionRepository()
	for i := 0; i < 60; i++ {
		tr := transaction.Transaction{
			ID:        fmt.Sprintf("t%d", i),
			UserID:    "user-1",
			Cost:      "10.00",
			CreatedAt: time.Now().Add(-time.Duration(i) * time.Minute),
		}
		if err := transactionRepo.Insert(context.Background(), &tr); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	s := NewService(memory.NewStatsRepository(overallFixture()), transactionRepo)

	resp, err := s.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if resp.TotalCustomers != 120 {
		t.Errorf("totalCustomers = %d, want 120", resp.TotalCustomers)
	}
	if len(resp.Transactions) != dashboardTransactionCount {
		t.Errorf("got %d transactions, want %d", len(resp.Transactions), dashboardTransactionCount)
	}
	if resp.Transactions[0].ID != "t0" {
		t.Errorf("transactions not newest-first: first is %s", resp.Transactions[0].ID)
	}
	if resp.ThisMonthStats.TotalSales != 4000 {
		t.Errorf("thisMonthStats = %+v, want the current month datapoint", resp.ThisMonthStats)
	}
	if resp.TodayStats.TotalUnits != 3 {
		t.Errorf("todayStats = %+v, want the current day datapoint", resp.TodayStats)
	}
}
