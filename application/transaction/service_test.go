package transaction

import (
	"context"
	"fmt"
	"testing"
	"time"

	"dashboard/domain/transaction"
	"dashboard/infrastructure/persistence/memory"
	apperrors "dashboard/pkg/errors"
)

func seedService(t *testing.T, rows []transaction.Transaction) *Service {
	t.Helper()
	repo := memory.NewTransactionRepository()
	for i := range rows {
		if err := repo.Insert(context.Background(), &rows[i]); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	return NewService(repo)
}

func fiveRows() []transaction.Transaction {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]transaction.Transaction, 5)
	for i := range rows {
		rows[i] = transaction.Transaction{
			ID:        fmt.Sprintf("t%d", i+1),
			UserID:    fmt.Sprintf("user-%d", i+1),
			Cost:      fmt.Sprintf("%d.99", (i+1)*10),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
	}
	return rows
}

func TestPagination(t *testing.T) {
	s := seedService(t, fiveRows())
	ctx := context.Background()

	resp, err := s.Query(ctx, QueryRequest{Page: 0, PageSize: 2})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(resp.Transactions) != 2 || resp.Total != 5 {
		t.Errorf("page 0: got %d items, total %d; want 2 items, total 5", len(resp.Transactions), resp.Total)
	}

	resp, err = s.Query(ctx, QueryRequest{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(resp.Transactions) != 1 || resp.Total != 5 {
		t.Errorf("page 2: got %d items, total %d; want 1 item, total 5", len(resp.Transactions), resp.Total)
	}

	// A page past the end is empty, not an error.
	resp, err = s.Query(ctx, QueryRequest{Page: 9, PageSize: 2})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(resp.Transactions) != 0 || resp.Total != 5 {
		t.Errorf("page 9: got %d items, total %d; want 0 items, total 5", len(resp.Transactions), resp.Total)
	}
}

func TestSearchMatchesCostAndUserID(t *testing.T) {
	rows := []transaction.Transaction{
		{ID: "t1", UserID: "user-1", Cost: "42.50"},
		{ID: "t2", UserID: "buyer-42", Cost: "10.00"},
		{ID: "t3", UserID: "user-3", Cost: "99.00"},
	}
	s := seedService(t, rows)

	resp, err := s.Query(context.Background(), QueryRequest{Page: 0, PageSize: 10, Search: "42"})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(resp.Transactions) != 2 || resp.Total != 2 {
		t.Fatalf("search 42: got %d items, total %d; want 2", len(resp.Transactions), resp.Total)
	}
	for _, tr := range resp.Transactions {
		if tr.ID == "t3" {
			t.Error("search matched a row containing neither cost nor user id substring")
		}
	}

	// Matching is case-insensitive.
	resp, err = s.Query(context.Background(), QueryRequest{Page: 0, PageSize: 10, Search: "BUYER"})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if resp.Total != 1 || len(resp.Transactions) != 1 || resp.Transactions[0].ID != "t2" {
		t.Errorf("case-insensitive search: %+v", resp)
	}
}

func TestTotalIgnoresPagination(t *testing.T) {
	s := seedService(t, fiveRows())

	resp, err := s.Query(context.Background(), QueryRequest{Page: 1, PageSize: 1, Search: "user"})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(resp.Transactions) != 1 || resp.Total != 5 {
		t.Errorf("got %d items, total %d; want 1 item, total 5", len(resp.Transactions), resp.Total)
	}
}

func TestSortDirections(t *testing.T) {
	s := seedService(t, fiveRows())
	ctx := context.Background()

	resp, err := s.Query(ctx, QueryRequest{Page: 0, PageSize: 5, Sort: `{"field":"cost","sort":"desc"}`})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if resp.Transactions[0].Cost != "50.99" {
		t.Errorf("desc sort first cost = %q, want 50.99", resp.Transactions[0].Cost)
	}

	// Any direction other than exactly "desc" sorts ascending.
	for _, dir := range []string{"asc", "DESC", "nonsense"} {
		resp, err = s.Query(ctx, QueryRequest{Page: 0, PageSize: 5, Sort: fmt.Sprintf(`{"field":"cost","sort":%q}`, dir)})
		if err != nil {
			t.Fatalf("Query(%s): %v", dir, err)
		}
		if resp.Transactions[0].Cost != "10.99" {
			t.Errorf("direction %q: first cost = %q, want 10.99", dir, resp.Transactions[0].Cost)
		}
	}
}

func TestMalformedSortErrors(t *testing.T) {
	s := seedService(t, fiveRows())
	_, err := s.Query(context.Background(), QueryRequest{Page: 0, PageSize: 5, Sort: "{broken"})
	if !apperrors.Is(err, apperrors.CodeBadRequest) {
		t.Errorf("err = %v, want BAD_REQUEST", err)
	}
}

func TestNegativePageRejected(t *testing.T) {
	s := seedService(t, fiveRows())
	if _, err := s.Query(context.Background(), QueryRequest{Page: -1, PageSize: 5}); !apperrors.Is(err, apperrors.CodeBadRequest) {
		t.Errorf("err = %v, want BAD_REQUEST", err)
	}
}
