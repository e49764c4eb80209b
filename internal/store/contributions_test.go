package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"inkbeat/internal/content"
)

func TestContributionValidation(t *testing.T) {
	tests := []struct {
		name      string
		in        ContributionInput
		wantField string
	}{
		{
			name: "valid pledge",
			in:   ContributionInput{Name: "Ada", Email: "ada@example.com", Amount: 25},
		},
		{
			name:      "missing name",
			in:        ContributionInput{Email: "ada@example.com", Amount: 25},
			wantField: "name",
		},
		{
			name:      "zero amount",
			in:        ContributionInput{Name: "Ada", Email: "ada@example.com"},
			wantField: "amount",
		},
		{
			name:      "negative amount",
			in:        ContributionInput{Name: "Ada", Email: "ada@example.com", Amount: -5},
			wantField: "amount",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("expected nil error but got %v", err)
				}
				return
			}
			var verr *content.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.wantField {
				t.Fatalf("expected field %q, got %q", tc.wantField, verr.Field)
			}
		})
	}
}

func TestCreateContributionDefaultsCurrency(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO contributions (id, name, email, mobile, category, amount, currency, status, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, 'pending', NOW(), NOW())
		RETURNING ` + contributionColumns + `
	`)).
		WithArgs("Ada", "ada@example.com", "", "", 25.0, "USD").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "mobile", "category", "amount", "currency", "status", "created_at", "updated_at"}).
			AddRow("c1", "Ada", "ada@example.com", "", "", 25.0, "USD", "pending", testTime, testTime))

	c, err := s.CreateContribution(context.Background(), ContributionInput{
		Name:   "Ada",
		Email:  "ada@example.com",
		Amount: 25,
	})
	if err != nil {
		t.Fatalf("CreateContribution error: %v", err)
	}
	if c.Currency != "USD" || c.Status != "pending" {
		t.Fatalf("expected USD/pending defaults, got %q/%q", c.Currency, c.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestContributionStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT status, COUNT(*)
		FROM contributions
		GROUP BY status
	`)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("pending", int64(3)).
			AddRow("confirmed", int64(2)))

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT currency, SUM(amount)
		FROM contributions
		GROUP BY currency
	`)).
		WillReturnRows(sqlmock.NewRows([]string{"currency", "sum"}).
			AddRow("USD", 120.5).
			AddRow("EUR", 40.0))

	stats, err := s.ContributionStats(context.Background())
	if err != nil {
		t.Fatalf("ContributionStats error: %v", err)
	}
	if stats.Total != 5 {
		t.Fatalf("expected total 5, got %d", stats.Total)
	}
	if stats.ByStatus["pending"] != 3 || stats.ByStatus["confirmed"] != 2 {
		t.Fatalf("unexpected status counts: %+v", stats.ByStatus)
	}
	if stats.AmountByCurrency["USD"] != 120.5 {
		t.Fatalf("unexpected currency sums: %+v", stats.AmountByCurrency)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteContributionMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM contributions WHERE id = $1")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.DeleteContribution(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
