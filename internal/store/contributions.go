package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"inkbeat/internal/content"
)

// Contribution is a supporter pledge submitted through the contribute form.
type Contribution struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile,omitempty"`
	Category  string    `json:"category,omitempty"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContributionInput carries the caller-supplied pledge fields.
type ContributionInput struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Mobile   string  `json:"mobile"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Validate checks the required pledge fields.
func (in ContributionInput) Validate() error {
	if in.Name == "" {
		return &content.ValidationError{Field: "name"}
	}
	if in.Email == "" {
		return &content.ValidationError{Field: "email"}
	}
	if in.Amount <= 0 {
		return &content.ValidationError{Field: "amount"}
	}
	return nil
}

// ContributionStats summarizes pledges for the admin dashboard.
type ContributionStats struct {
	Total            int64              `json:"total"`
	ByStatus         map[string]int64   `json:"by_status"`
	AmountByCurrency map[string]float64 `json:"amount_by_currency"`
}

const contributionColumns = "id, name, email, mobile, category, amount, currency, status, created_at, updated_at"

// CreateContribution stores a new pledge with status "pending". Currency
// defaults to USD.
func (s *Store) CreateContribution(ctx context.Context, in ContributionInput) (Contribution, error) {
	if err := in.Validate(); err != nil {
		return Contribution{}, err
	}

	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO contributions (id, name, email, mobile, category, amount, currency, status, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, 'pending', NOW(), NOW())
		RETURNING `+contributionColumns+`
	`, in.Name, in.Email, in.Mobile, in.Category, in.Amount, currency)

	c, err := scanContribution(row)
	if err != nil {
		return Contribution{}, fmt.Errorf("insert contribution: %w", err)
	}
	return c, nil
}

// ListContributions returns pledges newest first, optionally filtered by
// status ("all" or empty means no filter).
func (s *Store) ListContributions(ctx context.Context, status string) ([]Contribution, error) {
	query := "SELECT " + contributionColumns + " FROM contributions"
	var args []any
	if status != "" && status != "all" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select contributions: %w", err)
	}
	defer rows.Close()

	contributions := []Contribution{}
	for rows.Next() {
		c, err := scanContribution(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contribution: %w", err)
		}
		contributions = append(contributions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contributions: %w", err)
	}
	return contributions, nil
}

// ContributionByID fetches a single pledge.
func (s *Store) ContributionByID(ctx context.Context, id string) (Contribution, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+contributionColumns+` FROM contributions WHERE id = $1`, id)
	c, err := scanContribution(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Contribution{}, ErrNotFound
	}
	if err != nil {
		return Contribution{}, fmt.Errorf("get contribution: %w", err)
	}
	return c, nil
}

// UpdateContributionStatus moves a pledge through its lifecycle
// (pending/confirmed/cancelled).
func (s *Store) UpdateContributionStatus(ctx context.Context, id, status string) (Contribution, error) {
	if status == "" {
		return Contribution{}, &content.ValidationError{Field: "status"}
	}
	row := s.db.QueryRowContext(ctx, `
		UPDATE contributions SET status = $1, updated_at = NOW() WHERE id = $2
		RETURNING `+contributionColumns+`
	`, status, id)
	c, err := scanContribution(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Contribution{}, ErrNotFound
	}
	if err != nil {
		return Contribution{}, fmt.Errorf("update contribution: %w", err)
	}
	return c, nil
}

// DeleteContribution removes a pledge permanently.
func (s *Store) DeleteContribution(ctx context.Context, id string) error {
	return execExpectingRow(ctx, s.db, "DELETE FROM contributions WHERE id = $1", id)
}

// ContributionStats aggregates pledge counts and amounts.
func (s *Store) ContributionStats(ctx context.Context) (ContributionStats, error) {
	stats := ContributionStats{
		ByStatus:         map[string]int64{},
		AmountByCurrency: map[string]float64{},
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT status, COUNT(*)
		FROM contributions
		GROUP BY status
	`)
	if err != nil {
		return ContributionStats{}, fmt.Errorf("count contributions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return ContributionStats{}, fmt.Errorf("scan contribution count: %w", err)
		}
		stats.ByStatus[status] = count
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		return ContributionStats{}, fmt.Errorf("iterate contribution counts: %w", err)
	}

	amountRows, err := s.db.QueryContext(ctx, `
		SELECT currency, SUM(amount)
		FROM contributions
		GROUP BY currency
	`)
	if err != nil {
		return ContributionStats{}, fmt.Errorf("sum contributions: %w", err)
	}
	defer amountRows.Close()

	for amountRows.Next() {
		var currency string
		var amount float64
		if err := amountRows.Scan(&currency, &amount); err != nil {
			return ContributionStats{}, fmt.Errorf("scan contribution sum: %w", err)
		}
		stats.AmountByCurrency[currency] = amount
	}
	if err := amountRows.Err(); err != nil {
		return ContributionStats{}, fmt.Errorf("iterate contribution sums: %w", err)
	}

	return stats, nil
}

func scanContribution(r rowScanner) (Contribution, error) {
	var c Contribution
	err := r.Scan(&c.ID, &c.Name, &c.Email, &c.Mobile, &c.Category, &c.Amount, &c.Currency, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
