package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"inkbeat/internal/content"
)

func newsColumnNames() []string {
	return strings.Split(newsColumns, ", ")
}

func newsRow(id, title string) []driver.Value {
	return []driver.Value{
		id, title, "Editorial Team", "studio", "", "Full story.", "/news.jpg",
		"{studio}", false, nil, "published", testTime, testTime,
	}
}

func TestValidateNewsInput(t *testing.T) {
	tests := []struct {
		name      string
		in        content.NewsInput
		wantField string
	}{
		{
			name: "valid article",
			in:   content.NewsInput{Title: "Expansion", Author: "Team", Content: "Body", ImageURL: "/news.jpg"},
		},
		{
			name:      "missing author",
			in:        content.NewsInput{Title: "Expansion", Content: "Body", ImageURL: "/news.jpg"},
			wantField: "author",
		},
		{
			name:      "missing content",
			in:        content.NewsInput{Title: "Expansion", Author: "Team", ImageURL: "/news.jpg"},
			wantField: "content",
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

func TestListNewsByCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := NewNewsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT "+newsColumns+" FROM news WHERE 1=1 AND status = 'published' AND category = $1 ORDER BY created_at DESC",
	)).
		WithArgs("studio").
		WillReturnRows(addRows(sqlmock.NewRows(newsColumnNames()), newsRow("n1", "Expansion")))

	got, err := repo.List(context.Background(), Filter{
		Eq:            map[string]string{"category": "studio"},
		PublishedOnly: true,
	})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "n1" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestSearchNewsCoversBodyColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := NewNewsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT "+newsColumns+" FROM news WHERE (title ILIKE $1 OR excerpt ILIKE $1 OR content ILIKE $1 OR author ILIKE $1) AND status = 'published' ORDER BY created_at DESC",
	)).
		WithArgs("%expansion%").
		WillReturnRows(addRows(sqlmock.NewRows(newsColumnNames()), newsRow("n1", "Expansion")))

	got, err := repo.Search(context.Background(), "expansion")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateNewsPartial(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := NewNewsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE news SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING "+newsColumns,
	)).
		WithArgs("draft", "n1").
		WillReturnRows(addRows(sqlmock.NewRows(newsColumnNames()), newsRow("n1", "Expansion")))

	status := "draft"
	if _, err := repo.Update(context.Background(), "n1", content.NewsPatch{Status: &status}); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestNewsPatchRejectsBlankContent(t *testing.T) {
	blank := ""
	p := content.NewsPatch{Content: &blank}
	if err := p.Validate(); err == nil {
		t.Fatal("expected error for blank content patch")
	}
}
