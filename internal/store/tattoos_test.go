package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"inkbeat/internal/content"
)

func tattooColumnNames() []string {
	return strings.Split(tattooColumns, ", ")
}

func tattooRow(id, title string) []driver.Value {
	return []driver.Value{
		id, title, "Mara Voss", "Blackwork", "", "/tattoo.jpg",
		"{blackwork}", false, nil, "published", int64(0), int64(0), testTime, testTime,
	}
}

func TestCreateTattooSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := NewTattooRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO tattoos (id, title, artist, style, description, image_url, tags, is_featured, featured_section, status, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW()) RETURNING "+tattooColumns,
	)).
		WithArgs(
			sqlmock.AnyArg(), "Compass", "Dio Ferreira", "Blackwork", "", "/tattoo.jpg",
			pq.Array([]string{"blackwork"}), true, "gallery", "published",
		).
		WillReturnRows(addRows(sqlmock.NewRows(tattooColumnNames()), tattooRow("t1", "Compass")))

	got, err := repo.Create(context.Background(), content.TattooInput{
		Title:           "Compass",
		Artist:          "Dio Ferreira",
		Style:           "Blackwork",
		ImageURL:        "/tattoo.jpg",
		Tags:            []string{"blackwork"},
		IsFeatured:      true,
		FeaturedSection: "gallery",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "t1" {
		t.Fatalf("expected id t1, got %q", got.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateTattooMissingArtist(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := NewTattooRepository(db)

	_, err = repo.Create(context.Background(), content.TattooInput{Title: "Compass", ImageURL: "/tattoo.jpg"})
	var verr *content.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "artist" {
		t.Fatalf("expected artist field, got %q", verr.Field)
	}
}

func TestTattoosInSectionIgnoresFeaturedFlag(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := NewTattooRepository(db)

	// Section placement is independent of is_featured; the query must not
	// include that column.
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT "+tattooColumns+" FROM tattoos WHERE featured_section = $1 AND status = 'published' ORDER BY created_at DESC",
	)).
		WithArgs("gallery").
		WillReturnRows(addRows(sqlmock.NewRows(tattooColumnNames()), tattooRow("t1", "Compass")))

	got, err := repo.FeaturedInSection(context.Background(), "gallery")
	if err != nil {
		t.Fatalf("FeaturedInSection error: %v", err)
	}
	if len(got) != 1 || got[0].IsFeatured {
		t.Fatalf("expected the unflagged piece to be returned, got %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListTattoosByStyle(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := NewTattooRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT "+tattooColumns+" FROM tattoos WHERE 1=1 AND status = 'published' AND style = $1 ORDER BY created_at DESC",
	)).
		WithArgs("Blackwork").
		WillReturnRows(addRows(sqlmock.NewRows(tattooColumnNames()), tattooRow("t1", "Compass")))

	got, err := repo.List(context.Background(), Filter{
		Eq:            map[string]string{"style": "Blackwork"},
		PublishedOnly: true,
	})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
}

func TestIncrementViews(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := NewTattooRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE tattoos SET views = views + 1 WHERE id = $1")).
		WithArgs("t1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.IncrementViews(context.Background(), "t1"); err != nil {
		t.Fatalf("IncrementViews error: %v", err)
	}
}

func TestToggleTattooLikeIncrement(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := NewTattooRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE tattoos SET likes = likes + 1 WHERE id = $1")).
		WithArgs("t1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ToggleLike(context.Background(), "t1", true); err != nil {
		t.Fatalf("ToggleLike error: %v", err)
	}
}
