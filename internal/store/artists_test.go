package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"fyyur/internal/models"
)

func TestGetArtistNotFound(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM artists WHERE id = $1`)).
		WithArgs(int64(5)).
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetArtist(context.Background(), 5)
	if !errors.Is(err, ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSearchArtistsEmptyTermMatchesAll(t *testing.T) {
	s, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE a.name ILIKE $1`)).
		WithArgs("%%", now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "num_upcoming_shows"}).
			AddRow(int64(4), "Guns N Petals", 0).
			AddRow(int64(5), "Matt Quevedo", 1).
			AddRow(int64(6), "The Wild Sax Band", 3))

	results, err := s.SearchArtists(context.Background(), "", now)
	if err != nil {
		t.Fatalf("SearchArtists error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected every artist, got %#v", results)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListArtists(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM artists ORDER BY name ASC, id ASC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(4), "Guns N Petals"))

	artists, err := s.ListArtists(context.Background())
	if err != nil {
		t.Fatalf("ListArtists error: %v", err)
	}
	if len(artists) != 1 || artists[0] != (models.ArtistSummary{ID: 4, Name: "Guns N Petals"}) {
		t.Fatalf("unexpected artists: %#v", artists)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateArtistNotFound(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE artists`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := s.UpdateArtist(context.Background(), 12, &models.Artist{Name: "X", Genres: []string{"Jazz"}})
	if !errors.Is(err, ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateArtistBeginFailure(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	_, err := s.CreateArtist(context.Background(), &models.Artist{Name: "X", Genres: []string{"Jazz"}})
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
