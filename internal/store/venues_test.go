package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"fyyur/internal/models"
)

var venueColumns = []string{
	"id", "name", "city", "state", "address", "phone", "genres", "website_link",
	"image_link", "facebook_link", "seeking_talent", "seeking_description",
}

func newMock(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db), mock
}

func sampleVenue() *models.Venue {
	return &models.Venue{
		Name:               "The Musical Hop",
		City:               "San Francisco",
		State:              "CA",
		Address:            "1015 Folsom Street",
		Phone:              "123-123-1234",
		Genres:             []string{"Jazz", "Reggae"},
		WebsiteLink:        "https://www.themusicalhop.com",
		ImageLink:          "https://images.example.com/hop.jpg",
		FacebookLink:       "https://www.facebook.com/TheMusicalHop",
		SeekingTalent:      true,
		SeekingDescription: "Looking for local artists",
	}
}

func TestGetVenue(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM venues WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(venueColumns).AddRow(
			int64(1), "The Musical Hop", "San Francisco", "CA", "1015 Folsom Street", "123-123-1234",
			`{Jazz,Reggae}`, "", "", "", true, "Looking",
		))

	v, err := s.GetVenue(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetVenue error: %v", err)
	}
	if v.Name != "The Musical Hop" || !v.SeekingTalent {
		t.Fatalf("unexpected venue: %#v", v)
	}
	if len(v.Genres) != 2 || v.Genres[1] != "Reggae" {
		t.Fatalf("expected genres scanned as array, got %#v", v.Genres)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetVenueNotFound(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM venues WHERE id = $1`)).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetVenue(context.Background(), 404)
	if !errors.Is(err, ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSearchVenues(t *testing.T) {
	s, mock := newMock(t)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE v.name ILIKE $1`)).
		WithArgs("%Hop%", now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "num_upcoming_shows"}).
			AddRow(int64(1), "The Musical Hop", 2).
			AddRow(int64(3), "Park Square Live Music & Coffee", 0))

	results, err := s.SearchVenues(context.Background(), "Hop", now)
	if err != nil {
		t.Fatalf("SearchVenues error: %v", err)
	}
	if len(results) != 2 || results[0].NumUpcomingShows != 2 {
		t.Fatalf("unexpected results: %#v", results)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSearchVenuesNoMatchReturnsEmptySlice(t *testing.T) {
	s, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE v.name ILIKE $1`)).
		WithArgs(`%100\%%`, now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "num_upcoming_shows"}))

	results, err := s.SearchVenues(context.Background(), "100%", now)
	if err != nil {
		t.Fatalf("SearchVenues error: %v", err)
	}
	if results == nil || len(results) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", results)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLikePattern(t *testing.T) {
	tests := map[string]string{
		"":         "%%",
		"hop":      "%hop%",
		"50%":      `%50\%%`,
		"a_b":      `%a\_b%`,
		`back\sl`: `%back\\sl%`,
	}
	for in, want := range tests {
		if got := likePattern(in); got != want {
			t.Fatalf("likePattern(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestListVenueSummaries(t *testing.T) {
	s, mock := newMock(t)
	now := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`COUNT(s.id) FILTER (WHERE s.start_time > $1) AS num_upcoming_shows FROM venues v LEFT JOIN shows s ON s.venue_id = v.id`) +
		`.*` + regexp.QuoteMeta(`ORDER BY v.state ASC, v.city ASC, v.name ASC, v.id ASC`)).
		WithArgs(now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "state", "num_upcoming_shows"}).
			AddRow(int64(3), "Park Square Live Music & Coffee", "San Francisco", "CA", 1).
			AddRow(int64(1), "The Musical Hop", "San Francisco", "CA", 0).
			AddRow(int64(2), "The Dueling Pianos Bar", "New York", "NY", 4))

	venues, err := s.ListVenueSummaries(context.Background(), now)
	if err != nil {
		t.Fatalf("ListVenueSummaries error: %v", err)
	}
	want := []models.VenueSummary{
		{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA", NumUpcomingShows: 1},
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA", NumUpcomingShows: 0},
		{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY", NumUpcomingShows: 4},
	}
	if len(venues) != len(want) {
		t.Fatalf("expected %d venues, got %#v", len(want), venues)
	}
	for i := range want {
		if venues[i] != want[i] {
			t.Fatalf("venue %d: got %#v, want %#v", i, venues[i], want[i])
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListVenueSummariesScanError(t *testing.T) {
	s, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM venues v LEFT JOIN shows s`)).
		WithArgs(now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "state", "num_upcoming_shows"}).
			AddRow(int64(1), "The Musical Hop", "San Francisco", "CA", "many"))

	if _, err := s.ListVenueSummaries(context.Background(), now); err == nil {
		t.Fatalf("expected scan error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateVenueCommits(t *testing.T) {
	s, mock := newMock(t)
	venue := sampleVenue()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO venues`)).
		WithArgs(
			venue.Name, venue.City, venue.State, venue.Address, venue.Phone, pq.Array(venue.Genres),
			venue.WebsiteLink, venue.ImageLink, venue.FacebookLink, venue.SeekingTalent, venue.SeekingDescription,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectCommit()

	created, err := s.CreateVenue(context.Background(), venue)
	if err != nil {
		t.Fatalf("CreateVenue error: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("expected id 7, got %d", created.ID)
	}
	if venue.ID != 0 {
		t.Fatalf("input venue must not be mutated")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateVenueRollsBackOnFailure(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO venues`)).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := s.CreateVenue(context.Background(), sampleVenue())
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateVenueCommitFailure(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO venues`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	_, err := s.CreateVenue(context.Background(), sampleVenue())
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateVenueFullReplace(t *testing.T) {
	s, mock := newMock(t)
	venue := sampleVenue()
	venue.SeekingTalent = false
	venue.SeekingDescription = ""

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE venues`)).
		WithArgs(
			venue.Name, venue.City, venue.State, venue.Address, venue.Phone, pq.Array(venue.Genres),
			venue.WebsiteLink, venue.ImageLink, venue.FacebookLink,
			false, "", int64(3),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	updated, err := s.UpdateVenue(context.Background(), 3, venue)
	if err != nil {
		t.Fatalf("UpdateVenue error: %v", err)
	}
	if updated.ID != 3 || updated.SeekingTalent {
		t.Fatalf("unexpected updated venue: %#v", updated)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateVenueNotFound(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE venues`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := s.UpdateVenue(context.Background(), 99, sampleVenue())
	if !errors.Is(err, ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteVenueCascadesShows(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM shows WHERE venue_id = $1`)).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM venues WHERE id = $1 RETURNING name`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("The Musical Hop"))
	mock.ExpectCommit()

	name, err := s.DeleteVenue(context.Background(), 1)
	if err != nil {
		t.Fatalf("DeleteVenue error: %v", err)
	}
	if name != "The Musical Hop" {
		t.Fatalf("expected deleted venue name, got %q", name)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteVenueAlreadyDeleted(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM shows WHERE venue_id = $1`)).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM venues WHERE id = $1 RETURNING name`)).
		WithArgs(int64(1)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := s.DeleteVenue(context.Background(), 1)
	if !errors.Is(err, ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteVenueRollsBackOnFailure(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM shows WHERE venue_id = $1`)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM venues WHERE id = $1 RETURNING name`)).
		WillReturnError(errors.New("lock timeout"))
	mock.ExpectRollback()

	_, err := s.DeleteVenue(context.Background(), 1)
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
