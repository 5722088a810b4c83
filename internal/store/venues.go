package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"fyyur/internal/models"
)

// ErrVenueNotFound signals that no venue has the requested id.
var ErrVenueNotFound = errors.New("venue not found")

// GetVenue retrieves a single venue by ID
func (s *Store) GetVenue(ctx context.Context, id int64) (*models.Venue, error) {
	query := `
		SELECT id, name, city, state, address, phone, genres, website_link,
		       image_link, facebook_link, seeking_talent, seeking_description
		FROM venues
		WHERE id = $1
	`

	var v models.Venue
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, pq.Array(&v.Genres),
		&v.WebsiteLink, &v.ImageLink, &v.FacebookLink, &v.SeekingTalent, &v.SeekingDescription,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select venue: %w", err)
	}

	return &v, nil
}

// SearchVenues returns venues whose name contains term, ignoring case,
// each with the number of shows starting after now. An empty term matches
// every venue.
func (s *Store) SearchVenues(ctx context.Context, term string, now time.Time) ([]models.SearchResult, error) {
	query := `
		SELECT v.id, v.name, COUNT(s.id) FILTER (WHERE s.start_time > $2) AS num_upcoming_shows
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id
		WHERE v.name ILIKE $1
		GROUP BY v.id, v.name
		ORDER BY v.name ASC, v.id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, likePattern(term), now)
	if err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}
	defer rows.Close()

	results := make([]models.SearchResult, 0)
	for rows.Next() {
		var r models.SearchResult
		if err := rows.Scan(&r.ID, &r.Name, &r.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venues: %w", err)
	}

	return results, nil
}

// ListVenueSummaries returns every venue with its location and upcoming
// show count, ordered by state, city, name.
func (s *Store) ListVenueSummaries(ctx context.Context, now time.Time) ([]models.VenueSummary, error) {
	query := `
		SELECT v.id, v.name, v.city, v.state,
		       COUNT(s.id) FILTER (WHERE s.start_time > $1) AS num_upcoming_shows
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id
		GROUP BY v.id, v.name, v.city, v.state
		ORDER BY v.state ASC, v.city ASC, v.name ASC, v.id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("select venue summaries: %w", err)
	}
	defer rows.Close()

	var venues []models.VenueSummary
	for rows.Next() {
		var v models.VenueSummary
		if err := rows.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan venue summary: %w", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venue summaries: %w", err)
	}

	return venues, nil
}

// CreateVenue inserts venue and returns it with its new ID.
func (s *Store) CreateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	query := `
		INSERT INTO venues (name, city, state, address, phone, genres, website_link,
		                    image_link, facebook_link, seeking_talent, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	created := *venue
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, query,
			venue.Name, venue.City, venue.State, venue.Address, venue.Phone, pq.Array(venue.Genres),
			venue.WebsiteLink, venue.ImageLink, venue.FacebookLink, venue.SeekingTalent, venue.SeekingDescription,
		).Scan(&created.ID); err != nil {
			return persistenceError("insert venue", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateVenue overwrites every mutable field of the venue with the given ID.
func (s *Store) UpdateVenue(ctx context.Context, id int64, venue *models.Venue) (*models.Venue, error) {
	query := `
		UPDATE venues
		SET name = $1, city = $2, state = $3, address = $4, phone = $5, genres = $6,
		    website_link = $7, image_link = $8, facebook_link = $9,
		    seeking_talent = $10, seeking_description = $11
		WHERE id = $12
	`

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query,
			venue.Name, venue.City, venue.State, venue.Address, venue.Phone, pq.Array(venue.Genres),
			venue.WebsiteLink, venue.ImageLink, venue.FacebookLink,
			venue.SeekingTalent, venue.SeekingDescription, id,
		)
		if err != nil {
			return persistenceError("update venue", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return persistenceError("update venue", err)
		}
		if rows == 0 {
			return ErrVenueNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated := *venue
	updated.ID = id
	return &updated, nil
}

// DeleteVenue removes a venue together with its shows and returns the
// deleted venue's name.
func (s *Store) DeleteVenue(ctx context.Context, id int64) (string, error) {
	var name string
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = $1`, id); err != nil {
			return persistenceError("delete venue shows", err)
		}

		err := tx.QueryRowContext(ctx, `DELETE FROM venues WHERE id = $1 RETURNING name`, id).Scan(&name)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVenueNotFound
		}
		if err != nil {
			return persistenceError("delete venue", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return name, nil
}
