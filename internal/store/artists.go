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

// ErrArtistNotFound signals that no artist has the requested id.
var ErrArtistNotFound = errors.New("artist not found")

// GetArtist retrieves a single artist by ID
func (s *Store) GetArtist(ctx context.Context, id int64) (*models.Artist, error) {
	query := `
		SELECT id, name, city, state, phone, genres, website_link,
		       image_link, facebook_link, seeking_venue, seeking_description
		FROM artists
		WHERE id = $1
	`

	var a models.Artist
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, pq.Array(&a.Genres),
		&a.WebsiteLink, &a.ImageLink, &a.FacebookLink, &a.SeekingVenue, &a.SeekingDescription,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrArtistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select artist: %w", err)
	}

	return &a, nil
}

// ListArtists returns the id and name of every artist ordered by name.
func (s *Store) ListArtists(ctx context.Context) ([]models.ArtistSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name
		FROM artists
		ORDER BY name ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select artists: %w", err)
	}
	defer rows.Close()

	artists := make([]models.ArtistSummary, 0)
	for rows.Next() {
		var a models.ArtistSummary
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}

	return artists, nil
}

// SearchArtists returns artists whose name contains term, ignoring case,
// each with the number of shows starting after now. An empty term matches
// every artist.
func (s *Store) SearchArtists(ctx context.Context, term string, now time.Time) ([]models.SearchResult, error) {
	query := `
		SELECT a.id, a.name, COUNT(s.id) FILTER (WHERE s.start_time > $2) AS num_upcoming_shows
		FROM artists a
		LEFT JOIN shows s ON s.artist_id = a.id
		WHERE a.name ILIKE $1
		GROUP BY a.id, a.name
		ORDER BY a.name ASC, a.id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, likePattern(term), now)
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	defer rows.Close()

	results := make([]models.SearchResult, 0)
	for rows.Next() {
		var r models.SearchResult
		if err := rows.Scan(&r.ID, &r.Name, &r.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}

	return results, nil
}

// CreateArtist inserts artist and returns it with its new ID.
func (s *Store) CreateArtist(ctx context.Context, artist *models.Artist) (*models.Artist, error) {
	query := `
		INSERT INTO artists (name, city, state, phone, genres, website_link,
		                     image_link, facebook_link, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	created := *artist
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, query,
			artist.Name, artist.City, artist.State, artist.Phone, pq.Array(artist.Genres),
			artist.WebsiteLink, artist.ImageLink, artist.FacebookLink, artist.SeekingVenue, artist.SeekingDescription,
		).Scan(&created.ID); err != nil {
			return persistenceError("insert artist", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateArtist overwrites every mutable field of the artist with the given ID.
func (s *Store) UpdateArtist(ctx context.Context, id int64, artist *models.Artist) (*models.Artist, error) {
	query := `
		UPDATE artists
		SET name = $1, city = $2, state = $3, phone = $4, genres = $5,
		    website_link = $6, image_link = $7, facebook_link = $8,
		    seeking_venue = $9, seeking_description = $10
		WHERE id = $11
	`

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query,
			artist.Name, artist.City, artist.State, artist.Phone, pq.Array(artist.Genres),
			artist.WebsiteLink, artist.ImageLink, artist.FacebookLink,
			artist.SeekingVenue, artist.SeekingDescription, id,
		)
		if err != nil {
			return persistenceError("update artist", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return persistenceError("update artist", err)
		}
		if rows == 0 {
			return ErrArtistNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated := *artist
	updated.ID = id
	return &updated, nil
}
