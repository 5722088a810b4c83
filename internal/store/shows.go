package store

import (
	"context"
	"database/sql"
	"fmt"

	"fyyur/internal/models"
)

const showDetailsQuery = `
	SELECT
		s.id, s.artist_id, s.venue_id, s.start_time,
		a.name AS artist_name, a.image_link AS artist_image_link,
		v.name AS venue_name, v.image_link AS venue_image_link
	FROM shows s
	INNER JOIN artists a ON s.artist_id = a.id
	INNER JOIN venues v ON s.venue_id = v.id
`

// ListShows returns every show with artist and venue details ordered by
// start time.
func (s *Store) ListShows(ctx context.Context) ([]models.ShowWithDetails, error) {
	return s.queryShows(ctx, showDetailsQuery+`ORDER BY s.start_time ASC, s.id ASC`)
}

// ShowsForVenue returns every show booked at the venue ordered by start time.
func (s *Store) ShowsForVenue(ctx context.Context, venueID int64) ([]models.ShowWithDetails, error) {
	return s.queryShows(ctx, showDetailsQuery+`WHERE s.venue_id = $1 ORDER BY s.start_time ASC, s.id ASC`, venueID)
}

// ShowsForArtist returns every show played by the artist ordered by start time.
func (s *Store) ShowsForArtist(ctx context.Context, artistID int64) ([]models.ShowWithDetails, error) {
	return s.queryShows(ctx, showDetailsQuery+`WHERE s.artist_id = $1 ORDER BY s.start_time ASC, s.id ASC`, artistID)
}

func (s *Store) queryShows(ctx context.Context, query string, args ...any) ([]models.ShowWithDetails, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select shows: %w", err)
	}
	defer rows.Close()

	shows := make([]models.ShowWithDetails, 0)
	for rows.Next() {
		var sh models.ShowWithDetails
		if err := rows.Scan(
			&sh.ID, &sh.ArtistID, &sh.VenueID, &sh.StartTime,
			&sh.ArtistName, &sh.ArtistImageLink,
			&sh.VenueName, &sh.VenueImageLink,
		); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		shows = append(shows, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shows: %w", err)
	}

	return shows, nil
}

// CreateShow books an artist at a venue. A missing artist or venue is
// reported as ErrInvalidReference.
func (s *Store) CreateShow(ctx context.Context, show *models.Show) (*models.Show, error) {
	query := `
		INSERT INTO shows (artist_id, venue_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	created := *show
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, query, show.ArtistID, show.VenueID, show.StartTime).Scan(&created.ID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("insert show: %w", ErrInvalidReference)
			}
			return persistenceError("insert show", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}
