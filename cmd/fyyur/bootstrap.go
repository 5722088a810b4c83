package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"fyyur/internal/models"
)

// seedShow refers to venues and artists by their index in the seed lists.
// Offset is relative to the seeding time.
type seedShow struct {
	Venue, Artist int
	Offset        time.Duration
}

var (
	demoVenues = []models.Venue{
		{
			Name: "The Musical Hop", City: "San Francisco", State: "CA", Address: "1015 Folsom Street",
			Phone: "123-123-1234", Genres: []string{"Jazz", "Reggae", "Classical", "Folk"},
			WebsiteLink: "https://www.themusicalhop.com", FacebookLink: "https://www.facebook.com/TheMusicalHop",
			ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?w=400",
			SeekingTalent:      true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
		},
		{
			Name: "The Dueling Pianos Bar", City: "New York", State: "NY", Address: "335 Delancey Street",
			Phone: "914-003-1132", Genres: []string{"Classical", "R&B", "Hip-Hop"},
			WebsiteLink: "https://www.theduelingpianos.com", FacebookLink: "https://www.facebook.com/theduelingpianos",
			ImageLink: "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?w=400",
		},
		{
			Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA", Address: "34 Whiskey Moore Ave",
			Phone: "415-000-1234", Genres: []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
			WebsiteLink: "https://www.parksquarelivemusicandcoffee.com", FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			ImageLink: "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?w=400",
		},
	}

	demoArtists = []models.Artist{
		{
			Name: "Guns N Petals", City: "San Francisco", State: "CA", Phone: "326-123-5000",
			Genres: []string{"Rock n Roll"}, WebsiteLink: "https://www.gunsnpetalsband.com",
			FacebookLink: "https://www.facebook.com/GunsNPetals",
			ImageLink:    "https://images.unsplash.com/photo-1549213783-8284d0336c4f?w=300",
			SeekingVenue: true, SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		},
		{
			Name: "Matt Quevedo", City: "New York", State: "NY", Phone: "300-400-5000",
			Genres: []string{"Jazz"}, FacebookLink: "https://www.facebook.com/mattquevedo923251523",
			ImageLink: "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?w=334",
		},
		{
			Name: "The Wild Sax Band", City: "San Francisco", State: "CA", Phone: "432-325-5432",
			Genres:    []string{"Jazz", "Classical"},
			ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?w=794",
		},
	}

	demoShows = []seedShow{
		{Venue: 0, Artist: 0, Offset: -30 * 24 * time.Hour},
		{Venue: 2, Artist: 1, Offset: -7 * 24 * time.Hour},
		{Venue: 2, Artist: 2, Offset: 14 * 24 * time.Hour},
		{Venue: 2, Artist: 2, Offset: 21 * 24 * time.Hour},
		{Venue: 1, Artist: 1, Offset: 45 * 24 * time.Hour},
	}
)

// seedDemoData fills an empty directory with demo venues, artists and a mix
// of past and upcoming shows in a single transaction.
func seedDemoData(ctx context.Context, db *sql.DB, now time.Time) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM venues`).Scan(&count); err != nil {
		return fmt.Errorf("count venues: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	venueIDs := make([]int64, len(demoVenues))
	for i, v := range demoVenues {
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO venues (name, city, state, address, phone, genres, website_link,
			                    image_link, facebook_link, seeking_talent, seeking_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id
		`, v.Name, v.City, v.State, v.Address, v.Phone, pq.Array(v.Genres), v.WebsiteLink,
			v.ImageLink, v.FacebookLink, v.SeekingTalent, v.SeekingDescription,
		).Scan(&venueIDs[i]); err != nil {
			return fmt.Errorf("seed venue %q: %w", v.Name, err)
		}
	}

	artistIDs := make([]int64, len(demoArtists))
	for i, a := range demoArtists {
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO artists (name, city, state, phone, genres, website_link,
			                     image_link, facebook_link, seeking_venue, seeking_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id
		`, a.Name, a.City, a.State, a.Phone, pq.Array(a.Genres), a.WebsiteLink,
			a.ImageLink, a.FacebookLink, a.SeekingVenue, a.SeekingDescription,
		).Scan(&artistIDs[i]); err != nil {
			return fmt.Errorf("seed artist %q: %w", a.Name, err)
		}
	}

	start := now.Truncate(time.Hour)
	for _, sh := range demoShows {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO shows (artist_id, venue_id, start_time)
			VALUES ($1, $2, $3)
		`, artistIDs[sh.Artist], venueIDs[sh.Venue], start.Add(sh.Offset)); err != nil {
			return fmt.Errorf("seed show: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	tx = nil

	log.Info().
		Int("venues", len(demoVenues)).
		Int("artists", len(demoArtists)).
		Int("shows", len(demoShows)).
		Msg("Seeded demo data")
	return nil
}
