// Package artists shapes artist records and their shows into view-models
// and guards artist mutations.
package artists

import (
	"context"
	"strings"
	"time"

	"fyyur/internal/models"
	"fyyur/internal/schedule"
	"fyyur/internal/validation"
)

// Store defines persistence operations for artists.
type Store interface {
	GetArtist(ctx context.Context, id int64) (*models.Artist, error)
	ListArtists(ctx context.Context) ([]models.ArtistSummary, error)
	SearchArtists(ctx context.Context, term string, now time.Time) ([]models.SearchResult, error)
	ShowsForArtist(ctx context.Context, artistID int64) ([]models.ShowWithDetails, error)
	CreateArtist(ctx context.Context, artist *models.Artist) (*models.Artist, error)
	UpdateArtist(ctx context.Context, id int64, artist *models.Artist) (*models.Artist, error)
}

// Validator checks submitted records.
type Validator interface {
	Struct(s any) error
}

// Service coordinates artist reads and writes.
type Service struct {
	store    Store
	validate Validator
	now      func() time.Time
}

// Option customises a Service.
type Option func(*Service)

// WithClock replaces time.Now as the reference for past/upcoming.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithValidator replaces the default form validator.
func WithValidator(v Validator) Option {
	return func(s *Service) { s.validate = v }
}

// New constructs an artist Service backed by the provided Store.
func New(store Store, opts ...Option) *Service {
	s := &Service{
		store:    store,
		validate: validation.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every artist for the artist directory.
func (s *Service) List(ctx context.Context) ([]models.ArtistSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListArtists(ctx)
}

// Search matches artist names case-insensitively. An empty term matches
// every artist.
func (s *Service) Search(ctx context.Context, term string) (models.SearchResults, error) {
	if err := ctx.Err(); err != nil {
		return models.SearchResults{}, err
	}

	results, err := s.store.SearchArtists(ctx, strings.TrimSpace(term), s.now())
	if err != nil {
		return models.SearchResults{}, err
	}
	if results == nil {
		results = []models.SearchResult{}
	}
	return models.SearchResults{Count: len(results), Data: results}, nil
}

// Get returns the artist with the given ID.
func (s *Service) Get(ctx context.Context, id int64) (*models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetArtist(ctx, id)
}

// Detail builds the artist page with shows split into past and upcoming.
func (s *Service) Detail(ctx context.Context, id int64) (*models.ArtistDetail, error) {
	artist, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	shows, err := s.store.ShowsForArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	past, upcoming := schedule.Partition(shows, s.now(), func(sh models.ShowWithDetails) time.Time {
		return sh.StartTime
	})

	return &models.ArtistDetail{
		Artist:             *artist,
		PastShows:          appearances(past),
		UpcomingShows:      appearances(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func appearances(shows []models.ShowWithDetails) []models.VenueAppearance {
	out := make([]models.VenueAppearance, 0, len(shows))
	for _, sh := range shows {
		out = append(out, models.VenueAppearance{
			VenueID:        sh.VenueID,
			VenueName:      sh.VenueName,
			VenueImageLink: sh.VenueImageLink,
			StartTime:      schedule.FormatStartTime(sh.StartTime),
		})
	}
	return out
}

// Create validates and persists a new artist.
func (s *Service) Create(ctx context.Context, artist models.Artist) (*models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	normalize(&artist)
	if err := s.validate.Struct(artist); err != nil {
		return nil, err
	}
	return s.store.CreateArtist(ctx, &artist)
}

// Update validates artist and replaces every mutable field of the stored
// artist with it.
func (s *Service) Update(ctx context.Context, id int64, artist models.Artist) (*models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	normalize(&artist)
	if err := s.validate.Struct(artist); err != nil {
		return nil, err
	}
	return s.store.UpdateArtist(ctx, id, &artist)
}

func normalize(a *models.Artist) {
	a.ID = 0
	a.Name = strings.TrimSpace(a.Name)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.ToUpper(strings.TrimSpace(a.State))
	a.Phone = strings.TrimSpace(a.Phone)
	a.Genres = models.NormalizeGenres(a.Genres)
	a.WebsiteLink = strings.TrimSpace(a.WebsiteLink)
	a.ImageLink = strings.TrimSpace(a.ImageLink)
	a.FacebookLink = strings.TrimSpace(a.FacebookLink)
	a.SeekingDescription = strings.TrimSpace(a.SeekingDescription)
}
