// Package venues shapes venue records and their shows into the view-models
// rendered by the web layer and guards venue mutations.
package venues

import (
	"context"
	"strings"
	"time"

	"fyyur/internal/models"
	"fyyur/internal/schedule"
	"fyyur/internal/validation"
)

// Store defines persistence operations for venues.
type Store interface {
	GetVenue(ctx context.Context, id int64) (*models.Venue, error)
	SearchVenues(ctx context.Context, term string, now time.Time) ([]models.SearchResult, error)
	ListVenueSummaries(ctx context.Context, now time.Time) ([]models.VenueSummary, error)
	ShowsForVenue(ctx context.Context, venueID int64) ([]models.ShowWithDetails, error)
	CreateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	UpdateVenue(ctx context.Context, id int64, venue *models.Venue) (*models.Venue, error)
	DeleteVenue(ctx context.Context, id int64) (string, error)
}

// Validator checks submitted records.
type Validator interface {
	Struct(s any) error
}

// Service coordinates venue reads and writes.
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

// New constructs a venue Service backed by the provided Store.
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

// Directory groups every venue by (state, city), ordered by state then
// city, each venue annotated with its upcoming show count. Areas are cut
// from a single summary read so every listed area has venues.
func (s *Service) Directory(ctx context.Context) ([]models.Area, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summaries, err := s.store.ListVenueSummaries(ctx, s.now())
	if err != nil {
		return nil, err
	}
	return groupAreas(summaries), nil
}

// groupAreas folds summaries, already ordered by state then city, into
// consecutive areas.
func groupAreas(summaries []models.VenueSummary) []models.Area {
	areas := make([]models.Area, 0)
	for _, v := range summaries {
		n := len(areas)
		if n == 0 || areas[n-1].State != v.State || areas[n-1].City != v.City {
			areas = append(areas, models.Area{City: v.City, State: v.State, Venues: []models.SearchResult{}})
			n++
		}
		areas[n-1].Venues = append(areas[n-1].Venues, models.SearchResult{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: v.NumUpcomingShows,
		})
	}
	return areas
}

// Search matches venue names case-insensitively. An empty term matches
// every venue.
func (s *Service) Search(ctx context.Context, term string) (models.SearchResults, error) {
	if err := ctx.Err(); err != nil {
		return models.SearchResults{}, err
	}

	results, err := s.store.SearchVenues(ctx, strings.TrimSpace(term), s.now())
	if err != nil {
		return models.SearchResults{}, err
	}
	if results == nil {
		results = []models.SearchResult{}
	}
	return models.SearchResults{Count: len(results), Data: results}, nil
}

// Get returns the venue with the given ID.
func (s *Service) Get(ctx context.Context, id int64) (*models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetVenue(ctx, id)
}

// Detail builds the venue page: the venue's own fields plus its shows
// split into past and upcoming at the time of the call.
func (s *Service) Detail(ctx context.Context, id int64) (*models.VenueDetail, error) {
	venue, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	shows, err := s.store.ShowsForVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	return buildDetail(*venue, shows, s.now()), nil
}

func buildDetail(venue models.Venue, shows []models.ShowWithDetails, now time.Time) *models.VenueDetail {
	past, upcoming := schedule.Partition(shows, now, func(sh models.ShowWithDetails) time.Time {
		return sh.StartTime
	})

	return &models.VenueDetail{
		Venue:              venue,
		PastShows:          appearances(past),
		UpcomingShows:      appearances(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

func appearances(shows []models.ShowWithDetails) []models.ArtistAppearance {
	out := make([]models.ArtistAppearance, 0, len(shows))
	for _, sh := range shows {
		out = append(out, models.ArtistAppearance{
			ArtistID:        sh.ArtistID,
			ArtistName:      sh.ArtistName,
			ArtistImageLink: sh.ArtistImageLink,
			StartTime:       schedule.FormatStartTime(sh.StartTime),
		})
	}
	return out
}

// Create validates and persists a new venue.
func (s *Service) Create(ctx context.Context, venue models.Venue) (*models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	normalize(&venue)
	if err := s.validate.Struct(venue); err != nil {
		return nil, err
	}
	return s.store.CreateVenue(ctx, &venue)
}

// Update validates venue and replaces every mutable field of the stored
// venue with it.
func (s *Service) Update(ctx context.Context, id int64, venue models.Venue) (*models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	normalize(&venue)
	if err := s.validate.Struct(venue); err != nil {
		return nil, err
	}
	return s.store.UpdateVenue(ctx, id, &venue)
}

// Delete removes the venue and its shows, returning the venue's name.
func (s *Service) Delete(ctx context.Context, id int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.store.DeleteVenue(ctx, id)
}

func normalize(v *models.Venue) {
	v.ID = 0
	v.Name = strings.TrimSpace(v.Name)
	v.City = strings.TrimSpace(v.City)
	v.State = strings.ToUpper(strings.TrimSpace(v.State))
	v.Address = strings.TrimSpace(v.Address)
	v.Phone = strings.TrimSpace(v.Phone)
	v.Genres = models.NormalizeGenres(v.Genres)
	v.WebsiteLink = strings.TrimSpace(v.WebsiteLink)
	v.ImageLink = strings.TrimSpace(v.ImageLink)
	v.FacebookLink = strings.TrimSpace(v.FacebookLink)
	v.SeekingDescription = strings.TrimSpace(v.SeekingDescription)
}
