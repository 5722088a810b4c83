// Package shows lists bookings and creates new ones.
package shows

import (
	"context"

	"fyyur/internal/models"
	"fyyur/internal/schedule"
	"fyyur/internal/validation"
)

// Store defines persistence operations for shows.
type Store interface {
	ListShows(ctx context.Context) ([]models.ShowWithDetails, error)
	CreateShow(ctx context.Context, show *models.Show) (*models.Show, error)
}

// Validator checks submitted records.
type Validator interface {
	Struct(s any) error
}

// Service coordinates show-related operations.
type Service struct {
	store    Store
	validate Validator
}

// New constructs a show Service backed by the provided Store. A nil
// validator selects the default form validator.
func New(store Store, validate Validator) *Service {
	if validate == nil {
		validate = validation.New()
	}
	return &Service{store: store, validate: validate}
}

// List flattens every show into one row carrying both sides of the booking.
func (s *Service) List(ctx context.Context) ([]models.ShowListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	shows, err := s.store.ListShows(ctx)
	if err != nil {
		return nil, err
	}

	listings := make([]models.ShowListing, 0, len(shows))
	for _, sh := range shows {
		listings = append(listings, models.ShowListing{
			VenueID:         sh.VenueID,
			VenueName:       sh.VenueName,
			VenueImageLink:  sh.VenueImageLink,
			ArtistID:        sh.ArtistID,
			ArtistName:      sh.ArtistName,
			ArtistImageLink: sh.ArtistImageLink,
			StartTime:       schedule.FormatStartTime(sh.StartTime),
		})
	}
	return listings, nil
}

// Create validates and books a show. A show referring to a missing artist
// or venue fails with store.ErrInvalidReference.
func (s *Service) Create(ctx context.Context, show models.Show) (*models.Show, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	show.ID = 0
	if err := s.validate.Struct(show); err != nil {
		return nil, err
	}
	return s.store.CreateShow(ctx, &show)
}
