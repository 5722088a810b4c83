package models

import "time"

// Show books one artist at one venue at a point in time.
type Show struct {
	ID        int64     `json:"id"`
	ArtistID  int64     `json:"artist_id" validate:"gt=0"`
	VenueID   int64     `json:"venue_id" validate:"gt=0"`
	StartTime time.Time `json:"start_time" validate:"required"`
}

// ShowWithDetails includes the names and images of both sides.
// Populated via JOIN queries.
type ShowWithDetails struct {
	Show
	ArtistName      string
	ArtistImageLink string
	VenueName       string
	VenueImageLink  string
}

// ShowListing is one row of the global shows page.
type ShowListing struct {
	VenueID         int64  `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	VenueImageLink  string `json:"venue_image_link"`
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}
