package models

// Artist represents a performer that can play shows.
type Artist struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name" validate:"required"`
	City               string   `json:"city" validate:"required"`
	State              string   `json:"state" validate:"required,state"`
	Phone              string   `json:"phone" validate:"omitempty,phone"`
	Genres             []string `json:"genres" validate:"min=1,dive,genre"`
	WebsiteLink        string   `json:"website_link" validate:"omitempty,url"`
	ImageLink          string   `json:"image_link" validate:"omitempty,url"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,url"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}

// ArtistSummary is the artist directory entry.
type ArtistSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// VenueAppearance is one show as seen from an artist page.
type VenueAppearance struct {
	VenueID        int64  `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// ArtistDetail is the view-model of the artist detail page.
type ArtistDetail struct {
	Artist
	PastShows          []VenueAppearance `json:"past_shows"`
	UpcomingShows      []VenueAppearance `json:"upcoming_shows"`
	PastShowsCount     int               `json:"past_shows_count"`
	UpcomingShowsCount int               `json:"upcoming_shows_count"`
}
