package models

// Venue represents a location that can host shows.
type Venue struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name" validate:"required"`
	City               string   `json:"city" validate:"required"`
	State              string   `json:"state" validate:"required,state"`
	Address            string   `json:"address" validate:"required"`
	Phone              string   `json:"phone" validate:"omitempty,phone"`
	Genres             []string `json:"genres" validate:"min=1,dive,genre"`
	WebsiteLink        string   `json:"website_link" validate:"omitempty,url"`
	ImageLink          string   `json:"image_link" validate:"omitempty,url"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,url"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

// VenueSummary is a venue row annotated with its upcoming show count.
type VenueSummary struct {
	ID               int64
	Name             string
	City             string
	State            string
	NumUpcomingShows int
}

// Area groups the venues of one location for the venue directory.
type Area struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []SearchResult `json:"venues"`
}

// ArtistAppearance is one show as seen from a venue page.
type ArtistAppearance struct {
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueDetail is the view-model of the venue detail page: every venue
// attribute plus its past and upcoming shows.
type VenueDetail struct {
	Venue
	PastShows          []ArtistAppearance `json:"past_shows"`
	UpcomingShows      []ArtistAppearance `json:"upcoming_shows"`
	PastShowsCount     int                `json:"past_shows_count"`
	UpcomingShowsCount int                `json:"upcoming_shows_count"`
}
