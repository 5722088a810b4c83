package models

// SearchResult is a matched venue or artist reduced for listing.
type SearchResult struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// SearchResults is the envelope rendered by the search pages.
type SearchResults struct {
	Count int            `json:"count"`
	Data  []SearchResult `json:"data"`
}
