// Package web serves the booking directory's HTML pages.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"fyyur/internal/http/middleware"
	"fyyur/internal/models"
)

// VenueService exposes venue operations to the handlers.
type VenueService interface {
	Directory(ctx context.Context) ([]models.Area, error)
	Search(ctx context.Context, term string) (models.SearchResults, error)
	Get(ctx context.Context, id int64) (*models.Venue, error)
	Detail(ctx context.Context, id int64) (*models.VenueDetail, error)
	Create(ctx context.Context, venue models.Venue) (*models.Venue, error)
	Update(ctx context.Context, id int64, venue models.Venue) (*models.Venue, error)
	Delete(ctx context.Context, id int64) (string, error)
}

// ArtistService exposes artist operations to the handlers.
type ArtistService interface {
	List(ctx context.Context) ([]models.ArtistSummary, error)
	Search(ctx context.Context, term string) (models.SearchResults, error)
	Get(ctx context.Context, id int64) (*models.Artist, error)
	Detail(ctx context.Context, id int64) (*models.ArtistDetail, error)
	Create(ctx context.Context, artist models.Artist) (*models.Artist, error)
	Update(ctx context.Context, id int64, artist models.Artist) (*models.Artist, error)
}

// ShowService exposes show operations to the handlers.
type ShowService interface {
	List(ctx context.Context) ([]models.ShowListing, error)
	Create(ctx context.Context, show models.Show) (*models.Show, error)
}

// Pinger reports database reachability for the health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server wires HTTP handlers to the domain services.
type Server struct {
	venues  VenueService
	artists ArtistService
	shows   ShowService
	db      Pinger

	pages    *pages
	location *time.Location
}

// Option customises a Server.
type Option func(*Server)

// WithLocation sets the time zone submitted show start times are read in.
func WithLocation(loc *time.Location) Option {
	return func(s *Server) { s.location = loc }
}

// NewServer constructs a Server. It fails only if the embedded templates
// cannot be parsed.
func NewServer(venues VenueService, artists ArtistService, shows ShowService, db Pinger, opts ...Option) (*Server, error) {
	p, err := loadPages()
	if err != nil {
		return nil, err
	}

	s := &Server{
		venues:   venues,
		artists:  artists,
		shows:    shows,
		db:       db,
		pages:    p,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Routes returns the HTTP handler with middleware applied.
func (s *Server) Routes() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/", s.handleHome).Methods(http.MethodGet)
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	// Literal paths are registered ahead of their {id} siblings.
	router.HandleFunc("/venues", s.handleVenues).Methods(http.MethodGet)
	router.HandleFunc("/venues/search", s.handleSearchVenues).Methods(http.MethodPost)
	router.HandleFunc("/venues/create", s.handleNewVenue).Methods(http.MethodGet)
	router.HandleFunc("/venues/create", s.handleCreateVenue).Methods(http.MethodPost)
	router.HandleFunc("/venues/{id:[0-9]+}", s.handleVenue).Methods(http.MethodGet)
	router.HandleFunc("/venues/{id:[0-9]+}/delete", s.handleDeleteVenue).Methods(http.MethodGet, http.MethodDelete)
	router.HandleFunc("/venues/{id:[0-9]+}/edit", s.handleEditVenue).Methods(http.MethodGet)
	router.HandleFunc("/venues/{id:[0-9]+}/edit", s.handleUpdateVenue).Methods(http.MethodPost)

	router.HandleFunc("/artists", s.handleArtists).Methods(http.MethodGet)
	router.HandleFunc("/artists/search", s.handleSearchArtists).Methods(http.MethodPost)
	router.HandleFunc("/artists/create", s.handleNewArtist).Methods(http.MethodGet)
	router.HandleFunc("/artists/create", s.handleCreateArtist).Methods(http.MethodPost)
	router.HandleFunc("/artists/{id:[0-9]+}", s.handleArtist).Methods(http.MethodGet)
	router.HandleFunc("/artists/{id:[0-9]+}/edit", s.handleEditArtist).Methods(http.MethodGet)
	router.HandleFunc("/artists/{id:[0-9]+}/edit", s.handleUpdateArtist).Methods(http.MethodPost)

	router.HandleFunc("/shows", s.handleShows).Methods(http.MethodGet)
	router.HandleFunc("/shows/create", s.handleNewShow).Methods(http.MethodGet)
	router.HandleFunc("/shows/create", s.handleCreateShow).Methods(http.MethodPost)

	router.PathPrefix("/static/").Handler(http.FileServer(http.FS(staticFiles)))

	router.NotFoundHandler = http.HandlerFunc(s.notFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	var handler http.Handler = router
	handler = middleware.Recovery(http.HandlerFunc(s.internalError))(handler)
	handler = middleware.RequestLogging()(handler)
	return handler
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "home.html", nil, nil)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := s.db.Ping(ctx); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("database unavailable"))
		return
	}
	_, _ = w.Write([]byte("ok"))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
