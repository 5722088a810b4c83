package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"fyyur/internal/models"
	"fyyur/internal/store"
)

type venueForm struct {
	Title  string
	Action string
	Venue  models.Venue
}

type searchPage struct {
	Kind       string
	SearchTerm string
	Results    models.SearchResults
}

func (s *Server) handleVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := s.venues.Directory(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "venues.html", areas, nil)
}

func (s *Server) handleSearchVenues(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	term := r.PostForm.Get("search_term")

	results, err := s.venues.Search(r.Context(), term)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "search.html", searchPage{Kind: "venues", SearchTerm: term, Results: results}, nil)
}

func (s *Server) handleVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}

	detail, err := s.venues.Detail(r.Context(), id)
	if errors.Is(err, store.ErrVenueNotFound) {
		s.notFound(w, r)
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "venue.html", detail, nil)
}

func (s *Server) handleNewVenue(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "venue_form.html", venueForm{
		Title:  "List a new venue",
		Action: "/venues/create",
	}, nil)
}

func (s *Server) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	submitted := venueFromForm(r.PostForm)
	name := strings.TrimSpace(submitted.Name)

	if _, err := s.venues.Create(r.Context(), submitted); err != nil {
		if !recoverable(r, err) {
			s.serverError(w, r, err)
			return
		}
		s.render(w, r, http.StatusOK, "home.html", nil, errorFlash("An error occurred. Venue %s could not be listed.", name))
		return
	}
	s.render(w, r, http.StatusOK, "home.html", nil, successFlash("Venue %s was successfully listed!", name))
}

func (s *Server) handleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}

	// Deleting a venue that is already gone is a failed no-op.
	name, err := s.venues.Delete(r.Context(), id)
	switch {
	case errors.Is(err, store.ErrVenueNotFound), err != nil && recoverable(r, err):
		s.render(w, r, http.StatusOK, "home.html", nil, errorFlash("An error occurred. Venue %d could not be deleted.", id))
	case err != nil:
		s.serverError(w, r, err)
	default:
		s.render(w, r, http.StatusOK, "home.html", nil, successFlash("Venue %s was successfully deleted!", name))
	}
}

func (s *Server) handleEditVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}

	venue, err := s.venues.Get(r.Context(), id)
	if errors.Is(err, store.ErrVenueNotFound) {
		s.notFound(w, r)
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "venue_form.html", venueForm{
		Title:  "Edit venue " + venue.Name,
		Action: fmt.Sprintf("/venues/%d/edit", id),
		Venue:  *venue,
	}, nil)
}

func (s *Server) handleUpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}
	if !parseForm(w, r) {
		return
	}
	submitted := venueFromForm(r.PostForm)
	target := fmt.Sprintf("/venues/%d", id)

	_, err := s.venues.Update(r.Context(), id, submitted)
	switch {
	case errors.Is(err, store.ErrVenueNotFound):
		s.notFound(w, r)
	case err != nil && recoverable(r, err):
		redirectWithFlash(w, r, target, errorFlash("An error occurred. Venue could not be updated."))
	case err != nil:
		s.serverError(w, r, err)
	default:
		redirectWithFlash(w, r, target, successFlash("Venue %s was successfully updated!", strings.TrimSpace(submitted.Name)))
	}
}
