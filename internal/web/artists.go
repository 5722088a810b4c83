package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"fyyur/internal/models"
	"fyyur/internal/store"
)

type artistForm struct {
	Title  string
	Action string
	Artist models.Artist
}

func (s *Server) handleArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := s.artists.List(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "artists.html", artists, nil)
}

func (s *Server) handleSearchArtists(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	term := r.PostForm.Get("search_term")

	results, err := s.artists.Search(r.Context(), term)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "search.html", searchPage{Kind: "artists", SearchTerm: term, Results: results}, nil)
}

func (s *Server) handleArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}

	detail, err := s.artists.Detail(r.Context(), id)
	if errors.Is(err, store.ErrArtistNotFound) {
		s.notFound(w, r)
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "artist.html", detail, nil)
}

func (s *Server) handleNewArtist(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "artist_form.html", artistForm{
		Title:  "List a new artist",
		Action: "/artists/create",
	}, nil)
}

func (s *Server) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	submitted := artistFromForm(r.PostForm)
	name := strings.TrimSpace(submitted.Name)

	if _, err := s.artists.Create(r.Context(), submitted); err != nil {
		if !recoverable(r, err) {
			s.serverError(w, r, err)
			return
		}
		s.render(w, r, http.StatusOK, "home.html", nil, errorFlash("An error occurred. Artist %s could not be listed.", name))
		return
	}
	s.render(w, r, http.StatusOK, "home.html", nil, successFlash("Artist %s was successfully listed!", name))
}

func (s *Server) handleEditArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}

	artist, err := s.artists.Get(r.Context(), id)
	if errors.Is(err, store.ErrArtistNotFound) {
		s.notFound(w, r)
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "artist_form.html", artistForm{
		Title:  "Edit artist " + artist.Name,
		Action: fmt.Sprintf("/artists/%d/edit", id),
		Artist: *artist,
	}, nil)
}

func (s *Server) handleUpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}
	if !parseForm(w, r) {
		return
	}
	submitted := artistFromForm(r.PostForm)
	target := fmt.Sprintf("/artists/%d", id)

	_, err := s.artists.Update(r.Context(), id, submitted)
	switch {
	case errors.Is(err, store.ErrArtistNotFound):
		s.notFound(w, r)
	case err != nil && recoverable(r, err):
		redirectWithFlash(w, r, target, errorFlash("An error occurred. Artist could not be updated."))
	case err != nil:
		s.serverError(w, r, err)
	default:
		redirectWithFlash(w, r, target, successFlash("Artist %s was successfully updated!", strings.TrimSpace(submitted.Name)))
	}
}
