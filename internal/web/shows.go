package web

import "net/http"

func (s *Server) handleShows(w http.ResponseWriter, r *http.Request) {
	shows, err := s.shows.List(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "shows.html", shows, nil)
}

func (s *Server) handleNewShow(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "show_form.html", nil, nil)
}

func (s *Server) handleCreateShow(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	if _, err := s.shows.Create(r.Context(), s.showFromForm(r.PostForm)); err != nil {
		if !recoverable(r, err) {
			s.serverError(w, r, err)
			return
		}
		s.render(w, r, http.StatusOK, "home.html", nil, errorFlash("An error occurred. Show could not be listed."))
		return
	}
	s.render(w, r, http.StatusOK, "home.html", nil, successFlash("Show was successfully listed!"))
}
