package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"slices"

	"fyyur/internal/logging"
	"fyyur/internal/models"
	"fyyur/internal/validation"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

const layoutTemplate = "templates/layout.html"

// pages holds one template set per page, each combined with the layout.
type pages struct {
	byName map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"genreOptions": genreOptions,
}

type genreOption struct {
	Value    string
	Selected bool
}

// genreOptions lists every offered genre, marking the chosen ones. Chosen
// genres outside the offered list are appended so a stored record never
// loses them silently on edit.
func genreOptions(chosen []string) []genreOption {
	opts := make([]genreOption, 0, len(models.Genres)+len(chosen))
	for _, g := range models.Genres {
		opts = append(opts, genreOption{Value: g, Selected: slices.Contains(chosen, g)})
	}
	for _, g := range chosen {
		if !slices.Contains(models.Genres, g) {
			opts = append(opts, genreOption{Value: g, Selected: true})
		}
	}
	return opts
}

func loadPages() (*pages, error) {
	names, err := fs.Glob(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	p := &pages{byName: make(map[string]*template.Template, len(names))}
	for _, name := range names {
		if name == layoutTemplate {
			continue
		}
		t, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(templateFiles, layoutTemplate, name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		p.byName[name[len("templates/"):]] = t
	}
	return p, nil
}

// view is the value every page template executes against.
type view struct {
	Flash  *Flash
	Data   any
	States []string
}

// render executes the named page into a buffer and writes it with status.
// A flash carried over from a redirect is shown when fl is nil.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data any, fl *Flash) {
	t, ok := s.pages.byName[name]
	if !ok {
		s.serverError(w, r, fmt.Errorf("unknown template %q", name))
		return
	}

	if fl == nil {
		fl = popFlash(w, r)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, view{
		Flash:  fl,
		Data:   data,
		States: validation.States,
	}); err != nil {
		logging.WithContext(r.Context()).Error().Err(err).Str("template", name).Msg("render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, "404.html", nil, nil)
}

// serverError logs an unexpected fault once and renders the 500 page.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logging.WithContext(r.Context()).Error().
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("Unhandled error")
	s.internalError(w, r)
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request) {
	t, ok := s.pages.byName["500.html"]
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, view{}); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = buf.WriteTo(w)
}
