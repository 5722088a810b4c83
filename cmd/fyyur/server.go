package main

import (
	"database/sql"
	"net/http"
	"time"

	"fyyur/internal/app/artists"
	"fyyur/internal/app/shows"
	"fyyur/internal/app/venues"
	"fyyur/internal/config"
	"fyyur/internal/store"
	"fyyur/internal/web"
)

func newHTTPServer(cfg *config.Config, db *sql.DB) (*http.Server, error) {
	dataStore := store.New(db)

	venueSvc := venues.New(dataStore)
	artistSvc := artists.New(dataStore)
	showSvc := shows.New(dataStore, nil)

	srv, err := web.NewServer(venueSvc, artistSvc, showSvc, dataStore)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}, nil
}
