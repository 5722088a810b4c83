package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"fyyur/internal/logging"
	"fyyur/internal/models"
	"fyyur/internal/schedule"
	"fyyur/internal/store"
	"fyyur/internal/validation"
)

// pathID reads the {id} route variable. The route pattern admits only
// digits, so a failure here means the value overflows int64.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// checked reports whether a checkbox was submitted in the on state. An
// absent checkbox is off.
func checked(form url.Values, key string) bool {
	switch strings.ToLower(strings.TrimSpace(form.Get(key))) {
	case "", "false", "0", "off", "n", "no":
		return false
	default:
		return true
	}
}

func venueFromForm(form url.Values) models.Venue {
	return models.Venue{
		Name:               form.Get("name"),
		City:               form.Get("city"),
		State:              form.Get("state"),
		Address:            form.Get("address"),
		Phone:              form.Get("phone"),
		Genres:             form["genres"],
		WebsiteLink:        form.Get("website_link"),
		ImageLink:          form.Get("image_link"),
		FacebookLink:       form.Get("facebook_link"),
		SeekingTalent:      checked(form, "seeking_talent"),
		SeekingDescription: form.Get("seeking_description"),
	}
}

func artistFromForm(form url.Values) models.Artist {
	return models.Artist{
		Name:               form.Get("name"),
		City:               form.Get("city"),
		State:              form.Get("state"),
		Phone:              form.Get("phone"),
		Genres:             form["genres"],
		WebsiteLink:        form.Get("website_link"),
		ImageLink:          form.Get("image_link"),
		FacebookLink:       form.Get("facebook_link"),
		SeekingVenue:       checked(form, "seeking_venue"),
		SeekingDescription: form.Get("seeking_description"),
	}
}

// showFromForm leaves unparseable ids at zero and an unparseable start time
// at the zero time so validation reports them.
func (s *Server) showFromForm(form url.Values) models.Show {
	var show models.Show
	show.ArtistID, _ = strconv.ParseInt(strings.TrimSpace(form.Get("artist_id")), 10, 64)
	show.VenueID, _ = strconv.ParseInt(strings.TrimSpace(form.Get("venue_id")), 10, 64)
	if start, err := schedule.ParseStartTime(strings.TrimSpace(form.Get("start_time")), s.location); err == nil {
		show.StartTime = start
	}
	return show
}

// parseForm parses the request body, answering 400 when it is malformed.
func parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return false
	}
	return true
}

// recoverable reports whether a failed mutation should be shown to the
// user as a notification rather than as a server error.
func recoverable(r *http.Request, err error) bool {
	switch {
	case errors.Is(err, validation.ErrInvalid):
		logging.WithContext(r.Context()).Debug().Err(err).Msg("submission rejected")
		return true
	case errors.Is(err, store.ErrInvalidReference), errors.Is(err, store.ErrPersistence):
		logging.WithContext(r.Context()).Warn().Err(err).Msg("mutation rolled back")
		return true
	default:
		return false
	}
}
