package web

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
)

const flashCookie = "fyyur_flash"

// Flash categories.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot notification shown at the top of a page.
type Flash struct {
	Category string
	Message  string
}

func successFlash(format string, args ...any) *Flash {
	return &Flash{Category: FlashSuccess, Message: fmt.Sprintf(format, args...)}
}

func errorFlash(format string, args ...any) *Flash {
	return &Flash{Category: FlashError, Message: fmt.Sprintf(format, args...)}
}

// redirectWithFlash stores fl in a short-lived cookie and redirects to
// target with 303 See Other.
func redirectWithFlash(w http.ResponseWriter, r *http.Request, target string, fl *Flash) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    fl.Category + "." + base64.RawURLEncoding.EncodeToString([]byte(fl.Message)),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// popFlash reads and clears the flash cookie. Malformed values are dropped.
func popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1})

	category, encoded, ok := strings.Cut(c.Value, ".")
	if !ok || (category != FlashSuccess && category != FlashError) {
		return nil
	}
	msg, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}
	return &Flash{Category: category, Message: string(msg)}
}
