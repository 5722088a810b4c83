package web

import (
	"testing"

	"fyyur/internal/models"
)

func TestGenreOptions(t *testing.T) {
	opts := genreOptions([]string{"Jazz", "Swing"})

	if len(opts) != len(models.Genres)+1 {
		t.Fatalf("expected offered genres plus one unlisted, got %d options", len(opts))
	}
	selected := map[string]bool{}
	for _, o := range opts {
		if o.Selected {
			selected[o.Value] = true
		}
	}
	if len(selected) != 2 || !selected["Jazz"] || !selected["Swing"] {
		t.Fatalf("unexpected selection %v", selected)
	}
	if last := opts[len(opts)-1]; last.Value != "Swing" {
		t.Fatalf("expected unlisted genre appended last, got %q", last.Value)
	}
}

func TestGenreOptionsNothingChosen(t *testing.T) {
	for _, o := range genreOptions(nil) {
		if o.Selected {
			t.Fatalf("nothing should be selected, got %q", o.Value)
		}
	}
}
