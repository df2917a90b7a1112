package core

import (
	"errors"
	"testing"
)

func TestLookupLocale(t *testing.T) {
	for _, id := range []string{"ru", "kk"} {
		loc, err := LookupLocale(id)
		if err != nil {
			t.Fatalf("LookupLocale(%q): %v", id, err)
		}
		if loc.ID != id {
			t.Errorf("LookupLocale(%q).ID = %q", id, loc.ID)
		}
		for name, v := range map[string]string{
			"Disclaimer":     loc.Disclaimer,
			"SystemPrompt":   loc.SystemPrompt,
			"EmptyInput":     loc.EmptyInput,
			"ErrorMessage":   loc.ErrorMessage,
			"StoreFailure":   loc.StoreFailure,
			"SymptomsPrefix": loc.SymptomsPrefix,
			"Welcome":        loc.Welcome,
		} {
			if v == "" {
				t.Errorf("locale %q has empty %s", id, name)
			}
		}
	}
}

func TestLookupLocaleUnknown(t *testing.T) {
	_, err := LookupLocale("en")
	if !errors.Is(err, ErrUnknownLocale) {
		t.Fatalf("expected ErrUnknownLocale, got %v", err)
	}
}

func TestLocales(t *testing.T) {
	locs := Locales()
	if len(locs) != 2 || locs[0].ID != "kk" || locs[1].ID != "ru" {
		t.Errorf("Locales() = %+v", locs)
	}
}

func TestLocaleIDs(t *testing.T) {
	ids := LocaleIDs()
	if len(ids) != 2 || ids[0] != "kk" || ids[1] != "ru" {
		t.Errorf("LocaleIDs() = %v", ids)
	}
}
