package messages

import (
	"testing"

	"golang.org/x/text/language"
)

func newTestResolver() *Resolver {
	r := NewResolver(language.English)
	r.Add(language.English, map[string]string{
		"greeting": "hello",
		"farewell": "goodbye",
	})
	r.Add(language.German, map[string]string{
		"greeting": "hallo",
	})
	return r
}

func TestLookup(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		locale string
		key    string
		want   string
		ok     bool
	}{
		{"en", "greeting", "hello", true},
		{"de", "greeting", "hallo", true},
		{"en", "missing", "", false},
	}
	for _, tt := range tests {
		got, ok := r.Lookup(tt.locale, tt.key)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Lookup(%q, %q) = (%q, %v), want (%q, %v)", tt.locale, tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLookup_RangeFallback(t *testing.T) {
	r := newTestResolver()

	// de-AT has no bundle of its own; it falls back through the German
	// language range.
	if got, ok := r.Lookup("de-AT", "greeting"); !ok || got != "hallo" {
		t.Errorf("Lookup(de-AT) = (%q, %v), want (hallo, true)", got, ok)
	}

	// A key missing from the matched bundle falls back to the fallback
	// locale's bundle.
	if got, ok := r.Lookup("de", "farewell"); !ok || got != "goodbye" {
		t.Errorf("Lookup(de, farewell) = (%q, %v), want (goodbye, true)", got, ok)
	}

	// An unsupported locale resolves to the fallback.
	if got, ok := r.Lookup("ja", "greeting"); !ok || got != "hello" {
		t.Errorf("Lookup(ja) = (%q, %v), want (hello, true)", got, ok)
	}
}

func TestLookup_InvalidLocale(t *testing.T) {
	r := newTestResolver()
	if got, ok := r.Lookup("!!!", "greeting"); !ok || got != "hello" {
		t.Errorf("Lookup(invalid) = (%q, %v), want fallback (hello, true)", got, ok)
	}
}

func TestMatchCache(t *testing.T) {
	r := newTestResolver()
	r.Lookup("de-AT", "greeting")

	r.mu.RLock()
	_, cached := r.cache["de-AT"]
	r.mu.RUnlock()
	if !cached {
		t.Error("matched tag not cached")
	}

	// Adding a bundle invalidates the cache so new locales can win.
	r.Add(language.French, map[string]string{"greeting": "bonjour"})
	r.mu.RLock()
	size := len(r.cache)
	r.mu.RUnlock()
	if size != 0 {
		t.Errorf("cache size after Add = %d, want 0", size)
	}

	if got, ok := r.Lookup("fr", "greeting"); !ok || got != "bonjour" {
		t.Errorf("Lookup(fr) = (%q, %v), want (bonjour, true)", got, ok)
	}
}
