// Package messages is a small keyed-string resolver with language-range
// fallback and a match cache. It is glue around golang.org/x/text's
// language matching, kept separate from the SQL construction core.
package messages

import (
	"sync"

	"golang.org/x/text/language"
)

// Resolver looks up message strings by locale and key. Lookups fall back
// through the language ranges of the requested locale (e.g. "en-GB" falls
// back to "en") and finally to the resolver's fallback locale. Matched tags
// are cached per requested locale.
type Resolver struct {
	fallback language.Tag

	mu      sync.RWMutex
	tags    []language.Tag
	matcher language.Matcher
	bundles map[language.Tag]map[string]string
	cache   map[string]language.Tag
}

// NewResolver returns a resolver with the given fallback locale. Messages
// are added per locale with Add.
func NewResolver(fallback language.Tag) *Resolver {
	r := &Resolver{
		fallback: fallback,
		bundles:  make(map[language.Tag]map[string]string),
		cache:    make(map[string]language.Tag),
	}
	r.rebuild()
	return r
}

// Add registers messages for a locale, merging with any already present.
func (r *Resolver) Add(tag language.Tag, msgs map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	bundle, ok := r.bundles[tag]
	if !ok {
		bundle = make(map[string]string, len(msgs))
		r.bundles[tag] = bundle
	}
	for k, v := range msgs {
		bundle[k] = v
	}
	r.rebuild()
}

// rebuild recomputes the matcher and drops the match cache. Callers hold mu.
func (r *Resolver) rebuild() {
	tags := []language.Tag{r.fallback}
	for tag := range r.bundles {
		if tag != r.fallback {
			tags = append(tags, tag)
		}
	}
	r.tags = tags
	r.matcher = language.NewMatcher(tags)
	r.cache = make(map[string]language.Tag)
}

// Lookup resolves a message by locale and key. The second return reports
// whether the key was found in the matched bundle or the fallback bundle.
func (r *Resolver) Lookup(locale, key string) (string, bool) {
	tag := r.match(locale)

	r.mu.RLock()
	defer r.mu.RUnlock()
	if msg, ok := r.bundles[tag][key]; ok {
		return msg, true
	}
	if msg, ok := r.bundles[r.fallback][key]; ok {
		return msg, true
	}
	return "", false
}

// match resolves a locale string to the best supported tag, caching the
// result.
func (r *Resolver) match(locale string) language.Tag {
	r.mu.RLock()
	tag, ok := r.cache[locale]
	r.mu.RUnlock()
	if ok {
		return tag
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if tag, ok := r.cache[locale]; ok {
		return tag
	}
	desired, err := language.Parse(locale)
	if err != nil {
		desired = r.fallback
	}
	_, idx, _ := r.matcher.Match(desired)
	tag = r.tags[idx]
	r.cache[locale] = tag
	return tag
}
