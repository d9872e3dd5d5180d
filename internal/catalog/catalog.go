// Package catalog holds the static translation tables the generator sweeps
// over: color names, color modifiers, numeral words, and event phrases.
// Tables are process-wide constants; nothing mutates them at runtime.
package catalog

import "sort"

// Category identifies one of the asset tables.
type Category string

const (
	Colors    Category = "colors"
	Modifiers Category = "modifiers"
	Numbers   Category = "numbers"
	Events    Category = "events"
)

// Categories returns every category in sweep order.
func Categories() []Category {
	return []Category{Colors, Modifiers, Numbers, Events}
}

// Valid reports whether c names a known category.
func (c Category) Valid() bool {
	switch c {
	case Colors, Modifiers, Numbers, Events:
		return true
	}
	return false
}

// Table maps item keys to per-language display text. An item key with no
// entry for a language means that (item, language) pair is skipped.
type Table map[string]map[string]string

// Text returns the display text for key in lang.
func (t Table) Text(key, lang string) (string, bool) {
	translations, ok := t[key]
	if !ok {
		return "", false
	}
	text, ok := translations[lang]
	return text, ok
}

// Keys returns all item keys in sorted order.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Languages returns the sorted language codes present for key.
func (t Table) Languages(key string) []string {
	langs := make([]string, 0, len(t[key]))
	for l := range t[key] {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return langs
}

// Lookup returns the table for a fixed category. Numbers is synthesized per
// run (the key range depends on the requested maximum), so it is not
// available here; use NumberTable instead.
func Lookup(c Category) (Table, bool) {
	switch c {
	case Colors:
		return ColorTable, true
	case Modifiers:
		return ModifierTable, true
	case Events:
		return EventTable, true
	}
	return nil, false
}
