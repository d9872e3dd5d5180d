// Package voice maps languages to synthesis backend parameters.
package voice

import "sort"

// Config describes how one language is synthesized: the on-disk voice
// folder, the Google Translate TTS parameters, and the Edge neural voice.
type Config struct {
	Language string
	// Folder is the sub-path segment distinguishing voice variants,
	// e.g. audio/tts/ru/<Folder>/red.mp3.
	Folder string
	// TLD selects the regional Google endpoint. Not every backend
	// honors it; see the gtts engine notes.
	TLD string
	// EdgeVoice is the neural voice identifier for the edge backend.
	EdgeVoice string
}

// configs is the static voice registry. A language absent here produces no
// files at all; the generator warns and moves on.
var configs = map[string]Config{
	"ru": {Language: "ru", Folder: "female-default", TLD: "com", EdgeVoice: "ru-RU-SvetlanaNeural"},
	"uk": {Language: "uk", Folder: "female-default", TLD: "com", EdgeVoice: "uk-UA-PolinaNeural"},
	"en": {Language: "en", Folder: "female-default", TLD: "com", EdgeVoice: "en-US-JennyNeural"},
}

// ForLanguage returns the voice configuration for lang.
func ForLanguage(lang string) (Config, bool) {
	cfg, ok := configs[lang]
	return cfg, ok
}

// Languages returns all configured language codes, sorted.
func Languages() []string {
	langs := make([]string, 0, len(configs))
	for l := range configs {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return langs
}

// All returns every voice configuration keyed by language.
func All() map[string]Config {
	out := make(map[string]Config, len(configs))
	for l, c := range configs {
		out[l] = c
	}
	return out
}
