package catalog

// ModifierTable holds the color modifiers spoken before a color name
// ("light blue", "dark red").
var ModifierTable = Table{
	"light":  {"ru": "светлый", "uk": "світлий", "en": "light"},
	"dark":   {"ru": "тёмный", "uk": "темний", "en": "dark"},
	"bright": {"ru": "яркий", "uk": "яскравий", "en": "bright"},
	"pale":   {"ru": "бледный", "uk": "блідий", "en": "pale"},
	"deep":   {"ru": "насыщенный", "uk": "насичений", "en": "deep"},
}
