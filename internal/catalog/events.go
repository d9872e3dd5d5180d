package catalog

// EventTable holds discrete announcement phrases played during pattern
// playback. Events are generated for English only by default; the other
// translations are used when languages are selected explicitly.
var EventTable = Table{
	"attention":        {"ru": "внимание", "uk": "увага", "en": "attention"},
	"row-complete":     {"ru": "ряд завершён", "uk": "ряд завершено", "en": "row complete"},
	"pattern-complete": {"ru": "узор готов", "uk": "візерунок готовий", "en": "pattern complete"},
	"next-row":         {"ru": "следующий ряд", "uk": "наступний ряд", "en": "next row"},
}

// DefaultEventLanguage is the language events are rendered in when no
// explicit selection is made.
const DefaultEventLanguage = "en"
