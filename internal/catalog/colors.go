package catalog

// ColorTable matches the color vocabulary of the BeadForge pattern viewer
// (colorNames.ts). Keys double as output file names.
var ColorTable = Table{
	"white":  {"ru": "белый", "uk": "білий", "en": "white"},
	"black":  {"ru": "чёрный", "uk": "чорний", "en": "black"},
	"red":    {"ru": "красный", "uk": "червоний", "en": "red"},
	"green":  {"ru": "зелёный", "uk": "зелений", "en": "green"},
	"blue":   {"ru": "синий", "uk": "синій", "en": "blue"},
	"yellow": {"ru": "жёлтый", "uk": "жовтий", "en": "yellow"},
	"orange": {"ru": "оранжевый", "uk": "помаранчевий", "en": "orange"},
	"purple": {"ru": "фиолетовый", "uk": "фіолетовий", "en": "purple"},
	"pink":   {"ru": "розовый", "uk": "рожевий", "en": "pink"},
	"cyan":   {"ru": "голубой", "uk": "блакитний", "en": "cyan"},
	"brown":  {"ru": "коричневый", "uk": "коричневий", "en": "brown"},
	"gray":   {"ru": "серый", "uk": "сірий", "en": "gray"},
	"silver": {"ru": "серебряный", "uk": "срібний", "en": "silver"},
	"gold":   {"ru": "золотой", "uk": "золотий", "en": "gold"},
	"navy":   {"ru": "тёмно-синий", "uk": "темно-синій", "en": "navy"},
	"maroon": {"ru": "бордовый", "uk": "бордовий", "en": "maroon"},

	// Extended palette
	"beige":     {"ru": "бежевый", "uk": "бежевий", "en": "beige"},
	"turquoise": {"ru": "бирюзовый", "uk": "бірюзовий", "en": "turquoise"},
	"coral":     {"ru": "коралловый", "uk": "кораловий", "en": "coral"},
	"lavender":  {"ru": "лавандовый", "uk": "лавандовий", "en": "lavender"},
	"mint":      {"ru": "мятный", "uk": "м'ятний", "en": "mint"},
	"peach":     {"ru": "персиковый", "uk": "персиковий", "en": "peach"},
	"olive":     {"ru": "оливковый", "uk": "оливковий", "en": "olive"},
	"lime":      {"ru": "лаймовый", "uk": "лаймовий", "en": "lime"},
	"teal":      {"ru": "бирюзово-синий", "uk": "синьо-зелений", "en": "teal"},
	"ivory":     {"ru": "слоновая кость", "uk": "слонова кістка", "en": "ivory"},
	"khaki":     {"ru": "хаки", "uk": "хакі", "en": "khaki"},
	"crimson":   {"ru": "малиновый", "uk": "малиновий", "en": "crimson"},
	"indigo":    {"ru": "индиго", "uk": "індиго", "en": "indigo"},
	"magenta":   {"ru": "пурпурный", "uk": "пурпуровий", "en": "magenta"},
	"violet":    {"ru": "фиалковый", "uk": "фіалковий", "en": "violet"},
	"salmon":    {"ru": "лососевый", "uk": "лососевий", "en": "salmon"},
	"tan":       {"ru": "загар", "uk": "засмага", "en": "tan"},
	"aqua":      {"ru": "аква", "uk": "аква", "en": "aqua"},
	"azure":     {"ru": "лазурный", "uk": "лазурний", "en": "azure"},
}
