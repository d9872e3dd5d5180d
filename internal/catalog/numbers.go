package catalog

import "strconv"

// numeralWords spells out small counts per language so the synthesized clip
// is unambiguous. Anything above the table falls back to decimal digits,
// which every backend reads aloud in the request language.
var numeralWords = map[string][]string{
	"en": {
		"one", "two", "three", "four", "five",
		"six", "seven", "eight", "nine", "ten",
		"eleven", "twelve", "thirteen", "fourteen", "fifteen",
		"sixteen", "seventeen", "eighteen", "nineteen", "twenty",
	},
	"ru": {
		"один", "два", "три", "четыре", "пять",
		"шесть", "семь", "восемь", "девять", "десять",
		"одиннадцать", "двенадцать", "тринадцать", "четырнадцать", "пятнадцать",
		"шестнадцать", "семнадцать", "восемнадцать", "девятнадцать", "двадцать",
	},
	"uk": {
		"один", "два", "три", "чотири", "п'ять",
		"шість", "сім", "вісім", "дев'ять", "десять",
		"одинадцять", "дванадцять", "тринадцять", "чотирнадцять", "п'ятнадцять",
		"шістнадцять", "сімнадцять", "вісімнадцять", "дев'ятнадцять", "двадцять",
	},
}

// NumberText returns the spoken form of n in lang.
func NumberText(n int, lang string) string {
	if words, ok := numeralWords[lang]; ok && n >= 1 && n <= len(words) {
		return words[n-1]
	}
	return strconv.Itoa(n)
}

// NumberTable builds the numbers table for 1..max. Keys are the decimal
// strings used as file names; values are the spoken numeral words.
func NumberTable(max int, langs []string) Table {
	t := make(Table, max)
	for n := 1; n <= max; n++ {
		entry := make(map[string]string, len(langs))
		for _, lang := range langs {
			entry[lang] = NumberText(n, lang)
		}
		t[strconv.Itoa(n)] = entry
	}
	return t
}
