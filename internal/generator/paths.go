package generator

import "strings"

// fileName maps an item key to its on-disk name. Keys are lower-cased so
// "Red" and "red" address the same clip.
func fileName(key string) string {
	return fileNameBase(key) + ".mp3"
}

func fileNameBase(key string) string {
	return strings.ToLower(key)
}
