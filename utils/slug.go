package utils

import (
	"regexp"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify chuyển chuỗi tiếng Việt thành slug không dấu
func Slugify(s string) string {
	s = unidecode.Unidecode(s)
	s = strings.ToLower(s)
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
