package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// WordsPerMinute is the reading speed used by ReadingTime
const WordsPerMinute = 200

// RE2's \s is ASCII only; \p{Z} and U+FEFF add the Unicode spaces
var (
	slugStripRegex    = regexp.MustCompile(`[^\w\s\p{Z}\x{FEFF}-]`)
	slugCollapseRegex = regexp.MustCompile(`[\s\p{Z}\x{FEFF}_-]+`)
)

// Slugify converts text to a lowercase, hyphen-delimited, URL-safe slug.
//
// Characters other than ASCII word characters, whitespace (Unicode spaces
// included) and hyphens are dropped, separator runs collapse to a single hyphen and leading/trailing
// hyphens are trimmed. Slugify(Slugify(x)) == Slugify(x).
//
//	Slugify("Hello, World!")   // "hello-world"
//	Slugify("  Go_is  fun -- ") // "go-is-fun"
func Slugify(text string) string {
	slug := strings.TrimSpace(strings.ToLower(text))
	slug = slugStripRegex.ReplaceAllString(slug, "")
	slug = slugCollapseRegex.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// GenerateSlug returns Slugify(title) suffixed with the current time in
// milliseconds, base-36 encoded.
func GenerateSlug(title string) string {
	return Slugify(title) + "-" + strconv.FormatInt(time.Now().UnixMilli(), 36)
}

// TruncateText shortens text to at most maxLength characters, trims trailing
// whitespace and appends "...". Text within the limit is returned unchanged.
func TruncateText(text string, maxLength int) string {
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	if maxLength < 0 {
		maxLength = 0
	}
	runes := []rune(text)
	return strings.TrimRightFunc(string(runes[:maxLength]), unicode.IsSpace) + "..."
}

// ReadingTime estimates the minutes needed to read content.
// Empty or whitespace-only content takes 0 minutes.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	return (words + WordsPerMinute - 1) / WordsPerMinute
}

// Capitalize uppercases the first character and leaves the rest untouched
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// KebabToTitle turns "kebab-case-text" into "Kebab Case Text"
func KebabToTitle(s string) string {
	words := strings.Split(s, "-")
	for i, w := range words {
		words[i] = Capitalize(w)
	}
	return strings.Join(words, " ")
}

// GetInitials returns up to two uppercase initials from a name
func GetInitials(name string) string {
	var initials []rune
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		initials = append(initials, unicode.ToUpper(r))
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}
