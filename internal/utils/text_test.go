package utils

import (
	"regexp"
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello-world"},
		{"  Go_is  fun -- ", "go-is-fun"},
		{"Next.js 14 App Router", "nextjs-14-app-router"},
		{"---", ""},
		{"", ""},
		{"Café au lait", "caf-au-lait"},
		{"already-a-slug", "already-a-slug"},
		{"hello\u00a0world", "hello-world"},
		{"hello\u2003\u2003world", "hello-world"},
		{"\ufeffzero\u3000width", "zero-width"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Slugify(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Slugify(got), "slugify must be idempotent")
		})
	}
}

var slugShape = regexp.MustCompile(`^([a-z0-9]+(-[a-z0-9]+)*)?$`)

func TestSlugifyIdempotent(t *testing.T) {
	property := func(s string) bool {
		once := Slugify(s)
		return Slugify(once) == once && slugShape.MatchString(once)
	}
	assert.NoError(t, quick.Check(property, &quick.Config{MaxCount: 2000}))
}

func FuzzSlugify(f *testing.F) {
	for _, seed := range []string{"Hello, World!", "a\u00a0b", "__--__", "日本語 title", "\ufeff"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		once := Slugify(s)
		if Slugify(once) != once {
			t.Fatalf("Slugify(%q) = %q is not stable", s, once)
		}
		if !slugShape.MatchString(once) {
			t.Fatalf("Slugify(%q) = %q has unexpected characters", s, once)
		}
	})
}

func TestGenerateSlug(t *testing.T) {
	slug := GenerateSlug("Hello World")
	assert.Regexp(t, regexp.MustCompile(`^hello-world-[0-9a-z]+$`), slug)
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "abcde...", TruncateText("abcdefghij", 5))
	assert.Equal(t, "abcdefghij", TruncateText("abcdefghij", 10))
	assert.Equal(t, "short", TruncateText("short", 100))
	assert.Equal(t, "hello...", TruncateText("hello world", 6))
	assert.Equal(t, "héllo...", TruncateText("héllo wörld", 5))
	assert.Equal(t, "...", TruncateText("abc", 0))
	assert.Equal(t, "", TruncateText("", 3))
}

func TestReadingTime(t *testing.T) {
	assert.Equal(t, 0, ReadingTime(""))
	assert.Equal(t, 0, ReadingTime("   \n\t "))
	assert.Equal(t, 1, ReadingTime("word"))
	assert.Equal(t, 1, ReadingTime(strings.Repeat("word ", 200)))
	assert.Equal(t, 2, ReadingTime(strings.Repeat("word ", 201)))
	assert.Equal(t, 2, ReadingTime(strings.Repeat("word ", 400)))
	assert.Equal(t, 3, ReadingTime(strings.Repeat("word\n", 401)))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Hello", Capitalize("hello"))
	assert.Equal(t, "HELLO", Capitalize("HELLO"))
	assert.Equal(t, "Émile", Capitalize("émile"))
	assert.Equal(t, "", Capitalize(""))
}

func TestKebabToTitle(t *testing.T) {
	assert.Equal(t, "Hello World Again", KebabToTitle("hello-world-again"))
	assert.Equal(t, "Single", KebabToTitle("single"))
	assert.Equal(t, "A  B", KebabToTitle("a--b"))
}

func TestGetInitials(t *testing.T) {
	assert.Equal(t, "JD", GetInitials("John Dn"))
	assert.Equal(t, "JR", GetInitials("jane  ronald  roe"))
	assert.Equal(t, "C", GetInitials("cher"))
	assert.Equal(t, "", GetInitials("   "))
}
