package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple word", "Stories", "stories"},
		{"spaces become hyphens", "Street Photography", "street-photography"},
		{"punctuation collapses", "Light & Shadow!", "light-shadow"},
		{"runs collapse to one hyphen", "a  --  b", "a-b"},
		{"leading and trailing trimmed", "  Portraits  ", "portraits"},
		{"digits kept", "Summer 2021", "summer-2021"},
		{"already a slug", "summer-2021", "summer-2021"},
		{"only punctuation", "!!!", ""},
		{"empty input", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Slugify(tc.input))
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{
		"Stories",
		"Street Photography",
		"Light & Shadow!",
		"Summer 2021",
		"  A  very,  odd   name  ",
	}

	for _, input := range inputs {
		slug := Slugify(input)
		require.Equal(t, slug, Slugify(slug), "slugify must be idempotent for %q", input)
		require.Regexp(t, slugPattern, slug)
	}
}
