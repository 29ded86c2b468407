package utils

import "strings"

// Slugify maps a display name to a URL-safe identifier: lowercase,
// [a-z0-9] only, runs of anything else collapsed to single hyphens,
// no leading or trailing hyphens. An empty input produces an empty
// slug; callers reject empty names before getting here.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}

	return b.String()
}
