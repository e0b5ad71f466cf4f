package domain

import "strconv"

// Slugify converts a document title into a URL-safe registry key.
// Lowercases, strips every character that is not a lowercase letter,
// digit, underscore, dash or space, removes whitespace entirely and
// trims leading/trailing dashes. Idempotent: slugifying a slug
// returns it unchanged.
func Slugify(title string) string {
	buf := make([]byte, 0, len(title))
	for _, r := range title {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			buf = append(buf, byte(r))
		case r == ' ', r == '\t', r == '\n', r == '\r':
			// Whitespace is removed, not replaced with a separator.
		}
	}

	start, end := 0, len(buf)
	for start < end && buf[start] == '-' {
		start++
	}
	for end > start && buf[end-1] == '-' {
		end--
	}
	return string(buf[start:end])
}

// SlugTable assigns unique slugs within a single snapshot build.
// Titles that normalise to an already-taken slug get a numeric
// suffix (-2, -3, ...) rather than silently overwriting the earlier
// entry. Titles that normalise to the empty string get a positional
// untitled-<n> fallback so two untitled documents never collide.
//
// Not safe for concurrent use; one table per refresh cycle.
type SlugTable struct {
	used     map[string]struct{}
	untitled int
}

// NewSlugTable creates an empty slug table.
func NewSlugTable() *SlugTable {
	return &SlugTable{used: make(map[string]struct{})}
}

// Assign returns a unique slug for the title and records it as taken.
func (t *SlugTable) Assign(title string) string {
	base := Slugify(title)
	if base == "" {
		t.untitled++
		base = "untitled-" + strconv.Itoa(t.untitled)
	}

	slug := base
	for n := 2; ; n++ {
		if _, taken := t.used[slug]; !taken {
			break
		}
		slug = base + "-" + strconv.Itoa(n)
	}

	t.used[slug] = struct{}{}
	return slug
}
