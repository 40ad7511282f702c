// Package guard holds the pre-submission duplicate-name check.
//
// The check only looks at the collection the caller already has in hand.
// It is advisory: the upstream backend is the authority on uniqueness and a
// stale collection simply lets a request through for the backend to judge.
package guard

import "strings"

// FindDuplicate returns the first element of existing whose name matches
// candidate, ignoring case and surrounding whitespace.
func FindDuplicate[T any](candidate string, existing []T, name func(T) string) (T, bool) {
	want := normalize(candidate)
	for _, e := range existing {
		if normalize(name(e)) == want {
			return e, true
		}
	}
	var zero T
	return zero, false
}

// HasDuplicate reports whether FindDuplicate would find a match.
func HasDuplicate[T any](candidate string, existing []T, name func(T) string) bool {
	_, ok := FindDuplicate(candidate, existing, name)
	return ok
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
