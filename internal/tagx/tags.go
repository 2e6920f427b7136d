// Package tagx converts between a story's tag list and the comma-joined
// string the tags column stores.
package tagx

import "strings"

const Separator = ","

// Split cuts a stored tag string on commas and drops segments that contain
// only whitespace. Kept segments are returned as stored.
func Split(s string) []string {
	parts := strings.Split(s, Separator)
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		tags = append(tags, p)
	}
	return tags
}

// Join is the inverse of Split for tags that contain no commas.
func Join(tags []string) string {
	return strings.Join(tags, Separator)
}

// Contains reports whether tags holds t, ignoring case.
func Contains(tags []string, t string) bool {
	for _, v := range tags {
		if strings.EqualFold(v, t) {
			return true
		}
	}
	return false
}
