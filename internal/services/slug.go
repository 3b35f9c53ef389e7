package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// SanitizeName replaces every run of characters outside [A-Za-z0-9] with a
// single hyphen. Used for archive folder and file names, which must match
// what clients have come to expect byte for byte.
func SanitizeName(name string) string {
	return nonAlphanumeric.ReplaceAllString(name, "-")
}

// GenerateSlug derives a URL-safe slug from a gallery display name. The
// base-36 timestamp suffix guarantees uniqueness for galleries sharing a
// name; the slug is immutable after creation.
func GenerateSlug(name string) string {
	slug := strings.ToLower(SanitizeName(name))
	slug = strings.Trim(slug, "-")
	return slug + "-" + strconv.FormatInt(time.Now().UnixMilli(), 36)
}
