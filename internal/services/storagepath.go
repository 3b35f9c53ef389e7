package services

import (
	"fmt"
	"net/url"
	"strings"
)

// ResolveStoragePath translates a public photo URL back to its storage
// object path by locating the bucket segment in the URL path and taking the
// remainder. When the bucket segment is absent it falls back to the last two
// path segments, which matches the {galleryID}/{filename} layout uploads use.
// Only needed for rows predating the storage_path column; new uploads record
// their path directly.
func ResolveStoragePath(rawURL, bucket string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse photo url: %w", err)
	}

	parts := strings.Split(u.Path, "/")
	for i, part := range parts {
		if part == bucket {
			return strings.Join(parts[i+1:], "/"), nil
		}
	}

	if len(parts) < 2 {
		return "", fmt.Errorf("photo url has no resolvable path: %s", rawURL)
	}
	return strings.Join(parts[len(parts)-2:], "/"), nil
}
