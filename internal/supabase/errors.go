package supabase

import "errors"

// ErrNotFound is returned when a requested gallery or photo does not exist.
// Callers use errors.Is to distinguish a missing resource from a backend
// failure and render a 404 instead of a generic error.
var ErrNotFound = errors.New("record not found")
