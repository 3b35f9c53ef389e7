package services_test

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"heirloom-gallery-backend/internal/services"
)

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "Kathy-Scotty", services.SanitizeName("Kathy & Scotty"))
	assert.Equal(t, "Smith-Family-2026", services.SanitizeName("Smith Family 2026"))
	assert.Equal(t, "a-b", services.SanitizeName("a   ***   b"))
	assert.Equal(t, "-", services.SanitizeName("&&&"))
}

func TestGenerateSlug_Format(t *testing.T) {
	slug := services.GenerateSlug("Kathy & Scotty")

	assert.True(t, strings.HasPrefix(slug, "kathy-scotty-"), "slug %q should start with the lowercased name", slug)
	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`), slug)

	// The suffix decodes as a base-36 millisecond timestamp near now.
	suffix := slug[strings.LastIndex(slug, "-")+1:]
	millis, err := strconv.ParseInt(suffix, 36, 64)
	assert.NoError(t, err)
	assert.InDelta(t, time.Now().UnixMilli(), millis, 5000)
}

func TestGenerateSlug_TrimsLeadingAndTrailingHyphens(t *testing.T) {
	slug := services.GenerateSlug("  Kathy & Scotty!  ")

	assert.True(t, strings.HasPrefix(slug, "kathy-scotty-"), "got %q", slug)
	assert.False(t, strings.HasPrefix(slug, "-"))
}

func TestGenerateSlug_UniqueAcrossSameName(t *testing.T) {
	first := services.GenerateSlug("Smith Family")
	time.Sleep(2 * time.Millisecond)
	second := services.GenerateSlug("Smith Family")

	assert.NotEqual(t, first, second)
}
