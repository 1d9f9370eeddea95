package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("BOOKWISE_API_URL", "")
	t.Setenv("BOOKWISE_HTTP_TIMEOUT", "")
	t.Setenv("BOOKWISE_SESSION_DB", "")
	t.Setenv("BOOKWISE_PAGE_SIZE", "")
	t.Setenv("BOOKWISE_TOP_CATEGORIES", "")

	cfg := NewConfig()

	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, DefaultSessionDBPath, cfg.Session.DatabasePath)
	assert.Equal(t, 16, cfg.Catalog.PageSize)
	assert.Equal(t, 7, cfg.Catalog.TopCategories)
}

func TestNewConfigFromEnvironment(t *testing.T) {
	t.Setenv("BOOKWISE_API_URL", "https://books.example.com")
	t.Setenv("BOOKWISE_HTTP_TIMEOUT", "30s")
	t.Setenv("BOOKWISE_PAGE_SIZE", "32")

	cfg := NewConfig()

	assert.Equal(t, "https://books.example.com", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 32, cfg.Catalog.PageSize)
}
