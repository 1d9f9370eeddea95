package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		API
		Session
		Catalog
	}

	API struct {
		BaseURL string
		Timeout time.Duration
	}
	Session struct {
		DatabasePath string
	}
	Catalog struct {
		PageSize      int // Books per page on list views
		TopCategories int // Quick-filter buttons shown on the home view
	}
)

func NewConfig() *Config {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("bookwise_api_url", DefaultAPIBaseURL)
	v.SetDefault("bookwise_http_timeout", "10s")
	v.SetDefault("bookwise_session_db", DefaultSessionDBPath)
	v.SetDefault("bookwise_page_size", 16)
	v.SetDefault("bookwise_top_categories", 7)

	return &Config{
		API: API{
			BaseURL: v.GetString("BOOKWISE_API_URL"),
			Timeout: v.GetDuration("BOOKWISE_HTTP_TIMEOUT"),
		},
		Session: Session{
			DatabasePath: v.GetString("BOOKWISE_SESSION_DB"),
		},
		Catalog: Catalog{
			PageSize:      v.GetInt("BOOKWISE_PAGE_SIZE"),
			TopCategories: v.GetInt("BOOKWISE_TOP_CATEGORIES"),
		},
	}
}
