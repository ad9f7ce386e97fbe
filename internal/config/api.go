package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/leadline-crm/leadline/internal/common"
)

// API holds the backend connection settings read from viper.
type API struct {
	BaseURL string
	Timeout time.Duration
}

// LoadAPI reads and validates the backend settings. The base URL is
// required; the timeout defaults to 30s.
func LoadAPI() (API, error) {
	baseURL := strings.TrimRight(viper.GetString("api.base_url"), "/")
	if baseURL == "" {
		return API{}, fmt.Errorf("%w: api.base_url is required (set it in config.yaml or LEADLINE_API_BASE_URL)", common.ErrMissingConfig)
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return API{}, fmt.Errorf("%w: api.base_url must be an http(s) URL", common.ErrInvalidConfig)
	}

	timeout := viper.GetDuration("api.timeout")
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return API{BaseURL: baseURL, Timeout: timeout}, nil
}
