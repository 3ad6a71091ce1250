package apiclient

import "time"

// Config holds API client settings loadable from the environment via the
// core/config package.
type Config struct {
	BaseURL string        `env:"CLUB_API_BASE_URL" envDefault:"https://api.arcticwolves.ca/v1"`
	Timeout time.Duration `env:"CLUB_API_TIMEOUT" envDefault:"30s"`
}
