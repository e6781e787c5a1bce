package metric

import (
	"net/url"
	"time"

	"codeberg.org/mutker/barstatus/internal/errors"
)

const (
	// RefreshInterval is the pause after every fetch, successful or not.
	RefreshInterval = 60 * time.Second

	defaultTimeout = 10 * time.Second
	secretHeader   = "API-Secret"
)

type Config struct {
	URL      string
	Secret   string
	Timeout  time.Duration
	Interval time.Duration
}

func DefaultConfig() Config {
	return Config{
		Timeout:  defaultTimeout,
		Interval: RefreshInterval,
	}
}

// Enabled reports whether an endpoint is configured.
func (c Config) Enabled() bool {
	return c.URL != ""
}

func (c Config) Validate() error {
	errFactory := errors.New()

	if c.Timeout <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.Timeout.String())
	}
	if c.Interval <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.Interval.String())
	}
	if !c.Enabled() {
		return nil
	}

	u, err := url.Parse(c.URL)
	if err != nil {
		return errFactory.Wrap(errors.ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errFactory.WithData(errors.ErrInvalidURL, c.URL)
	}

	return nil
}
