package metric

import (
	"context"
	"io"
	"net/http"

	"codeberg.org/mutker/barstatus/internal/errors"
	"codeberg.org/mutker/barstatus/internal/telemetry"
)

// maxBody caps how much of a response is read.
const maxBody = 1 << 20

// Fetcher retrieves the current entry from the remote endpoint.
type Fetcher struct {
	cfg    Config
	client *http.Client
}

func NewFetcher(cfg Config, client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{}
	}
	return &Fetcher{cfg: cfg, client: client}
}

// Fetch performs one request bounded by the configured timeout.
func (f *Fetcher) Fetch(ctx context.Context) (telemetry.MetricReading, error) {
	errFactory := errors.New()

	ctx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.cfg.URL, nil)
	if err != nil {
		return telemetry.MetricReading{}, errFactory.Wrap(ErrRequestFailed, err)
	}
	req.Header.Set(secretHeader, f.cfg.Secret)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return telemetry.MetricReading{}, errFactory.Wrap(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return telemetry.MetricReading{}, errFactory.WithData(ErrBadStatus, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return telemetry.MetricReading{}, errFactory.Wrap(ErrRequestFailed, err)
	}

	return parseEntry(body)
}
