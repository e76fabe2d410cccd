package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/todoexpert/todo-system/internal/core/domain"
	"github.com/todoexpert/todo-system/internal/pkg/metrics"
)

const (
	DefaultURL     = "https://f-api.github.io/f-api/weather.json"
	defaultTimeout = 5 * time.Second
	dayFormat      = "01-02"
)

// Config captures the weather feed location and request timeout.
type Config struct {
	URL     string
	Timeout time.Duration
}

type entry struct {
	Date    string `json:"date"`
	Weather string `json:"weather"`
}

// Client reads today's weather label from a JSON feed of
// [{"date":"MM-dd","weather":"..."}] entries.
type Client struct {
	url  string
	http *http.Client
	now  func() time.Time
	log  zerolog.Logger
}

func NewClient(cfg Config, log zerolog.Logger) *Client {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		url:  cfg.URL,
		http: &http.Client{Timeout: cfg.Timeout},
		now:  time.Now,
		log:  log,
	}
}

// TodayWeather returns the label for today's date. Any failure wraps
// domain.ErrWeatherUnavailable.
func (c *Client) TodayWeather(ctx context.Context) (string, error) {
	start := time.Now()
	label, err := c.fetch(ctx)

	result := "ok"
	if err != nil {
		result = "error"
		c.log.Error().Err(err).Str("url", c.url).Msg("weather lookup failed")
	}
	metrics.WeatherLookupDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())

	return label, err
}

func (c *Client) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", domain.ErrWeatherUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrWeatherUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", domain.ErrWeatherUnavailable, resp.StatusCode)
	}

	var entries []entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return "", fmt.Errorf("%w: decode: %v", domain.ErrWeatherUnavailable, err)
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("%w: empty feed", domain.ErrWeatherUnavailable)
	}

	today := c.now().Format(dayFormat)
	for _, e := range entries {
		if e.Date == today {
			return e.Weather, nil
		}
	}
	return "", fmt.Errorf("%w: no entry for %s", domain.ErrWeatherUnavailable, today)
}
