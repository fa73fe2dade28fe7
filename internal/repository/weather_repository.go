package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/fakhrymubarak/weather-cli/internal/config"
	"github.com/fakhrymubarak/weather-cli/internal/model"
)

// Custom error types
var (
	ErrAPIKeyMissing     = errors.New("API key missing")
	ErrExternalAPI       = errors.New("external API error")
	ErrMalformedResponse = errors.New("malformed weather response")
	ErrAPIResponse       = errors.New("weather API returned an error")
)

const redactedKey = "REDACTED"

// WeatherRepository defines the interface for weather data access
type WeatherRepository interface {
	GetWeather(ctx context.Context, city string) (*model.WeatherResult, error)
}

// weatherRepository implements WeatherRepository against WeatherAPI.com
type weatherRepository struct {
	httpClient  *http.Client
	baseURL     string
	lang        string
	apiKey      func() string
	debugOut    io.Writer
	showSecrets bool
}

type Option func(*weatherRepository)

func WithHTTPClient(client *http.Client) Option {
	return func(r *weatherRepository) {
		if client != nil {
			r.httpClient = client
		}
	}
}

func WithBaseURL(baseURL string) Option {
	return func(r *weatherRepository) {
		r.baseURL = baseURL
	}
}

func WithLang(lang string) Option {
	return func(r *weatherRepository) {
		r.lang = lang
	}
}

// WithAPIKey fixes the key instead of reading WEATHER_API_KEY on every request.
func WithAPIKey(key string) Option {
	return func(r *weatherRepository) {
		r.apiKey = func() string { return key }
	}
}

// WithDebugOutput echoes every request URL to w. The API key is masked
// unless showSecrets is set.
func WithDebugOutput(w io.Writer, showSecrets bool) Option {
	return func(r *weatherRepository) {
		r.debugOut = w
		r.showSecrets = showSecrets
	}
}

// NewWeatherRepository creates a new weather repository instance
func NewWeatherRepository(opts ...Option) WeatherRepository {
	r := &weatherRepository{
		httpClient: &http.Client{Timeout: config.GetHTTPTimeout()},
		baseURL:    config.GetWeatherAPIURL(),
		lang:       config.GetWeatherAPILang(),
		apiKey:     config.GetWeatherAPIKey,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetWeather fetches the current conditions for city. It fails with
// ErrAPIKeyMissing before any network activity when no key is configured.
func (r *weatherRepository) GetWeather(ctx context.Context, city string) (*model.WeatherResult, error) {
	apiKey := r.apiKey()
	if apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	requestURL, err := r.buildURL(apiKey, city)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExternalAPI, err)
	}
	redactedURL, _ := r.buildURL(redactedKey, city)

	if r.debugOut != nil {
		echo := redactedURL
		if r.showSecrets {
			echo = requestURL
		}
		fmt.Fprintf(r.debugOut, "DEBUG: Consultando URL: %s\n", echo)
	}
	config.GetLogger().Debugw("Requesting current weather", "city", city, "url", redactedURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExternalAPI, redactError(err, redactedURL))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExternalAPI, redactError(err, redactedURL))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExternalAPI, err)
	}

	// Unmarshal rejects anything after the top-level value.
	var data model.APIResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if data.Error != nil {
		config.GetLogger().Debugw("Weather API rejected request", "status", resp.StatusCode, "code", data.Error.Code)
		return nil, fmt.Errorf("%w: %w", ErrAPIResponse, data.Error)
	}

	weather, ok := data.Result()
	if !ok {
		return nil, fmt.Errorf("%w: missing location or current data (status %d)", ErrMalformedResponse, resp.StatusCode)
	}

	return weather, nil
}

func (r *weatherRepository) buildURL(apiKey, city string) (string, error) {
	u, err := url.Parse(r.baseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("key", apiKey)
	q.Set("q", city)
	q.Set("lang", r.lang)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// redactError keeps the API key out of transport error messages, which
// embed the request URL.
func redactError(err error, redactedURL string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &url.Error{Op: urlErr.Op, URL: redactedURL, Err: urlErr.Err}
	}
	return err
}
