package service

import (
	"context"

	"github.com/fakhrymubarak/weather-cli/internal/config"
	"github.com/fakhrymubarak/weather-cli/internal/model"
	"github.com/fakhrymubarak/weather-cli/internal/repository"
)

// WeatherServiceInterface defines the interface for weather business logic
type WeatherServiceInterface interface {
	GetWeather(ctx context.Context, city string) (*model.WeatherResult, error)
}

type WeatherService struct {
	WeatherRepo repository.WeatherRepository
}

// NewWeatherService creates a service backed by repo, or by a default
// WeatherAPI repository when none is given.
func NewWeatherService(repo ...repository.WeatherRepository) *WeatherService {
	var weatherRepo repository.WeatherRepository
	if len(repo) > 0 && repo[0] != nil {
		weatherRepo = repo[0]
	} else {
		weatherRepo = repository.NewWeatherRepository()
	}
	return &WeatherService{
		WeatherRepo: weatherRepo,
	}
}

// GetWeather retrieves the current conditions for city. Errors from the
// repository are returned unchanged so callers can classify them.
func (s *WeatherService) GetWeather(ctx context.Context, city string) (*model.WeatherResult, error) {
	weather, err := s.WeatherRepo.GetWeather(ctx, city)
	if err != nil {
		config.GetLogger().Debugw("Weather lookup failed", "city", city, "error", err)
		return nil, err
	}
	config.GetLogger().Debugw("Weather lookup succeeded", "city", city, "location", weather.Location.Name)
	return weather, nil
}
