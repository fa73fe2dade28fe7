package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	defaultWeatherAPIURL  = "https://api.weatherapi.com/v1/current.json"
	defaultWeatherAPILang = "es"
)

var once sync.Once
var logger *zap.SugaredLogger
var loggerOnce sync.Once

func initConfig() {
	once.Do(func() {
		viper.SetDefault("weatherapi.api_url", defaultWeatherAPIURL)
		viper.SetDefault("weatherapi.lang", defaultWeatherAPILang)
		viper.SetDefault("weatherapi.timeout", "0s")

		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
		viper.AddConfigPath(".")
		if root, err := getProjectRoot(); err == nil {
			viper.AddConfigPath(root)
		}

		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				GetLogger().Debugw("No config file found, using defaults")
				return
			}
			GetLogger().Errorw("Error reading config file", "error", err)
			return
		}
		GetLogger().Debugw("Config file loaded", "file", viper.ConfigFileUsed())
	})
}

func getProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// GetWeatherAPIURL returns the current-conditions endpoint of WeatherAPI.com.
func GetWeatherAPIURL() string {
	initConfig()
	return viper.GetString("weatherapi.api_url")
}

// GetWeatherAPILang returns the language requested for condition texts.
func GetWeatherAPILang() string {
	initConfig()
	return viper.GetString("weatherapi.lang")
}

// GetHTTPTimeout returns the client timeout for the weather request.
// Zero keeps the transport defaults.
func GetHTTPTimeout() time.Duration {
	initConfig()
	dur, err := time.ParseDuration(viper.GetString("weatherapi.timeout"))
	if err != nil || dur < 0 {
		return 0
	}
	return dur
}

func GetWeatherAPIKey() string {
	return os.Getenv(EnvAPIKey)
}

// ReloadConfigForTest resets the config singleton and reloads Viper config. Use only in tests.
func ReloadConfigForTest() {
	viper.Reset()
	once = sync.Once{}
	initConfig()
}

// InitLogger replaces the shared logger with one filtering at level.
// Unknown levels fall back to info.
func InitLogger(level string) *zap.SugaredLogger {
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	loggerOnce.Do(func() {})
	logger = buildLogger(lvl)
	return logger
}

func GetLogger() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		logger = buildLogger(zapcore.InfoLevel)
	})
	return logger
}

func buildLogger(lvl zapcore.Level) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return l.Sugar()
}
