package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Environment variable names read by the CLI.
const (
	EnvMode        = "APP_ENV"
	EnvDebug       = "DEBUG"
	EnvLogLevel    = "LOG_LEVEL"
	EnvShowSecrets = "DEBUG_SHOW_SECRETS"
	EnvAPIKey      = "WEATHER_API_KEY"
)

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"

	defaultLogLevel = "info"
	genericEnvFile  = ".env"
)

// Environment is the resolved execution environment of one run.
type Environment struct {
	Mode string
	// Sources lists the env files in the order they are probed.
	Sources []string
	// LoadedFile is the source that loaded, empty when none did.
	LoadedFile  string
	Debug       bool
	LogLevel    string
	ShowSecrets bool
	// Attempts records the outcome of every probed env file.
	Attempts []EnvFileAttempt
}

// EnvFileAttempt is the result of loading one env file. Err is nil when the
// file loaded.
type EnvFileAttempt struct {
	Path string
	Err  error
}

// EnvFileForMode maps an execution mode to its env file name.
func EnvFileForMode(mode string) string {
	if mode == ModeProduction {
		return ".env.production"
	}
	return ".env.development"
}

// LoadEnvironment resolves the execution mode, loads the first env file
// found under dir and reads the debug settings. Variables already set in the
// process environment are never overridden. Missing files are not an error.
func LoadEnvironment(dir string) Environment {
	mode := os.Getenv(EnvMode)
	if mode == "" {
		mode = ModeDevelopment
	}

	env := Environment{
		Mode:    mode,
		Sources: []string{EnvFileForMode(mode), genericEnvFile},
	}

	for _, name := range env.Sources {
		path := filepath.Join(dir, name)
		err := godotenv.Load(path)
		env.Attempts = append(env.Attempts, EnvFileAttempt{Path: path, Err: err})
		if err != nil {
			continue
		}
		env.LoadedFile = name
		break
	}

	env.Debug = os.Getenv(EnvDebug) == "true"
	env.ShowSecrets = os.Getenv(EnvShowSecrets) == "true"
	env.LogLevel = os.Getenv(EnvLogLevel)
	if env.LogLevel == "" {
		env.LogLevel = defaultLogLevel
	}

	return env
}

// Log reports the resolved environment at debug level. It is meant to be
// called once the logger honours LOG_LEVEL, which may come from an env file.
func (e Environment) Log(logger *zap.SugaredLogger) {
	for _, attempt := range e.Attempts {
		if attempt.Err != nil {
			logger.Debugw("Env file not loaded", "file", attempt.Path, "error", attempt.Err)
			continue
		}
		logger.Debugw("Env file loaded", "file", attempt.Path)
	}
	logger.Debugw("Environment resolved", "mode", e.Mode, "env_file", e.LoadedFile, "debug", e.Debug)
}
