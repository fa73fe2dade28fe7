package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetWeatherAPIKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "test_api_key_123")
	assert.Equal(t, "test_api_key_123", GetWeatherAPIKey())

	unsetEnv(t, EnvAPIKey)
	assert.Empty(t, GetWeatherAPIKey())
}

func TestGetWeatherAPIURL(t *testing.T) {
	ReloadConfigForTest()
	assert.Equal(t, "https://api.weatherapi.com/v1/current.json", GetWeatherAPIURL())
}

func TestGetWeatherAPIURL_EnvOverride(t *testing.T) {
	t.Setenv("WEATHERAPI_API_URL", "http://127.0.0.1:9999/v1/current.json")
	ReloadConfigForTest()
	assert.Equal(t, "http://127.0.0.1:9999/v1/current.json", GetWeatherAPIURL())
}

func TestGetWeatherAPILang(t *testing.T) {
	ReloadConfigForTest()
	assert.Equal(t, "es", GetWeatherAPILang())
}

func TestGetHTTPTimeout(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{name: "transport default", value: "0s", want: 0},
		{name: "explicit", value: "10s", want: 10 * time.Second},
		{name: "invalid", value: "soon", want: 0},
		{name: "negative", value: "-5s", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("WEATHERAPI_TIMEOUT", tt.value)
			ReloadConfigForTest()
			assert.Equal(t, tt.want, GetHTTPTimeout())
		})
	}
}

func TestReloadConfigForTest(t *testing.T) {
	// Should not panic or error
	ReloadConfigForTest()
}

func TestGetProjectRoot(t *testing.T) {
	root, err := getProjectRoot()
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "go.mod"))
}

func TestGetProjectRoot_MissingGoMod(t *testing.T) {
	chdirForTest(t, t.TempDir())
	_, err := getProjectRoot()
	assert.Error(t, err)
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{level: "debug", wantDebug: true, wantInfo: true},
		{level: "info", wantDebug: false, wantInfo: true},
		{level: "warn", wantDebug: false, wantInfo: false},
		{level: "verbose", wantDebug: false, wantInfo: true},
		{level: "", wantDebug: false, wantInfo: true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			core := InitLogger(tt.level).Desugar().Core()
			assert.Equal(t, tt.wantDebug, core.Enabled(zap.DebugLevel))
			assert.Equal(t, tt.wantInfo, core.Enabled(zap.InfoLevel))
			assert.Same(t, GetLogger(), GetLogger())
		})
	}
	InitLogger("info")
}

// chdirForTest mirrors testing.T.Chdir (Go 1.24+) for older toolchains:
// it changes the working directory and restores it when the test ends.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			panic("testing: failed to restore working directory: " + err.Error())
		}
	})
}
