package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fakhrymubarak/weather-cli/internal/config"
	"github.com/fakhrymubarak/weather-cli/internal/model"
	"github.com/fakhrymubarak/weather-cli/internal/repository"
	"github.com/fakhrymubarak/weather-cli/internal/service"
)

type WeatherHandler struct {
	WeatherService service.WeatherServiceInterface
	Env            config.Environment
}

func NewWeatherHandler(env config.Environment, svc ...service.WeatherServiceInterface) *WeatherHandler {
	var weatherService service.WeatherServiceInterface
	if len(svc) > 0 && svc[0] != nil {
		weatherService = svc[0]
	} else {
		weatherService = service.NewWeatherService()
	}
	return &WeatherHandler{
		WeatherService: weatherService,
		Env:            env,
	}
}

// Handle runs one interactive lookup: it prints the header, reads a city
// from in, fetches its weather and renders the result to out.
//
// Lookup failures, including a request cut short by cancelling ctx, are
// reported on out as a single "Error:" line and Handle returns nil. A
// cancellation while waiting for input ends the run quietly. A *FatalError
// is returned when the input cannot be read or no API key is configured.
func (h *WeatherHandler) Handle(ctx context.Context, in io.Reader, out io.Writer) error {
	h.writeHeader(out)

	city, err := readCity(ctx, in)
	if err != nil {
		if ctx.Err() != nil {
			config.GetLogger().Debugw("Interrupted while waiting for input")
			return nil
		}
		return &FatalError{Message: "Error al leer la entrada", Err: err}
	}

	weather, err := h.WeatherService.GetWeather(ctx, city)
	if err != nil {
		if errors.Is(err, repository.ErrAPIKeyMissing) {
			return &FatalError{
				Message: fmt.Sprintf("No se encontró la variable %s en el archivo .env", config.EnvAPIKey),
				Err:     err,
			}
		}
		config.GetLogger().Debugw("Reporting lookup failure", "error", err)
		fmt.Fprintf(out, "Error: %s\n", describe(err))
		return nil
	}

	Render(out, weather)
	return nil
}

func (h *WeatherHandler) writeHeader(out io.Writer) {
	fmt.Fprintf(out, "Modo de ejecución: %s\n", h.Env.Mode)
	if h.Env.Debug {
		fmt.Fprintln(out, "Modo de depuración activado")
		fmt.Fprintf(out, "Nivel de log: %s\n", h.Env.LogLevel)
	}
	fmt.Fprintln(out, "Aplicación de Clima")
	fmt.Fprintln(out, "-----------------")
	fmt.Fprintln(out, "Ingresa el nombre de una ciudad:")
}

// readCity reads one line and trims it. A last line without a newline is
// accepted; a stream closed before any byte is a read failure. The wait
// ends early when ctx is cancelled.
func readCity(ctx context.Context, in io.Reader) (string, error) {
	type readResult struct {
		line string
		err  error
	}
	done := make(chan readResult, 1)
	go func() {
		line, err := bufio.NewReader(in).ReadString('\n')
		done <- readResult{line: line, err: err}
	}()

	var res readResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res = <-done:
	}

	if res.err != nil {
		if !errors.Is(res.err, io.EOF) {
			return "", fmt.Errorf("%w: %w", ErrInputRead, res.err)
		}
		if res.line == "" {
			return "", fmt.Errorf("%w: input closed", ErrInputRead)
		}
	}
	return strings.TrimSpace(res.line), nil
}

// Render prints the labelled weather summary.
func Render(out io.Writer, weather *model.WeatherResult) {
	fmt.Fprintf(out, "\nClima actual en %s:\n", weather.Location.Name)
	fmt.Fprintf(out, "País: %s\n", weather.Location.Country)
	fmt.Fprintf(out, "Región: %s\n", weather.Location.Region)
	fmt.Fprintf(out, "Temperatura: %.1f°C\n", weather.Current.TempC)
	fmt.Fprintf(out, "Sensación térmica: %.1f°C\n", weather.Current.FeelsLikeC)
	fmt.Fprintf(out, "Humedad: %d%%\n", weather.Current.Humidity)
	fmt.Fprintf(out, "Condición: %s\n", weather.Current.Condition.Text)
}
