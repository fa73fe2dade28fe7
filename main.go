package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fakhrymubarak/weather-cli/internal/config"
	"github.com/fakhrymubarak/weather-cli/internal/handler"
	"github.com/fakhrymubarak/weather-cli/internal/repository"
	"github.com/fakhrymubarak/weather-cli/internal/service"
)

func main() {
	ctx, mainCtxStop := context.WithCancel(context.Background())
	defer mainCtxStop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	handleSignals(ctx, mainCtxStop, sig, func() {
		fmt.Fprintln(os.Stdout, "\nAplicación interrumpida por el usuario")
	})

	code := run(ctx, os.Stdin, os.Stdout, os.Stderr)
	mainCtxStop()
	os.Exit(code)
}

func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) int {
	env := config.LoadEnvironment(".")
	logger := config.InitLogger(env.LogLevel)
	defer func() {
		_ = logger.Sync()
	}()
	env.Log(logger)

	var opts []repository.Option
	if env.Debug {
		opts = append(opts, repository.WithDebugOutput(stdout, env.ShowSecrets))
	}
	weatherService := service.NewWeatherService(repository.NewWeatherRepository(opts...))
	weatherHandler := handler.NewWeatherHandler(env, weatherService)

	if err := weatherHandler.Handle(ctx, stdin, stdout); err != nil {
		var fatal *handler.FatalError
		if errors.As(err, &fatal) {
			fmt.Fprintln(stderr, fatal.Message)
			logger.Errorw(fatal.Message, "error", fatal.Err)
		} else {
			fmt.Fprintln(stderr, err)
			logger.Errorw("Unexpected failure", "error", err)
		}
		return 1
	}
	return 0
}

// handleSignals runs callback and cancels the run context on the first
// signal received from sig. The watcher exits once ctx is done.
func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, sig <-chan os.Signal, callback func()) {
	go func() {
		select {
		case <-sig:
			callback()
			cancelCtx()
		case <-ctx.Done():
		}
	}()
}
