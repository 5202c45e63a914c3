package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"jailfs/internal/configuration"
	"jailfs/internal/jail"
	"jailfs/internal/syscalls"
	"jailfs/internal/treeops"
	"jailfs/internal/ui"
)

const (
	stackTraceBufMax = 1 << 24

	terminalLogHandler = "terminal"
	uiLogHandler       = "ui"

	readyPollInterval = 10 * time.Millisecond
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	rootPath  = flag.String("root", "", "confinement root (defaults to the configured or current directory)")
	envFile   = flag.String("env", "", "read configuration from this environment file")
	uiEnabled = flag.Bool("ui", true, "enable the UI")
)

func newTerminalLogHandler() slog.Handler {
	return tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	})
}

func newUILogHandler(w io.Writer) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
		NoColor:    true,
	})
}

func setupLogging(logManager *SlogManager) {
	logManager.AddHandler(terminalLogHandler, newTerminalLogHandler())
	slog.SetDefault(slog.New(logManager))
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()

	sigChan2 := make(chan os.Signal, 1)
	signal.Notify(sigChan2, syscall.SIGUSR1)
	go func() {
		for range sigChan2 {
			buf := make([]byte, stackTraceBufMax)
			stacklen := runtime.Stack(buf, true)
			os.Stderr.Write(buf[:stacklen])
		}
	}()
}

func startApp(ctx context.Context, wg *sync.WaitGroup, app *App) {
	defer wg.Done()

	if app.uiHandler != nil {
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			if app.uiHandler.Ready.Load() || app.uiHandler.Failed.Load() {
				break
			}
			time.Sleep(readyPollInterval)
		}
	}

	if err := app.Launch(ctx); err != nil {
		ExitCode = 1
	}
}

func startUI(wg *sync.WaitGroup, logManager *SlogManager, app *App) {
	defer wg.Done()

	if app.uiHandler != nil {
		// The swap must not leave a gap with no attached handler.
		logManager.AddHandler(uiLogHandler, newUILogHandler(app.uiHandler.LogWriter))
		logManager.RemoveHandler(terminalLogHandler)

		defer func() {
			logManager.AddHandler(terminalLogHandler, newTerminalLogHandler())
			logManager.RemoveHandler(uiLogHandler)
		}()

		if err := app.LaunchUI(); err != nil {
			slog.Error("UI failure: falling back to terminal.", "err", err)
		}
	}
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flag.Parse()

	logManager := NewSlogManager()
	setupLogging(logManager)

	setupSignalHandlers(cancel)

	osProvider := &syscalls.RealOS{}
	unixProvider := &syscalls.RealUnix{}

	var config *configuration.AppConfiguration
	if *envFile != "" {
		configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

		var err error
		if config, err = configHandler.EstablishConfiguration(*envFile); err != nil {
			slog.Error("Failed to read the configuration file.",
				"err", err,
			)
			ExitCode = 1

			return
		}
	}

	defaultRoot := jail.NewDefaultRoot(osProvider)

	switch {
	case *rootPath != "":
		if err := defaultRoot.Set(*rootPath); err != nil {
			slog.Error("Failed to establish the confinement root.", "err", err)
			ExitCode = 1

			return
		}
	case config != nil && config.RootPath != "":
		if err := defaultRoot.Set(config.RootPath); err != nil {
			slog.Error("Failed to establish the confinement root.", "err", err)
			ExitCode = 1

			return
		}
	default:
		if err := defaultRoot.Set("."); err != nil {
			slog.Error("Failed to establish the confinement root.", "err", err)
			ExitCode = 1

			return
		}
	}

	treeHandler := treeops.NewHandler(osProvider, unixProvider)

	j, err := jail.New(defaultRoot.Get(), osProvider, unixProvider, treeHandler)
	if err != nil {
		slog.Error("Failed to establish the jail.",
			"err", err,
		)
		ExitCode = 1

		return
	}

	if config != nil {
		j.SetPermissionMask(config.Umask)
	}

	slog.Info("Jail established.",
		"root", j.Root(),
		"version", Version,
	)

	interpreter := ui.NewInterpreter(j, osProvider)

	var uiHandler *ui.Handler
	if uiEnabled != nil && *uiEnabled {
		uiHandler = ui.NewHandler(ctx, cancel, interpreter)
	}

	var wg sync.WaitGroup
	app := NewApp(interpreter, uiHandler)

	wg.Add(1)
	go startUI(&wg, logManager, app)

	wg.Add(1)
	go startApp(ctx, &wg, app)

	wg.Wait()
}
