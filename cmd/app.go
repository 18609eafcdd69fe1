package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/misterclayt0n/megin/internal/catalog"
	"github.com/misterclayt0n/megin/internal/config"
	"github.com/misterclayt0n/megin/internal/logging"
	"github.com/misterclayt0n/megin/internal/models"
	"github.com/misterclayt0n/megin/internal/storage"
	"github.com/misterclayt0n/megin/internal/utils"
	"github.com/misterclayt0n/megin/internal/workout"
	"github.com/sirupsen/logrus"
)

// app bundles what a command needs: the loaded store, the storage behind it
// and the log output to release on exit.
type app struct {
	cfg     *config.Config
	logs    io.Closer
	backend storage.Backend
	saver   *storage.AsyncSaver
	store   *workout.Store
}

// openBackend loads the config, sets up logging and opens the storage backend.
// The store is left nil; export and import work on the backend directly.
func openBackend() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("Failed to load config: %w", err)
	}

	logs := logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Log.File,
		LogToStderr:   cfg.Log.Stdout,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
	})

	if err := utils.SetLocation(cfg.Program.Timezone); err != nil {
		logs.Close()
		return nil, fmt.Errorf("Failed to load timezone: %w", err)
	}

	backend, err := storage.Open(cfg.Storage)
	if err != nil {
		logs.Close()
		return nil, fmt.Errorf("Failed to open storage: %w", err)
	}
	return &app{cfg: cfg, logs: logs, backend: backend}, nil
}

func openApp() (*app, error) {
	a, err := openBackend()
	if err != nil {
		return nil, err
	}

	cat := catalog.Default()
	if a.cfg.Program.File != "" {
		cat, err = catalog.Load(a.cfg.Program.File)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("Failed to load program: %w", err)
		}
	}

	log := logrus.WithField("backend", a.cfg.Storage.Backend)
	a.saver = storage.NewAsyncSaver(a.backend, log)
	a.store = workout.NewStore(cat, a.saver, workout.WithLogger(log))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	a.store.Load(ctx)

	return a, nil
}

// Close waits for the last save, then releases the backend and the log file.
func (a *app) Close() {
	if a.saver != nil {
		a.saver.Close()
	}
	if err := a.backend.Close(); err != nil {
		logrus.WithError(err).Warn("Failed to close storage")
	}
	if err := a.logs.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close log file: %v\n", err)
	}
}

// parseDayArg reads a day argument; with no argument it picks today when
// today is a program day.
func parseDayArg(args []string) (models.DayID, error) {
	if len(args) > 0 && args[0] != "" {
		return models.ParseDay(args[0])
	}
	today := strings.ToLower(time.Now().In(utils.Loc).Weekday().String())
	day, err := models.ParseDay(today)
	if err != nil {
		return "", fmt.Errorf("Today is not a program day, pass monday, wednesday or friday")
	}
	return day, nil
}

// resolveExercise accepts an exercise id or its 1-based position in the
// day's active list.
func resolveExercise(store *workout.Store, day models.DayID, arg string) (models.Exercise, error) {
	if idx, err := strconv.Atoi(arg); err == nil {
		active := store.Active(day)
		if idx < 1 || idx > len(active) {
			return models.Exercise{}, fmt.Errorf("Exercise index out of range (1-%d)", len(active))
		}
		return active[idx-1], nil
	}

	ex, ok := store.Lookup(day, arg)
	if !ok {
		return models.Exercise{}, fmt.Errorf("No exercise %q on %s", arg, day)
	}
	return ex, nil
}

// parseSetArg reads a 1-based set number and returns the 0-based index.
func parseSetArg(ex models.Exercise, arg string) (int, error) {
	if !ex.TracksSets() {
		return 0, fmt.Errorf("%s has no sets to track", ex.Name)
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > ex.SetsCount {
		return 0, fmt.Errorf("Invalid set number. Must be between 1 and %d", ex.SetsCount)
	}
	return n - 1, nil
}
