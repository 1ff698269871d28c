package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arnavsurve/tsconfig-init/pkg/log"
	"github.com/arnavsurve/tsconfig-init/pkg/log/sinks"
	"github.com/arnavsurve/tsconfig-init/pkg/types"
	"github.com/google/uuid"
)

// newLogger routes logs to stderr and, when logDir is set, to a per-run JSON file.
func newLogger(env *Env, verbose bool, logDir string) (types.Logger, *log.Router, string, error) {
	runID := uuid.New().String()

	minLevel := types.WarnLevel
	if verbose {
		minLevel = types.DebugLevel
	}

	logRouter := log.NewRouter()
	logRouter.AddSink(sinks.NewConsoleSink(env.Stderr, minLevel))

	var logFilePath string
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return nil, nil, "", fmt.Errorf("creating logs directory %q: %w", logDir, err)
		}
		logFilePath = filepath.Join(logDir, fmt.Sprintf("%s.json", runID))
		fileSink, err := sinks.NewFileSink(logFilePath)
		if err != nil {
			return nil, nil, "", fmt.Errorf("creating file log sink: %w", err)
		}
		logRouter.AddSink(fileSink)
	}

	logger := log.New(logRouter).With().Str("run_id", runID).Logger()
	if logFilePath != "" {
		logger.Debug().Msgf("Logs will be saved to %q", logFilePath)
	}

	return logger, logRouter, runID, nil
}
