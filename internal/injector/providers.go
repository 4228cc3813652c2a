package injector

import (
	"fmt"

	"github.com/google/wire"
	"github.com/zeusync/voxkit/internal/config"
	"github.com/zeusync/voxkit/internal/core/events/bus"
	"github.com/zeusync/voxkit/internal/core/observability/log"
	"github.com/zeusync/voxkit/internal/trace"
)

// ConfigPath is the YAML config file to load; empty means defaults plus environment.
type ConfigPath string

// App holds everything cmd/voxtrace needs.
type App struct {
	Config config.Config
	Logger *log.Logger
	Events bus.EventBus
	Runner *trace.Runner
}

var ProviderSet = wire.NewSet(
	ProvideConfig,
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	bus.New,
	trace.OptionsFromConfig,
	ProvideRunner,
)

func ProvideConfig(path ConfigPath) (config.Config, error) {
	return config.Load(string(path))
}

func ProvideLogger(cfg config.Config) (*log.Logger, func(), error) {
	logger, err := log.NewWithConfig(cfg.LoggerConfig())
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func ProvideRunner(opts trace.Options, logger log.Log, events bus.EventBus) (*trace.Runner, func()) {
	runner := trace.NewRunner(opts, logger, events)
	return runner, runner.Close
}
