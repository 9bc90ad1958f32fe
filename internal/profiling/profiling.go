package profiling

import (
	"log/slog"

	"quirknotes/internal/config"

	"github.com/grafana/pyroscope-go"
)

const appName = "quirknotes.server"

// Start begins continuous profiling when PYROSCOPE_SERVER_ADDRESS is set.
// The returned stop func is always safe to call.
func Start(cfg config.Config, log *slog.Logger) (func() error, error) {
	if cfg.PyroscopeServerAddress == "" {
		log.Debug("profiling disabled")
		return func() error { return nil }, nil
	}

	p, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: appName,
		ServerAddress:   cfg.PyroscopeServerAddress,
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
	})
	if err != nil {
		return func() error { return nil }, err
	}

	log.Info("profiling enabled", "server", cfg.PyroscopeServerAddress)
	return p.Stop, nil
}
