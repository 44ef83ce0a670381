// Package sutureext adapts the suture supervisor to structured logging.
package sutureext

import (
	"context"
	"log/slog"

	"github.com/thejerf/suture/v4"
)

// NewSupervisor builds a supervisor whose lifecycle events go to the logger.
func NewSupervisor(name string, logger *slog.Logger) *suture.Supervisor {
	return suture.New(name, suture.Spec{
		EventHook: EventHook(logger),
	})
}

// EventHook routes supervisor events to slog at sensible levels.
func EventHook(logger *slog.Logger) suture.EventHook {
	return func(ei suture.Event) {
		switch e := ei.(type) {
		case suture.EventStopTimeout:
			logger.Warn("service failed to terminate in a timely manner",
				slog.String("supervisor", e.SupervisorName), slog.String("service", e.ServiceName))
		case suture.EventServicePanic:
			logger.Error("service panicked",
				slog.String("supervisor", e.SupervisorName), slog.String("service", e.ServiceName),
				slog.String("panic", e.PanicMsg))
			logger.Debug(e.Stacktrace)
		case suture.EventServiceTerminate:
			logger.Error("service failed",
				slog.Any("error", e.Err),
				slog.String("supervisor", e.SupervisorName), slog.String("service", e.ServiceName))
		case suture.EventBackoff:
			logger.Debug("too many service failures, entering backoff",
				slog.String("supervisor", e.SupervisorName))
		case suture.EventResume:
			logger.Debug("exiting backoff", slog.String("supervisor", e.SupervisorName))
		default:
			logger.Warn("unknown supervisor event", "type", int(e.Type()))
		}
	}
}

// ServiceFunc wraps a plain function as a named suture service.
type ServiceFunc struct {
	name string
	fn   func(ctx context.Context) error
}

func NewServiceFunc(name string, fn func(ctx context.Context) error) ServiceFunc {
	return ServiceFunc{name: name, fn: fn}
}

func (s ServiceFunc) String() string { return s.name }

func (s ServiceFunc) Serve(ctx context.Context) error {
	return s.fn(ctx)
}
