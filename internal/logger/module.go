package logger

import (
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// Module wires the slog logger and routes fx lifecycle events through it.
var Module = fx.Options(
	fx.Provide(New),
	fx.WithLogger(fxLogger),
)

// fxLogger keeps container events at debug so they stay quiet by default.
func fxLogger(l *slog.Logger) fxevent.Logger {
	fl := &fxevent.SlogLogger{Logger: l}
	fl.UseLogLevel(slog.LevelDebug)
	return fl
}
