package logger

import (
	"log/slog"

	"pixelity_site/internal/app/port"
)

// slogAdapter реализует интерфейс port.Logger.
// Без собственного логгера пишет через глобальные функции пакета.
type slogAdapter struct {
	l *slog.Logger
}

// NewSlogAdapter создает адаптер поверх глобального логгера.
func NewSlogAdapter() port.Logger {
	return &slogAdapter{}
}

// NewAdapter wraps a specific slog logger, e.g. one built in tests.
func NewAdapter(l *slog.Logger) port.Logger {
	return &slogAdapter{l: l}
}

func (a *slogAdapter) logger() *slog.Logger {
	if a.l != nil {
		return a.l
	}
	return current()
}

// Info логирует информационное сообщение.
func (a *slogAdapter) Info(msg string, args ...any) {
	a.logger().Info(msg, args...)
}

// Debug логирует отладочное сообщение.
func (a *slogAdapter) Debug(msg string, args ...any) {
	a.logger().Debug(msg, args...)
}

// Warn логирует предупреждающее сообщение.
func (a *slogAdapter) Warn(msg string, args ...any) {
	a.logger().Warn(msg, args...)
}

// Error логирует сообщение об ошибке.
func (a *slogAdapter) Error(msg string, args ...any) {
	a.logger().Error(msg, args...)
}

// With returns an adapter bound to a child logger carrying args.
func (a *slogAdapter) With(args ...any) port.Logger {
	return &slogAdapter{l: a.logger().With(args...)}
}

// Nop returns a logger that discards everything.
func Nop() port.Logger {
	return &slogAdapter{l: slog.New(slog.DiscardHandler)}
}
