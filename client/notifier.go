package client

import "log/slog"

// Notifier показывает пользователю уведомления об исходе операций
// (аналог toast-сообщений)
type Notifier interface {
	Success(title, message string)
	Error(title, message string)
	Warning(title, message string)
}

// slogNotifier пишет уведомления в лог, используется по умолчанию
type slogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier создаёт уведомитель поверх slog
func NewSlogNotifier(logger *slog.Logger) Notifier {
	return &slogNotifier{logger: logger}
}

func (n *slogNotifier) Success(title, message string) {
	n.logger.Info("notification", slog.String("level", "success"), slog.String("title", title), slog.String("message", message))
}

func (n *slogNotifier) Error(title, message string) {
	n.logger.Error("notification", slog.String("level", "error"), slog.String("title", title), slog.String("message", message))
}

func (n *slogNotifier) Warning(title, message string) {
	n.logger.Warn("notification", slog.String("level", "warning"), slog.String("title", title), slog.String("message", message))
}
