package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joshuarp/withdraw-review/internal/shared/config"
)

const defaultServiceName = "withdraw-review"

// NewJSONLogger writes JSON records to stdout. The level follows
// logging.level and is updated whenever the configuration reloads.
func NewJSONLogger(cfg config.ConfigProvider) *slog.Logger {
	service := strings.TrimSpace(cfg.GetString("service.name"))
	if service == "" {
		service = defaultServiceName
	}

	level := new(slog.LevelVar)
	level.Set(parseLevel(cfg.GetString("logging.level")))
	cfg.OnChange(func() {
		level.Set(parseLevel(cfg.GetString("logging.level")))
	})

	return newJSONLogger(os.Stdout, level, service)
}

func newJSONLogger(w io.Writer, level slog.Leveler, service string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, attr.Value.Time().UTC().Format(time.RFC3339))
			}
			return attr
		},
	})

	return slog.New(handler).With("service", service)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
