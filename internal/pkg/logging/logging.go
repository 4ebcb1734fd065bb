package logging

import (
	"log/slog"
	"os"
)

// Init builds the process logger: JSON in prod, text everywhere else.
// The returned logger is also installed as the slog default.
func Init(env string) *slog.Logger {
	var handler slog.Handler
	if env == "prod" {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		handler = slog.NewTextHandler(os.Stdout, nil)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
