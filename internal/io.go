package syspath

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/adrg/xdg"
	"github.com/battyone/sys/internal/except"
)

// LogLevel controls the default logger's verbosity once SetupLogging was called.
var LogLevel = new(slog.LevelVar)

// SetupLogging installs a JSON default logger writing to $LOGS_DIRECTORY, the XDG state
// directory, or standard output, in that order of preference.
func SetupLogging() {
	var errs []error

	fp, ok := os.LookupEnv("LOGS_DIRECTORY")
	if !ok {
		var err error
		fp, err = xdg.StateFile("syspath/log")
		if err != nil {
			errs = append(errs, err)
			fp = "syspath.log"
		}
	}

	var writer io.Writer
	if file, err := os.OpenFile(fp, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		writer = file
	} else {
		errs = append(errs, err)
		writer = os.Stdout
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: LogLevel})
	slog.SetDefault(slog.New(handler))
	if len(errs) > 0 {
		slog.Error("Log setup failed.", except.LogErrAttr(errors.Join(errs...)))
	}
}

const logDataKey = "data"

func dataAttrs(attrs ...slog.Attr) slog.Attr {
	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = any(attr)
	}
	return slog.Group(logDataKey, args...)
}
