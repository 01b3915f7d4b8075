package sysfs

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/battyone/sys/internal/except"
)

// procExeLinks lists, per OS, the procfs symbolic link pointing at the running image.
var procExeLinks = map[string]string{
	"android":   "/proc/self/exe",
	"dragonfly": "/proc/curproc/file",
	"illumos":   "/proc/self/path/a.out",
	"linux":     "/proc/self/exe",
	"netbsd":    "/proc/curproc/exe",
	"solaris":   "/proc/self/path/a.out",
}

var (
	goos         = runtime.GOOS
	osExecutable = os.Executable
)

// Executable implements Oracle. It first reads the platform's procfs link, if any, then falls
// back to the runtime's own lookup.
func (o *OSOracle) Executable() (string, error) {
	if link, ok := procExeLinks[goos]; ok {
		target, err := o.ReadSymlink(link)
		if err == nil && target != "" {
			return target, nil
		}
		slog.Debug("Executable link unreadable.", slog.String("link", link), except.LogErrAttr(err))
	}
	if fp, err := osExecutable(); err == nil && fp != "" {
		return fp, nil
	} else if err != nil {
		slog.Debug("Runtime executable lookup failed.", except.LogErrAttr(err))
	}
	return "", errExecutableUnknown
}
