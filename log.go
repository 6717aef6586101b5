package nav

import (
	"log/slog"
	"os"
)

// navLogLevel controls the log level for navigation debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var navLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for navigation.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		navLogLevel.Set(slog.LevelDebug)
	} else {
		navLogLevel.Set(slog.LevelInfo)
	}
}

// navVerbose returns true if navigation debug logging is enabled.
func navVerbose() bool {
	return navLogLevel.Level() <= slog.LevelDebug
}

// defaultLogger is used by contexts created without WithLogger.
var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: navLogLevel}))
