// Helpers shared by the btxt commands.
package cliutil

import "io"
import "log/slog"

import "github.com/pggk/btxt"

// Creates a text logger writing to w and installs it as the btxt
// logger. Debug records are only included when verbose is set.
func SetupLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose { level = slog.LevelDebug }
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	btxt.SetLogger(logger)
	return logger
}

// Loads settings from the given INI file and section, or returns the
// defaults for the given size when path is empty. A positive size
// always overrides the size from the file.
func LoadSettings(path, section string, size int) (btxt.Settings, error) {
	settings := btxt.DefaultSettings()
	if path != "" {
		var err error
		settings, err = btxt.LoadSettings(path, section)
		if err != nil { return settings, err }
	}
	if size > 0 { settings.Style.Size = size }
	return settings, nil
}
