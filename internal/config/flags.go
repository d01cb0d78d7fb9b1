// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
)

// Flags holds values parsed from command-line flags.
// Pointers distinguish unset flags from zero-value flags.
type Flags struct {
	ConfigFilePath *string
	LogLevel       *string
	LogFilePath    *string
	DisplayBase    *int
	TabWidth       *int
	SystemClip     *bool
	Verbose        *bool
}

// DefineFlags sets up the command-line flags.
func (f *Flags) DefineFlags() {
	f.ConfigFilePath = flag.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", ConfigDirName, DefaultConfigFileName))
	f.LogLevel = flag.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = flag.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.DisplayBase = flag.Int("display-base", -1, "Offset added to the internal caret for display (-1 = unset) - Overrides config file")
	f.TabWidth = flag.Int("tabwidth", 0, "Visual width of a tab in projected frames - Overrides config file")
	f.SystemClip = flag.Bool("system-clipboard", false, "Mirror copy-selection to the OS clipboard")
	f.Verbose = flag.Bool("verbose", false, "Enable per-action diagnostic output")
}

// ParseFlags parses the defined flags and returns the remaining non-flag
// arguments (the script path).
func (f *Flags) ParseFlags() []string {
	f.DefineFlags()
	flag.Parse()
	return flag.Args()
}

// ApplyOverrides updates the Config with values from flags that were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			cfg.Logger.LogLevel = *f.LogLevel
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "display-base":
			cfg.Engine.DisplayBase = *f.DisplayBase
		case "tabwidth":
			cfg.Engine.TabWidth = *f.TabWidth
		case "system-clipboard":
			cfg.Engine.SystemClipboard = *f.SystemClip
		}
	})
}
