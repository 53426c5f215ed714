package main

import (
	"flag"
	"fmt"
	"log/slog"
	"minipy/internal/evaluator"
	"minipy/internal/native"
	"minipy/internal/object"
	"minipy/internal/util"
	"os"
	"strings"
)

var (
	// Version is stamped at build time.
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"

	help    bool
	version bool
	// logging
	logLevel string
	logFile  string
	// config vars
	configPath string
)

func init() {
	flag.BoolVar(&help, "help", false, "Display help information and exit")
	flag.BoolVar(&help, "h", false, "Display help information and exit")
	flag.BoolVar(&version, "version", false, "Display version information and exit")
	flag.BoolVar(&version, "v", false, "Display version information and exit")
	// runner config
	flag.StringVar(&configPath, "config", "", "Path to a TOML configuration file")
	// log config
	flag.StringVar(&logLevel, "log-level", "NONE", "Log level: debug, info, warn, error, none")
	flag.StringVar(&logFile, "log-file", "", "Log file path (if not set, logs to stderr)")
}

func main() {
	flag.Parse()

	cfg := util.Configuration{
		Version:   Version,
		BuildDate: BuildDate,
		Commit:    Commit,
	}
	if configPath != "" {
		loaded, err := util.LoadConfiguration(configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		loaded.Version = Version
		loaded.BuildDate = BuildDate
		loaded.Commit = Commit
		cfg = loaded
	}
	if cfg.LogLevel != "" && logLevel == "NONE" {
		logLevel = cfg.LogLevel
	}

	loggerOptions := &slog.HandlerOptions{
		AddSource: false,
		Level:     logLevelFromString(logLevel),
	}
	defaultLogger := slog.New(slog.NewJSONHandler(configureLogWriter(), loggerOptions))
	slog.SetDefault(defaultLogger)

	if version {
		fmt.Printf("minipy %s (%s, %s)\n", Version, Commit, BuildDate)
		os.Exit(0)
	}
	if help {
		flag.Usage()
		os.Exit(0)
	}

	registry := native.NewRegistry()
	if err := native.RegisterStandard(registry); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if cfg.DB.Driver != "" {
		if err := native.RegisterDB(registry); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	failed := 0
	for _, fx := range fixtures() {
		e := evaluator.New(registry)
		result := e.Eval(fx.program)
		if err, ok := result.(*object.Error); ok {
			failed++
			fmt.Printf("FAIL %s: %s\n", fx.name, err.Inspect())
			continue
		}
		fmt.Printf("ok   %s\n", fx.name)
	}

	if failed > 0 {
		fmt.Printf("%d fixture(s) failed\n", failed)
		os.Exit(1)
	}
}

func logLevelFromString(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		// effectively disables logging
		return slog.Level(127)
	}
}

func configureLogWriter() *os.File {
	if logFile != "" {
		fh, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			return fh
		}
		fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", logFile, err)
	}
	return os.Stderr
}
