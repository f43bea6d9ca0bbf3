// Command skypoint-mount is the interactive mount control console.
//
// It connects to a property server (directly or via mDNS discovery),
// binds a telescope mount device, and executes pointing commands typed
// at the prompt.
//
// Usage:
//
//	skypoint-mount [flags]
//
// Flags:
//
//	-config string       Configuration file path (YAML)
//	-address string      Property server address, or "auto" for discovery
//	-device string       Mount device name, or "auto"
//	-log-level string    Log level: debug, info, warn, error
//	-session-log string  CBOR session capture file
//
// Examples:
//
//	# Discover the server and mount on the local network
//	skypoint-mount
//
//	# Connect to a known server with a session capture
//	skypoint-mount -address 192.168.1.40:7624 -session-log session.cbor
package main

import (
	"context"
	"errors"
	"flag"
	stdlog "log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skypoint-project/skypoint-go/cmd/skypoint-mount/interactive"
	"github.com/skypoint-project/skypoint-go/internal/config"
	"github.com/skypoint-project/skypoint-go/pkg/driver"
	"github.com/skypoint-project/skypoint-go/pkg/log"
	"github.com/skypoint-project/skypoint-go/pkg/mount"
)

var flags struct {
	configFile string
	address    string
	device     string
	logLevel   string
	sessionLog string
}

func init() {
	flag.StringVar(&flags.configFile, "config", "", "Configuration file path")
	flag.StringVar(&flags.address, "address", "", "Property server address, or \"auto\" for discovery")
	flag.StringVar(&flags.device, "device", "", "Mount device name, or \"auto\"")
	flag.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.StringVar(&flags.sessionLog, "session-log", "", "CBOR session capture file")
}

func main() {
	flag.Parse()

	cfg, err := config.Load(flags.configFile)
	if err != nil {
		stdlog.Fatalf("Invalid configuration: %v", err)
	}
	applyFlagOverrides(&cfg)

	slogger := setupLogging(cfg.LogLevel)
	slog.SetDefault(slogger)

	protoLogger, closeLog, err := setupSessionLog(cfg.SessionLog, slogger)
	if err != nil {
		stdlog.Fatalf("Failed to open session log: %v", err)
	}
	defer closeLog()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	mnt := driver.New(driver.Config{
		Address: cfg.Server.Address,
		Device:  cfg.Server.Device,
		Logger:  protoLogger,
		Slog:    slogger,
	})

	slogger.Info("connecting to mount", "address", cfg.Server.Address, "device", cfg.Server.Device)
	if err := mnt.Init(ctx, cfg.MountSite(), time.Now()); err != nil {
		stdlog.Fatalf("Failed to initialize mount: %v", err)
	}
	defer func() {
		if err := mnt.Disconnect(); err != nil {
			slogger.Warn("disconnect failed", "error", err)
		}
	}()

	commands := make(chan mount.Command)
	session, err := interactive.New(commands, mnt)
	if err != nil {
		stdlog.Fatalf("Failed to start interactive session: %v", err)
	}

	ctrl, err := mount.NewController(mount.Config{
		Adapter:  mnt,
		Commands: commands,
		Console:  mount.NewWriterConsole(session.Stdout()),
		Policy:   cfg.RetryPolicy(),
		StepSize: cfg.StepSizeDeg,
		Logger:   protoLogger,
	})
	if err != nil {
		stdlog.Fatalf("Failed to create controller: %v", err)
	}

	go session.Run(ctx)

	err = ctrl.Run(ctx)
	cancel()
	session.Close()

	switch {
	case err == nil:
		slogger.Info("controller finished")
	case errors.Is(err, context.Canceled):
		slogger.Info("interrupted")
	case errors.Is(err, mount.ErrSpiralSearchNotImplemented):
		stdlog.Fatalf("Fatal: %v", err)
	default:
		stdlog.Fatalf("Controller failed: %v", err)
	}
}

// applyFlagOverrides lets command-line flags win over the config file.
func applyFlagOverrides(cfg *config.Config) {
	if flags.address != "" {
		cfg.Server.Address = flags.address
	}
	if flags.device != "" {
		cfg.Server.Device = flags.device
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if flags.sessionLog != "" {
		cfg.SessionLog = flags.sessionLog
	}
}

func setupLogging(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// setupSessionLog builds the protocol event logger: a CBOR file capture
// when configured, always mirrored to slog at debug level.
func setupSessionLog(path string, slogger *slog.Logger) (log.Logger, func(), error) {
	adapter := log.NewSlogAdapter(slogger)
	if path == "" {
		return adapter, func() {}, nil
	}

	fileLogger, err := log.NewFileLogger(path)
	if err != nil {
		return nil, nil, err
	}
	closeLog := func() {
		if err := fileLogger.Close(); err != nil {
			slogger.Warn("failed to close session log", "error", err)
		}
	}
	return log.NewMultiLogger(fileLogger, adapter), closeLog, nil
}
