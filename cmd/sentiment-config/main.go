package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/sentiment-trading/internal/application"
	"github.com/eugenenazirov/sentiment-trading/internal/config"
	"github.com/eugenenazirov/sentiment-trading/internal/logging"
)

var signalNotify = signal.Notify

// newLogger is swapped in tests.
var newLogger = logging.NewWithLevel

type cli struct {
	configFile     string
	envFile        string
	logLevel       string
	skipProcessEnv bool
	overrides      map[string]string

	showFormat   string
	showValidate bool

	server application.ServerConfig
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "sentiment-config: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	opts := cli{
		overrides: map[string]string{},
		server:    application.DefaultServerConfig(),
	}

	kingpinApp := kingpin.New("sentiment-config", "Loads and audits the sentiment trading configuration")
	kingpinApp.Flag("config", "Path to YAML configuration file").StringVar(&opts.configFile)
	kingpinApp.Flag("env-file", "Path to a .env file").StringVar(&opts.envFile)
	kingpinApp.Flag("set", "Override a setting, KEY=VALUE (repeatable)").StringMapVar(&opts.overrides)
	kingpinApp.Flag("ignore-environment", "Do not read the process environment").BoolVar(&opts.skipProcessEnv)
	kingpinApp.Flag("log-level", "Log level (debug, info, warn, error)").Default("info").StringVar(&opts.logLevel)

	checkCmd := kingpinApp.Command("check", "Load and validate the settings")

	showCmd := kingpinApp.Command("show", "Print the settings with credentials masked")
	showCmd.Flag("format", "Output format").Default("yaml").EnumVar(&opts.showFormat, "yaml", "json")
	showCmd.Flag("validate", "Fail if the settings violate trading or API bounds").BoolVar(&opts.showValidate)

	serveCmd := kingpinApp.Command("serve", "Serve the read-only settings audit API")
	serveCmd.Flag("port", "HTTP port exposed by the audit API").Default(opts.server.Port).StringVar(&opts.server.Port)
	serveCmd.Flag("rate-limit-rps", "Requests per second allowed (set 0 to disable)").
		Default(fmt.Sprint(opts.server.RateLimitRPS)).Float64Var(&opts.server.RateLimitRPS)
	serveCmd.Flag("rate-limit-burst", "Burst capacity for rate limiter (set 0 to disable)").
		Default(fmt.Sprint(opts.server.RateLimitBurst)).IntVar(&opts.server.RateLimitBurst)
	serveCmd.Flag("shutdown-grace", "Graceful shutdown timeout").
		Default(opts.server.ShutdownGracePeriod.String()).DurationVar(&opts.server.ShutdownGracePeriod)
	serveCmd.Flag("request-logging", "Emit access logs").Default("true").BoolVar(&opts.server.EnableRequestLogging)

	command, err := kingpinApp.Parse(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(opts.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	settings, err := loadSettings(opts, logger)
	if err != nil {
		logger.Error("failed to load configuration",
			zap.Error(err),
			zap.String("kind", config.KindName(err)),
		)
		return err
	}

	switch command {
	case checkCmd.FullCommand():
		return check(settings, logger)
	case showCmd.FullCommand():
		return show(settings, opts, stdout)
	case serveCmd.FullCommand():
		return serve(settings, opts.server, logger)
	}
	return fmt.Errorf("unknown command %q", command)
}

func loadSettings(opts cli, logger *zap.Logger) (*config.Settings, error) {
	env, err := config.Snapshot(config.SnapshotOptions{
		ConfigFile:     opts.configFile,
		EnvFile:        opts.envFile,
		SkipProcessEnv: opts.skipProcessEnv,
		Overrides:      opts.overrides,
	})
	if err != nil {
		return nil, err
	}

	for key, value := range opts.overrides {
		if config.IsSecretKey(key) {
			value = config.MaskedValue(value)
		}
		logger.Debug("setting overridden", zap.String("key", key), zap.String("value", value))
	}

	settings, err := config.Load(env)
	if err != nil {
		return nil, err
	}
	application.LogSummary(logger, settings)
	return settings, nil
}

func check(settings *config.Settings, logger *zap.Logger) error {
	if err := settings.Validate(); err != nil {
		logger.Error("settings failed validation",
			zap.Error(err),
			zap.String("kind", config.KindName(err)),
		)
		return err
	}
	logger.Info("settings valid", zap.Stringer("trading_mode", settings.Risk.Mode))
	return nil
}

func show(settings *config.Settings, opts cli, stdout io.Writer) error {
	if opts.showValidate {
		if err := settings.Validate(); err != nil {
			return err
		}
	}

	view := settings.Redacted()
	if opts.showFormat == "json" {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	return enc.Close()
}

func serve(settings *config.Settings, cfg application.ServerConfig, logger *zap.Logger) error {
	app, err := application.New(settings, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if err := app.Start(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	shutdown(app.Server(), cfg.ShutdownGracePeriod, logger)
	return nil
}

func shutdown(server *http.Server, timeout time.Duration, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("forced close failed", zap.Error(closeErr))
		}
	}
}
