package application

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/eugenenazirov/sentiment-trading/internal/api"
	"github.com/eugenenazirov/sentiment-trading/internal/config"
)

const defaultPort = "8080"

// ServerConfig holds the settings for the audit HTTP server.
type ServerConfig struct {
	Port                 string
	ShutdownGracePeriod  time.Duration
	ReadHeaderTimeout    time.Duration
	WriteTimeout         time.Duration
	IdleTimeout          time.Duration
	EnableRequestLogging bool
	RateLimitRPS         float64
	RateLimitBurst       int
}

// DefaultServerConfig returns a ServerConfig with default values.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:                 defaultPort,
		ShutdownGracePeriod:  10 * time.Second,
		ReadHeaderTimeout:    5 * time.Second,
		WriteTimeout:         15 * time.Second,
		IdleTimeout:          60 * time.Second,
		EnableRequestLogging: true,
		RateLimitRPS:         5,
		RateLimitBurst:       10,
	}
}

// App encapsulates the application dependencies and HTTP server.
type App struct {
	settings *config.Settings
	handler  *api.Handler
	router   http.Handler
	logger   *zap.Logger
	server   *http.Server
}

// New wires the audit API around already loaded settings.
func New(settings *config.Settings, cfg ServerConfig, logger *zap.Logger) (*App, error) {
	if settings == nil {
		return nil, errors.New("settings are required")
	}

	handler := api.NewHandler(settings)
	router := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	return &App{
		settings: settings,
		handler:  handler,
		router:   router,
		logger:   logger,
		server:   NewServer(cfg, router),
	}, nil
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg ServerConfig, handler http.Handler) *http.Server {
	addr := cfg.Port
	if addr == "" {
		addr = defaultPort
	}
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// LogSummary writes a one-line structured summary of the settings. Credentials are never logged.
func LogSummary(logger *zap.Logger, settings *config.Settings) {
	sources := make([]string, len(settings.Sources))
	for i, source := range settings.Sources {
		sources[i] = string(source)
	}

	logger.Info("settings loaded",
		zap.String("firebase_project", settings.Storage.ProjectID),
		zap.String("firebase_collection", settings.Storage.CollectionName),
		zap.Stringer("trading_mode", settings.Risk.Mode),
		zap.String("max_position_size", settings.Risk.MaxPositionSize.String()),
		zap.Float64("stop_loss_fraction", settings.Risk.StopLossFraction),
		zap.Float64("take_profit_fraction", settings.Risk.TakeProfitFraction),
		zap.Float64("sentiment_threshold", settings.Risk.SentimentThreshold),
		zap.Duration("cooloff", settings.Risk.CooloffPeriod()),
		zap.Bool("twitter_access", settings.API.HasTwitterAccess()),
		zap.Bool("news_access", settings.API.HasNewsAccess()),
		zap.Int("rate_limit_per_minute", settings.API.RateLimitPerMinute),
		zap.Duration("request_timeout", settings.API.RequestTimeout()),
		zap.Strings("sentiment_sources", sources),
	)

	for _, source := range []struct {
		name    config.SentimentSource
		enabled bool
	}{
		{config.SourceTwitter, settings.API.HasTwitterAccess()},
		{config.SourceNews, settings.API.HasNewsAccess()},
	} {
		if settings.SourceEnabled(source.name) && !source.enabled {
			logger.Warn("sentiment source enabled without credentials", zap.String("source", string(source.name)))
		}
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("settings audit server listening",
			zap.String("addr", a.server.Addr),
			zap.Stringer("trading_mode", a.settings.Risk.Mode),
		)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}

// Settings returns the settings served by the application.
func (a *App) Settings() *config.Settings {
	return a.settings
}
