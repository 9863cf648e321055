package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/actual-software/sms-bridge/internal/config"
	"github.com/actual-software/sms-bridge/internal/logging"
	"github.com/actual-software/sms-bridge/internal/metrics"
	"github.com/actual-software/sms-bridge/pkg/clickatell"
)

const metricsReadHeaderTimeout = 5 * time.Second

var (
	Version   = "v0.7.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sms-bridge",
		Short: "SMS Bridge - Clickatell HTTP gateway client",
		Long: `SMS Bridge sends messages through the Clickatell HTTP SMS gateway
and queries message and account status from the command line.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		versionCmd(),
		authCmd(),
		pingCmd(),
		balanceCmd(),
		sendCmd(),
		statusCmd(),
		chargeCmd(),
		deleteCmd(),
		coverageCmd(),
		tokenPayCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sms-bridge %s (built %s, commit %s)\n", Version, BuildTime, GitCommit)
		},
	}
}

// app holds the wired components shared by every subcommand.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *metrics.Registry
	client  *clickatell.Client
}

// setup loads configuration, builds the logger and metrics registry, and
// constructs the gateway client. Called by each subcommand's RunE.
func setup(cmd *cobra.Command) (*app, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}

	logger, err := buildLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}

	var registry *metrics.Registry
	if cfg.Metrics.Enabled {
		registry = metrics.NewRegistry()
		startMetricsServer(cfg.Metrics.Listen, registry, logger)
	}

	client, err := clickatell.New(clickatell.Options{
		Scheme:   cfg.Gateway.Scheme,
		Hostname: cfg.Gateway.Hostname,
		Port:     cfg.Gateway.Port,
		Username: cfg.Gateway.Username,
		Password: cfg.Gateway.Password,
		APIID:    cfg.Gateway.APIID,
		Timeout:  cfg.Gateway.Timeout,
	}, logger, registry)
	if err != nil {
		return nil, err
	}

	if cfg.Gateway.SessionID != "" {
		client.SetSessionID(cfg.Gateway.SessionID)
	}

	client.SetDeliveryAck(cfg.Gateway.DeliveryAck)

	return &app{
		cfg:     cfg,
		logger:  logger,
		metrics: registry,
		client:  client,
	}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}

func buildLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	return logger.With(
		zap.String(logging.FieldService, logging.ServiceBridge),
		zap.String(logging.FieldVersion, Version),
	), nil
}

// startMetricsServer serves the Prometheus registry in the background for
// long-running invocations. Errors are logged, not fatal; a CLI run without
// a metrics listener still does its job.
func startMetricsServer(listen string, registry *metrics.Registry, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry.Prometheus(), promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              listen,
		Handler:           mux,
		ReadHeaderTimeout: metricsReadHeaderTimeout,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Warn("metrics server stopped", zap.Error(err))
		}
	}()
}
