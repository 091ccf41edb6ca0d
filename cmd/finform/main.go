package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/mmynk/finform/internal/config"
	"github.com/mmynk/finform/internal/form"
	"github.com/mmynk/finform/internal/ledger"
	"github.com/mmynk/finform/internal/metrics"
	"github.com/mmynk/finform/internal/middleware"
	"github.com/mmynk/finform/internal/service"
	"github.com/mmynk/finform/internal/storage/logstore"
	"github.com/mmynk/finform/internal/tui"
	"github.com/mmynk/finform/pkg/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := pflag.StringP("config", "c", "", "path to a finform config file (default: ./finform.yaml or ~/.config/finform/finform.yaml)")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	// The terminal belongs to the form, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to open log file:", err)
		return 1
	}
	defer logFile.Close()
	logging.SetupWithLevel(logFile, logging.ParseLevel(cfg.LogLevel), true)

	m := metrics.New()
	svc := service.NewEntryService(logstore.New(nil), m)

	f := form.New(form.Options{
		DefaultType: cfg.TransactionType(),
		Categories:  cfg.Categories,
		OnMutation: func(side ledger.Side, op ledger.Op, _ *ledger.Ledger) {
			m.ObserveMutation(side.String(), string(op))
		},
	})

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	slog.Info("Starting finform",
		"default_type", cfg.DefaultType,
		"categories", len(cfg.Categories),
		"log_level", cfg.LogLevel,
	)

	model := tui.NewModel(context.Background(), f, svc, cfg.CurrencySymbol)
	code := 0
	if _, err := tea.NewProgram(middleware.Logged(model), opts...).Run(); err != nil {
		slog.Error("Terminal program failed", "error", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		code = 1
	}

	if err := m.WriteTextfile(cfg.MetricsTextfile); err != nil {
		slog.Error("Failed to write metrics", "path", cfg.MetricsTextfile, "error", err)
	} else if cfg.MetricsTextfile != "" {
		slog.Info("Metrics written", "path", cfg.MetricsTextfile)
	}

	slog.Info("Session ended")
	return code
}
