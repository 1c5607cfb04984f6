package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/parkwatch/parkwatch/internal/config"
	"github.com/parkwatch/parkwatch/internal/fetch"
	"github.com/parkwatch/parkwatch/internal/logging"
	"github.com/parkwatch/parkwatch/internal/monitor"
	"github.com/parkwatch/parkwatch/internal/notify"
	"github.com/parkwatch/parkwatch/internal/parser"
	"github.com/parkwatch/parkwatch/internal/storage"
)

const (
	ExitSuccess  = 0
	ExitError    = 1
	ExitNotified = 2
)

var (
	flagConfig  string
	flagDryRun  bool
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parkwatch",
		Short: "Check a parking facility page and mail once when a space opens up",
		Long: `Runs one check of the configured parking facility page.
Designed to be invoked by cron or a systemd timer; each run fetches the
page, compares the parsed vacancy state against the previous run, and
sends a single email on the transition from full to vacant.`,
		RunE:         runCheck,
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "parkwatch.yaml", "Path to the YAML config file")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the alert instead of sending mail")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging on the console")

	return cmd
}

// runCheck is the main command logic
func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	if flagVerbose {
		level = zapcore.DebugLevel
	}

	log, err := logging.New(cfg.Log.Dir, level)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	store, err := storage.New(cfg.StateFile)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	var n notify.Notifier
	if flagDryRun {
		n = notify.NewDryRun(os.Stdout)
	} else {
		n, err = notify.NewMailer(
			cfg.SMTP.Host, cfg.SMTP.Port,
			cfg.SMTP.Username, cfg.SMTP.Password,
			cfg.SMTP.From, cfg.SMTP.To,
		)
		if err != nil {
			return fmt.Errorf("initializing mailer: %w", err)
		}
	}

	cycle := monitor.New(cfg.URL, fetch.New(), parser.New(cfg.DumpFile, log), store, n, log)

	decision, err := cycle.Run(cmd.Context())
	_ = log.Sync()
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	// Exit code signals the outcome to the scheduler.
	if decision.Send {
		os.Exit(ExitNotified)
	}
	os.Exit(ExitSuccess)
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
