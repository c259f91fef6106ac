package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/adenw/flixctl/config"
	"github.com/adenw/flixctl/myflix"
	"github.com/adenw/flixctl/session"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	store   *session.Store
	client  *myflix.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "flixctl",
	Short: "A command-line client for the myFlix movie catalog",
	Long: `flixctl talks to a myFlix movie-catalog API: browse movies, look up
directors and genres, manage your profile, and keep a favorites list that
stays in sync with the server across runs.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion sets the version string shown by --version.
func SetVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(moviesCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(favoritesCmd)
}

// initializeApp loads the configuration and wires the session store and API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Resolve the session file location
	sessionPath := cfg.Session.Path
	if sessionPath == "" {
		sessionPath, err = session.DefaultPath()
		if err != nil {
			return fmt.Errorf("failed to resolve session path: %w", err)
		}
	}
	store = session.Open(sessionPath, logger)

	// Create the API client
	client, err = myflix.NewClient(cfg.API.URL, store, logger,
		myflix.WithTimeout(cfg.API.Timeout))
	if err != nil {
		return fmt.Errorf("failed to create myFlix client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	color := cfg.Color == "always"
	if cfg.Color == "auto" {
		color = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
