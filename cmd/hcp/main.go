package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/studiowebux/hcp/internal/config"
	"github.com/studiowebux/hcp/internal/executor"
	"github.com/studiowebux/hcp/internal/filter"
	"github.com/studiowebux/hcp/internal/keybinds"
	"github.com/studiowebux/hcp/internal/logging"
	"github.com/studiowebux/hcp/internal/tui"
	"github.com/studiowebux/hcp/internal/version"
)

var (
	flagConfig   string
	flagMethod   string
	flagHeaders  []string
	flagInsecure bool
	flagTimeout  string
	flagQuery    string
	flagLogFile  string
	flagLogLevel string
	flagKeybinds string
	flagTheme    string
	flagNoColor  bool

	flagCheckUpdate bool
	flagExportOut   string
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hcp [url]",
	Short: "hcp - interactive HTTP client with latency telemetry",
	Long: `hcp composes and fires one HTTP request at a time and shows the
streamed response next to per-phase latency bars.

Settings are read from ~/.hcp/config.yaml and keybindings from
~/.hcp/keybinds.json. Flags override both.

Examples:
  hcp                                   # Start with the configured defaults
  hcp https://api.example.com/users     # Start on this URL
  hcp -X POST -H "Authorization: Bearer x" https://api.example.com/items
  hcp --query "items[0].name" https://api.example.com/items
  hcp keybinds export > ~/.hcp/keybinds.json`,
	Version:       version.Version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version, optionally checking for a newer release",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "hcp %s\n", version.Version)
		if !flagCheckUpdate {
			return nil
		}

		release, newer, err := version.NewChecker().Check(cmd.Context(), version.Version)
		if err != nil {
			return fmt.Errorf("update check failed: %w", err)
		}
		if newer {
			fmt.Fprintf(cmd.OutOrStdout(), "A newer version is available: %s (%s)\n", release.Version(), release.HTMLURL)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "You are on the latest version")
		}
		return nil
	},
}

var keybindsCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "Inspect and export keybindings",
}

var keybindsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the default keybindings as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagExportOut != "" {
			if err := keybinds.SaveConfig(keybinds.ExportDefaults(), flagExportOut); err != nil {
				return fmt.Errorf("failed to write %s: %w", flagExportOut, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Keybindings written to %s\n", flagExportOut)
			return nil
		}
		return writeJSON(cmd, keybinds.ExportDefaults())
	},
}

var keybindsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the keybinding file",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		registry, err := keybinds.LoadOrDefault(settings.Keybinds)
		if err != nil {
			return err
		}
		result := keybinds.NewValidator().ValidateRegistry(registry)
		fmt.Fprintln(cmd.OutOrStdout(), result.String())
		if result.HasErrors() {
			return errors.New("invalid keybindings")
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ~/.hcp/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagKeybinds, "keybinds", "", "Keybinding file (default ~/.hcp/keybinds.json)")

	rootCmd.Flags().StringVarP(&flagMethod, "method", "X", "", "Initial method (GET/POST/PUT/DELETE)")
	rootCmd.Flags().StringArrayVarP(&flagHeaders, "header", "H", nil, "Initial header line (Key: Value), can be repeated")
	rootCmd.Flags().BoolVarP(&flagInsecure, "insecure", "k", false, "Skip TLS certificate verification")
	rootCmd.Flags().StringVar(&flagTimeout, "timeout", "", "Request timeout (e.g. 10s, 1m)")
	rootCmd.Flags().StringVar(&flagQuery, "query", "", "JMESPath expression applied to JSON responses")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug/info/warn/error)")
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "Syntax highlighting style for JSON responses")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colors")

	versionCmd.Flags().BoolVar(&flagCheckUpdate, "check", false, "Check GitHub for a newer release")
	keybindsExportCmd.Flags().StringVarP(&flagExportOut, "output", "o", "", "Write to file instead of stdout")

	keybindsCmd.AddCommand(keybindsExportCmd, keybindsCheckCmd)
	rootCmd.AddCommand(versionCmd, keybindsCmd)
}

// loadSettings reads the config file and applies flag overrides
func loadSettings() (config.Settings, error) {
	if err := config.Initialize(); err != nil {
		return config.Settings{}, fmt.Errorf("failed to initialize config: %w", err)
	}

	path := flagConfig
	if path == "" {
		path = config.ConfigFile
	}
	settings, err := config.Load(path)
	if err != nil {
		return settings, err
	}

	if flagKeybinds != "" {
		settings.Keybinds = flagKeybinds
	}
	return settings, nil
}

// applyFlags overrides settings with the root command's flags
func applyFlags(cmd *cobra.Command, settings *config.Settings, args []string) error {
	if len(args) > 0 {
		settings.DefaultURL = args[0]
	}
	if flagMethod != "" {
		settings.DefaultMethod = flagMethod
	}
	if len(flagHeaders) > 0 {
		settings.DefaultHeaders = append(settings.DefaultHeaders, flagHeaders...)
	}
	if cmd.Flags().Changed("insecure") {
		settings.Insecure = flagInsecure
	}
	if flagTimeout != "" {
		settings.Timeout = flagTimeout
	}
	if flagQuery != "" {
		settings.Query = flagQuery
	}
	if flagLogFile != "" {
		settings.LogFile = flagLogFile
	}
	if flagLogLevel != "" {
		settings.LogLevel = flagLogLevel
	}
	if flagTheme != "" {
		settings.Theme = flagTheme
	}
	return settings.Validate()
}

// runTUI starts the interactive session
func runTUI(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("hcp needs an interactive terminal")
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, &settings, args); err != nil {
		return err
	}

	logger, closer, err := logging.Open(settings.LogFile, logging.ParseLevel(settings.LogLevel))
	if err != nil {
		return err
	}
	defer closer.Close()

	registry, err := keybinds.LoadOrDefault(settings.Keybinds)
	if err != nil {
		return err
	}
	result := keybinds.NewValidator().ValidateRegistry(registry)
	if result.HasErrors() {
		return fmt.Errorf("invalid keybindings:\n%s", result.String())
	}
	for _, w := range result.Warnings {
		logger.Warn("keybinding", "context", w.Context, "key", w.Key, "message", w.Message)
	}

	query, err := filter.Compile(settings.Query)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	timeout, _ := settings.TimeoutDuration()

	engine := executor.New(executor.Options{
		Timeout:            timeout,
		InsecureSkipVerify: settings.Insecure,
		UserAgent:          settings.UserAgent,
		Query:              query,
		Logger:             logger,
	})

	noColor := flagNoColor || os.Getenv("NO_COLOR") != ""
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()

	logger.Info("starting",
		"version", version.Version,
		"url", settings.DefaultURL,
		"method", settings.Method().String(),
		"timeout", timeout,
		"insecure", settings.Insecure,
		"query", query.String(),
	)

	return tui.Run(ctx, tui.Options{
		State: tui.StateOptions{
			URL:     settings.DefaultURL,
			Method:  settings.Method(),
			Headers: settings.HeaderLines(),
		},
		Engine:    engine,
		Keys:      registry,
		Theme:     settings.Theme,
		Highlight: !noColor,
		Logger:    logger,
	})
}

func writeJSON(cmd *cobra.Command, cfg *keybinds.Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
