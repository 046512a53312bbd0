package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"themeshift/internal/config"
	"themeshift/internal/logger"
	"themeshift/internal/theme"
	"themeshift/internal/tui"
)

const defaultThemeName = "default"

var rootCmd = &cobra.Command{
	Use:   "themeshift",
	Short: "themeshift - switchable themes for terminal apps",
	Long: `themeshift manages theme documents and resolves styling values from the
active theme. Themes come from the built-in bundle, a theme directory that is
watched for edits, or the local theme store.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		displayWelcome(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func displayWelcome(cmd *cobra.Command) {
	cfg, err := config.LoadConfig()
	if err != nil {
		// fallback to default
		cfg = config.GetDefaultConfig()
	}

	mgr := newManager(cfg, zap.NewNop())
	styles := tui.NewStyles(mgr)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Title.Render("T H E M E S H I F T"))
	fmt.Fprintln(out, styles.Subtitle.Render("One theme, every surface."))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'themeshift --help' to see available commands.")
	fmt.Fprintln(out)
}

// loads config and a logger built from it
func loadEnv() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, FilePath: cfg.LogFile})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return cfg, log, nil
}

// creates a manager with the configured theme & index applied
func newManager(cfg *config.Config, log *zap.Logger) *theme.Manager {
	mgr := theme.NewManager(
		theme.WithLogger(log),
		theme.WithIndex(cfg.ThemeIndex),
	)

	name := currentThemeName(cfg)
	if p, ok := theme.FindTheme(mgr.Bundle(), cfg.ThemeDir, name); ok {
		mgr.SetTheme(name, p)
	}
	if mgr.CurrentTheme() == nil && name != defaultThemeName {
		mgr.SetThemeFromBundle(defaultThemeName)
	}

	return mgr
}

func currentThemeName(cfg *config.Config) string {
	if cfg.ThemeName == "" {
		return defaultThemeName
	}
	return cfg.ThemeName
}
