package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"themeshift/internal/config"
	"themeshift/internal/logger"
	"themeshift/internal/theme"
	"themeshift/internal/tui"
)

var (
	// tui command flags
	tuiNoWatch  bool
	tuiVariants int
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive theme previewer",
	Long: `Launch the interactive previewer. Every widget follows the active theme,
and documents in the theme directory are reloaded as they are saved.

Keyboard shortcuts:
  ↑/k ↓/j   Previous / next theme
  ←/h →/l   Previous / next theme index
  Enter     Cycle the button's control state
  r         Reload the current theme
  q         Quit
  ?         Toggle help

The selected theme and index are saved on exit.

Examples:
  themeshift tui
  themeshift tui --no-watch --variants 2`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().BoolVar(&tuiNoWatch, "no-watch", false, "Do not reload theme files when they change")
	tuiCmd.Flags().IntVar(&tuiVariants, "variants", 4, "Number of theme indexes to cycle through")
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// stderr belongs to the terminal UI, so only file logging is allowed
	log := zap.NewNop()
	if cfg.LogFile != "" {
		log, err = logger.New(logger.Config{Level: cfg.LogLevel, FilePath: cfg.LogFile})
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer log.Sync()
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := os.MkdirAll(cfg.ThemeDir, 0755); err != nil {
		return fmt.Errorf("failed to create theme directory: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	names, err := previewThemes(ctx, cfg, s)
	if err != nil {
		return err
	}

	var reloads <-chan theme.Reload
	if !tuiNoWatch {
		w, err := theme.NewWatcher(cfg.ThemeDir, "", log)
		if err != nil {
			return fmt.Errorf("failed to watch theme directory: %w", err)
		}
		defer w.Close()

		go func() {
			if err := w.Run(ctx); err != nil && ctx.Err() == nil {
				log.Warn("theme watcher stopped", zap.Error(err))
			}
		}()
		reloads = w.Reloads()
	}

	mgr := theme.NewManager(theme.WithLogger(log), theme.WithIndex(cfg.ThemeIndex))
	model := tui.NewModel(tui.Config{
		Manager:  mgr,
		Themes:   names,
		Current:  currentThemeName(cfg),
		ThemeDir: cfg.ThemeDir,
		Reloads:  reloads,
		Variants: tuiVariants,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	m, ok := final.(tui.Model)
	if !ok || m.CurrentTheme() == "" {
		return nil
	}

	cfg.ThemeName = m.CurrentTheme()
	cfg.ThemeIndex = m.CurrentIndex()
	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Theme set to '%s' (index %d)\n", cfg.ThemeName, cfg.ThemeIndex)
	return nil
}

// collects bundled, directory and stored theme names; stored themes missing
// from the theme directory are written there so they can be watched
func previewThemes(ctx context.Context, cfg *config.Config, s *store) ([]string, error) {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	for _, name := range theme.ListThemes(theme.BundleFS()) {
		add(name)
	}
	for _, name := range theme.ListThemes(os.DirFS(cfg.ThemeDir)) {
		add(name)
	}

	stored, err := storedNames(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("failed to list stored themes: %w", err)
	}
	for _, name := range stored {
		if _, ok := theme.FindTheme(nil, cfg.ThemeDir, name); !ok {
			st, err := s.repo.GetByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if _, err := s.lib.WriteFile(ctx, name, cfg.ThemeDir, st.Format); err != nil {
				return nil, fmt.Errorf("failed to write %s: %w", filepath.Join(cfg.ThemeDir, name), err)
			}
		}
		add(name)
	}

	return names, nil
}
