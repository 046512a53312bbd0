package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"themeshift/internal/config"
	"themeshift/internal/domain"
	"themeshift/internal/export"
	"themeshift/internal/fuzzy"
	"themeshift/internal/repository"
	"themeshift/internal/theme"
	"themeshift/internal/tui"
)

var (
	// get flags
	getTheme string
	getIndex int
	getAs    string

	// pick flags
	pickIndex  int
	pickColors bool

	// import flags
	importName       string
	importOnConflict string

	// export flags
	exportFormat string
	exportOutput string
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage themes",
	Long: `Manage theme documents and inspect the values they define.

Examples:
  themeshift theme list                   # List available themes
  themeshift theme set dracula            # Switch the active theme
  themeshift theme get semantic.primary   # Resolve a key path
  themeshift theme import ./ocean.toml    # Add a theme to the store`,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	Long: `List bundled themes, documents in the theme directory and themes in the
theme store.`,
	Args: cobra.NoArgs,
	RunE: runThemeList,
}

var themeShowCmd = &cobra.Command{
	Use:   "show [theme-name]",
	Short: "Show a theme's palette",
	Long: `Display every color a theme defines. Without a name the active theme is
shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runThemeShow,
}

var themeGetCmd = &cobra.Command{
	Use:   "get [key-path]",
	Short: "Resolve a key path in the active theme",
	Long: `Resolve a dot separated key path against a theme.

Value kinds (--as):
  value   raw value (default)
  string  text
  number  numeric value
  color   hex color token
  dict    nested mapping, printed as yaml

Examples:
  themeshift theme get semantic.primary --as color
  themeshift theme get metrics.padding --as number --theme nord`,
	Args: cobra.ExactArgs(1),
	RunE: runThemeGet,
}

var themePickCmd = &cobra.Command{
	Use:   "pick [values...]",
	Short: "Select a value by theme index",
	Long: `Select the element of a list matching the theme index, the way
index driven pickers do.

Examples:
  themeshift theme pick small medium large --index 1
  themeshift theme pick "#FF0000" "#00FF00" --colors`,
	Args: cobra.MinimumNArgs(1),
	RunE: runThemePick,
}

var themeSetCmd = &cobra.Command{
	Use:   "set [theme-name]",
	Short: "Set the active theme",
	Long: `Set the active theme. Stored themes are written to the theme directory so
that edits to them are picked up live.

Examples:
  themeshift theme set dracula
  themeshift theme set ocean`,
	Args: cobra.ExactArgs(1),
	RunE: runThemeSet,
}

var themeIndexCmd = &cobra.Command{
	Use:   "index [n]",
	Short: "Set the active theme index",
	Long:  `Set the theme index used by index driven pickers.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeIndex,
}

var themeImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a theme file into the store",
	Long: `Import a .yaml, .yml, .toml or .json theme document into the theme store.

Examples:
  themeshift theme import ./ocean.toml
  themeshift theme import ./ocean.json --name sea --on-conflict overwrite`,
	Args: cobra.ExactArgs(1),
	RunE: runThemeImport,
}

var themeExportCmd = &cobra.Command{
	Use:   "export [theme-name]",
	Short: "Export a theme document",
	Long: `Write a theme document in yaml, toml or json.

Examples:
  themeshift theme export nord --format toml
  themeshift theme export dracula --format json --output dracula.json`,
	Args: cobra.ExactArgs(1),
	RunE: runThemeExport,
}

var themeRemoveCmd = &cobra.Command{
	Use:     "remove [theme-name]",
	Aliases: []string{"rm"},
	Short:   "Remove a stored theme",
	Long:    `Remove a theme from the theme store and the theme directory.`,
	Args:    cobra.ExactArgs(1),
	RunE:    runThemeRemove,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeGetCmd)
	themeCmd.AddCommand(themePickCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeIndexCmd)
	themeCmd.AddCommand(themeImportCmd)
	themeCmd.AddCommand(themeExportCmd)
	themeCmd.AddCommand(themeRemoveCmd)

	themeGetCmd.Flags().StringVarP(&getTheme, "theme", "t", "", "Theme to resolve against (default: active theme)")
	themeGetCmd.Flags().IntVarP(&getIndex, "index", "i", -1, "Theme index (default: configured index)")
	themeGetCmd.Flags().StringVar(&getAs, "as", "value", "Value kind: value, string, number, color, dict")

	themePickCmd.Flags().IntVarP(&pickIndex, "index", "i", -1, "Theme index (default: configured index)")
	themePickCmd.Flags().BoolVar(&pickColors, "colors", false, "Parse the selected value as a color")

	themeImportCmd.Flags().StringVarP(&importName, "name", "n", "", "Theme name (default: file name)")
	themeImportCmd.Flags().StringVar(&importOnConflict, "on-conflict", "fail", "What to do when the name exists: fail, skip, overwrite")

	themeExportCmd.Flags().StringVarP(&exportFormat, "format", "f", "yaml", "Output format: yaml, toml, json")
	themeExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

// lists every theme with where it comes from
func runThemeList(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadEnv()
	if err != nil {
		return err
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	stored, err := s.repo.List(cmd.Context(), repository.ThemeFilter{})
	if err != nil {
		return fmt.Errorf("failed to list stored themes: %w", err)
	}

	current := currentThemeName(cfg)
	out := cmd.OutOrStdout()

	tw := prettytable.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetStyle(prettytable.StyleLight)
	tw.Style().Options.SeparateRows = false
	tw.AppendHeader(prettytable.Row{"", "NAME", "SOURCE", "FORMAT", "UPDATED"})
	tw.SetColumnConfigs([]prettytable.ColumnConfig{
		{Number: 1, Align: text.AlignCenter},
	})

	marker := func(name string) string {
		if name == current {
			return "▶"
		}
		return ""
	}

	bundle := theme.BundleFS()
	for _, name := range theme.ListThemes(bundle) {
		file, _ := theme.MainBundle().PathFor(bundle, name)
		tw.AppendRow(prettytable.Row{marker(name), name, "bundle", formatOf(file), ""})
	}

	if dirFS := themeDirFS(cfg.ThemeDir); dirFS != nil {
		for _, name := range theme.ListThemes(dirFS) {
			file, _ := theme.MainBundle().PathFor(dirFS, name)
			tw.AppendRow(prettytable.Row{marker(name), name, "directory", formatOf(file), ""})
		}
	}

	for _, st := range stored {
		tw.AppendRow(prettytable.Row{marker(st.Name), st.Name, "store", string(st.Format), st.UpdatedAt.Format("2006-01-02 15:04")})
	}

	tw.Render()
	return nil
}

// displays a theme's colors
func runThemeShow(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadEnv()
	if err != nil {
		return err
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	name := currentThemeName(cfg)
	if len(args) == 1 {
		name = args[0]
	}

	mgr := theme.NewManager(theme.WithLogger(log), theme.WithIndex(cfg.ThemeIndex))
	if err := applyTheme(cmd.Context(), mgr, cfg, s, name); err != nil {
		return err
	}

	styles := tui.NewStyles(mgr)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Header.Render(fmt.Sprintf(" Theme: %s ", name)))
	fmt.Fprintln(out, styles.Subtitle.Render(mgr.CurrentThemePath().String()))
	fmt.Fprintln(out)

	tw := prettytable.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetStyle(prettytable.StyleLight)
	tw.AppendHeader(prettytable.Row{"KEY", "COLOR", ""})

	doc := mgr.CurrentTheme()
	for _, kp := range doc.Keys() {
		c, ok := colorAt(doc, kp)
		if !ok {
			continue
		}
		swatch := lipgloss.NewStyle().Background(c.Lipgloss()).Render("    ")
		tw.AppendRow(prettytable.Row{kp, c.Hex(), swatch})
	}

	tw.Render()
	return nil
}

// checks doc directly so non-color values do not log lookup warnings
func colorAt(doc theme.Document, keyPath string) (theme.Color, bool) {
	v, _ := doc.ValueForKeyPath(keyPath)
	s, ok := v.(string)
	if !ok || !strings.HasPrefix(s, "#") {
		return theme.Color{}, false
	}
	c, err := theme.ParseColor(s)
	return c, err == nil
}

// resolves one key path
func runThemeGet(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadEnv()
	if err != nil {
		return err
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	name := getTheme
	if name == "" {
		name = currentThemeName(cfg)
	}

	mgr := theme.NewManager(theme.WithLogger(zap.NewNop()), theme.WithIndex(cfg.ThemeIndex))
	if err := applyTheme(cmd.Context(), mgr, cfg, s, name); err != nil {
		return err
	}
	if getIndex >= 0 {
		mgr.SetThemeIndex(getIndex)
	}

	keyPath := args[0]
	out := cmd.OutOrStdout()

	var ok bool
	switch getAs {
	case "value":
		var v any
		if v, ok = mgr.ValueForKeyPath(keyPath); ok {
			switch t := v.(type) {
			case theme.Document:
				err = export.Encode(out, t, domain.ThemeFormatYAML)
			case []any:
				for _, e := range t {
					fmt.Fprintln(out, cast.ToString(e))
				}
			default:
				fmt.Fprintln(out, cast.ToString(v))
			}
		}
	case "string":
		var v string
		if v, ok = mgr.StringForKeyPath(keyPath); ok {
			fmt.Fprintln(out, v)
		}
	case "number":
		var v float64
		if v, ok = mgr.NumberForKeyPath(keyPath); ok {
			fmt.Fprintln(out, strconv.FormatFloat(v, 'f', -1, 64))
		}
	case "color":
		var c theme.Color
		if c, ok = mgr.ColorForKeyPath(keyPath); ok {
			fmt.Fprintln(out, c.Hex())
		}
	case "dict":
		var d theme.Document
		if d, ok = mgr.DictionaryForKeyPath(keyPath); ok {
			err = export.Encode(out, d, domain.ThemeFormatYAML)
		}
	default:
		return fmt.Errorf("invalid kind %q: must be value, string, number, color, or dict", getAs)
	}
	if err != nil {
		return err
	}

	if !ok {
		log.Debug("key path not resolved", zap.String("theme", name), zap.String("keyPath", keyPath), zap.String("as", getAs))
		return missingKeyError(mgr.CurrentTheme(), name, keyPath, getAs)
	}
	return nil
}

func missingKeyError(doc theme.Document, name, keyPath, kind string) error {
	if _, exists := doc.ValueForKeyPath(keyPath); exists {
		return fmt.Errorf("%s in theme %s is not a %s", keyPath, name, kind)
	}

	suggestions := fuzzy.Suggest(keyPath, doc.Keys(), 40, 3)
	if len(suggestions) == 0 {
		return fmt.Errorf("%w: %s in theme %s", theme.ErrKeyNotFound, keyPath, name)
	}

	names := make([]string, len(suggestions))
	for i, s := range suggestions {
		names[i] = s.KeyPath
	}
	return fmt.Errorf("%w: %s in theme %s (did you mean %s?)", theme.ErrKeyNotFound, keyPath, name, strings.Join(names, ", "))
}

// selects an element by theme index
func runThemePick(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadEnv()
	if err != nil {
		return err
	}

	mgr := theme.NewManager(theme.WithLogger(log), theme.WithIndex(cfg.ThemeIndex))
	if pickIndex >= 0 {
		mgr.SetThemeIndex(pickIndex)
	}

	out := cmd.OutOrStdout()
	if pickColors {
		c, ok := mgr.ColorFromList(args)
		if !ok {
			return fmt.Errorf("no color at index %d of %d values", mgr.CurrentThemeIndex(), len(args))
		}
		fmt.Fprintln(out, c.Hex())
		return nil
	}

	v, ok := theme.ElementFor(mgr, args)
	if !ok {
		return fmt.Errorf("%w: index %d of %d values", theme.ErrIndexOutOfRange, mgr.CurrentThemeIndex(), len(args))
	}
	fmt.Fprintln(out, v)
	return nil
}

// sets the active theme
func runThemeSet(cmd *cobra.Command, args []string) error {
	name := args[0]
	ctx := cmd.Context()

	cfg, _, err := loadEnv()
	if err != nil {
		return err
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	if !themeKnown(ctx, cfg, s, name) {
		return fmt.Errorf("%w: %q. Run 'themeshift theme list' to see available themes", theme.ErrThemeNotFound, name)
	}

	st, err := s.repo.GetByName(ctx, name)
	switch {
	case err == nil:
		if _, err := s.lib.WriteFile(ctx, name, cfg.ThemeDir, st.Format); err != nil {
			return fmt.Errorf("failed to write theme file: %w", err)
		}
	case !errors.Is(err, theme.ErrThemeNotFound):
		return err
	}

	if err := config.UpdateTheme(name); err != nil {
		return fmt.Errorf("failed to update theme: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Theme set to '%s'\n", name)
	return nil
}

func runThemeIndex(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil || index < 0 {
		return fmt.Errorf("invalid index %q: must be a non-negative integer", args[0])
	}

	if err := config.UpdateThemeIndex(index); err != nil {
		return fmt.Errorf("failed to update theme index: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Theme index set to %d\n", index)
	return nil
}

func runThemeImport(cmd *cobra.Command, args []string) error {
	strategy, err := export.ParseConflictStrategy(importOnConflict)
	if err != nil {
		return err
	}

	cfg, log, err := loadEnv()
	if err != nil {
		return err
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	st, err := s.lib.ImportFile(cmd.Context(), args[0], importName, strategy)
	if err != nil {
		return fmt.Errorf("failed to import theme: %w", err)
	}

	log.Info("theme imported", zap.String("name", st.Name), zap.String("format", string(st.Format)), zap.String("file", args[0]))
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported theme '%s' (%s)\n", st.Name, st.Format)
	return nil
}

func runThemeExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	cfg, log, err := loadEnv()
	if err != nil {
		return err
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	mgr := theme.NewManager(theme.WithLogger(log))
	if err := applyTheme(cmd.Context(), mgr, cfg, s, args[0]); err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := export.Encode(w, mgr.CurrentTheme(), format); err != nil {
		return err
	}

	if exportOutput != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported theme '%s' to %s\n", args[0], exportOutput)
	}
	return nil
}

func runThemeRemove(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg, _, err := loadEnv()
	if err != nil {
		return err
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	deleted := true
	if err := s.repo.Delete(cmd.Context(), name); err != nil {
		if !errors.Is(err, theme.ErrThemeNotFound) {
			return err
		}
		deleted = false
	}

	removed, err := removeThemeFiles(cfg.ThemeDir, name)
	if err != nil {
		return err
	}

	if !deleted && !removed {
		if theme.ThemeExists(theme.BundleFS(), name) {
			return fmt.Errorf("theme '%s' is bundled and cannot be removed", name)
		}
		return fmt.Errorf("%w: %q", theme.ErrThemeNotFound, name)
	}

	if cfg.ThemeName == name {
		if err := config.UpdateTheme(""); err != nil {
			return fmt.Errorf("failed to reset theme: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed theme '%s'\n", name)
	return nil
}

func themeDirFS(dir string) fs.FS {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil
	}
	return os.DirFS(dir)
}

func formatOf(file string) string {
	f, err := domain.FormatForFile(file)
	if err != nil {
		return ""
	}
	return string(f)
}

// stored theme names, sorted
func storedNames(ctx context.Context, s *store) ([]string, error) {
	stored, err := s.repo.List(ctx, repository.ThemeFilter{})
	if err != nil {
		return nil, err
	}
	names := make([]string, len(stored))
	for i, st := range stored {
		names[i] = st.Name
	}
	sort.Strings(names)
	return names, nil
}
