package cmd

import (
	"fmt"
	"os"

	"swipedeck/internal/config"
	"swipedeck/internal/deck"
	"swipedeck/internal/store"
	"swipedeck/internal/tui"
	"swipedeck/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	flagTheme      string
	flagNoRemember bool
	flagStartPage  int
)

var rootCmd = &cobra.Command{
	Use:   "swipedeck [path...]",
	Short: "Terminal pager with a swipeable tab strip",
	Long: `View a deck of text pages behind a horizontally swipeable tab strip.

Pass a directory of .txt/.md files, an explicit list of files, or nothing
for the built-in demo deck.`,
	Args: cobra.ArbitraryArgs,
	RunE: runView,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagTheme, "theme", "t", "", "Color theme (overrides config)")
	rootCmd.Flags().BoolVar(&flagNoRemember, "no-remember", false, "Don't restore or save the last page")
	rootCmd.Flags().IntVar(&flagStartPage, "page", 0, "Start on this page (1-based, overrides remembered page)")
}

// loadConfig loads config with CLI flag overrides applied.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
		cfg = config.DefaultConfig()
	}
	if flagTheme != "" {
		cfg.Appearance.Theme = flagTheme
	}
	if flagNoRemember {
		cfg.General.RememberLastPage = false
	}
	return cfg
}

func runView(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	theme.SetActive(cfg.Appearance.Theme)

	d, err := deck.Load(args)
	if err != nil {
		return err
	}

	var st *store.Store
	if cfg.General.RememberLastPage {
		st, err = store.Open(store.DefaultPath())
		if err != nil {
			fmt.Fprintf(os.Stderr, "  Session store unavailable: %v\n", err)
			st = nil
		} else {
			defer func() { _ = st.Close() }()
		}
	}

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(d, cfg, st)
	if flagStartPage > 0 {
		// An explicit start page wins over the remembered one.
		app = app.WithStartPage(flagStartPage - 1)
	}
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer error: %w", err)
	}
	return nil
}
