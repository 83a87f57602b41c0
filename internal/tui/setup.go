package tui

import (
	"fmt"

	"swipedeck/internal/config"
	"swipedeck/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues receives the first-run form answers.
type setupValues struct {
	Theme     string
	Remember  bool
	Animation string
}

// newSetupForm builds the first-run setup form.
func newSetupForm(vals *setupValues) *huh.Form {
	vals.Theme = theme.Active.Name
	vals.Remember = true
	vals.Animation = "smooth"

	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOpts[i] = huh.NewOption(t.Name, t.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Description("How the strip and pages are painted.").
				Options(themeOpts...).
				Value(&vals.Theme),

			huh.NewSelect[string]().
				Title("Page animation").
				Options(
					huh.NewOption("smooth", "smooth"),
					huh.NewOption("snappy", "snappy"),
				).
				Value(&vals.Animation),

			huh.NewConfirm().
				Title("Remember last page?").
				Description("Reopen each deck on the page you left it.").
				Value(&vals.Remember),
		),
	)
}

// RunSetup runs the setup form standalone, outside the viewer.
func RunSetup() error {
	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	var vals setupValues
	if err := newSetupForm(&vals).Run(); err != nil {
		return err
	}

	cfg = applySetup(cfg, vals)
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	return nil
}

// applySetup folds the form answers into a config.
func applySetup(cfg config.Config, vals setupValues) config.Config {
	cfg.Appearance.Theme = vals.Theme
	cfg.General.RememberLastPage = vals.Remember
	if vals.Animation == "snappy" {
		cfg.Animation = config.SnappyAnimation()
	} else {
		cfg.Animation = config.SmoothAnimation()
	}
	return cfg
}
