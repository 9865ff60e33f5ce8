package app

import (
	"errors"

	"github.com/Bilal-AKAG/autogitignore/internal/catalog"
	"github.com/Bilal-AKAG/autogitignore/internal/logging"
	"github.com/Bilal-AKAG/autogitignore/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	OutputDir  string
	BaseURL    string
	CacheFile  string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	cacheFile := cfg.CacheFile
	if cacheFile == "" {
		path, err := catalog.DefaultCachePath()
		if err != nil {
			// No usable cache location; every run fetches.
			logging.Error(err)
		} else {
			cacheFile = path
		}
	}
	client := catalog.NewClient(catalog.ClientConfig{BaseURL: cfg.BaseURL})
	store := catalog.NewStore(cacheFile)
	service := catalog.NewService(client, store)
	model := ui.NewModel(service, cfg.OutputDir, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
