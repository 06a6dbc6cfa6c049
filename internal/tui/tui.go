package tui

import (
	"fmt"

	"sectionpad/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive editor and returns the page as it was when the user quit.
func Run(opts Options) (model.Document, error) {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)
	applyGlyphPreference(opts.Glyphs)

	m, err := newAppModel(opts)
	if err != nil {
		return model.Document{}, err
	}

	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithReportFocus()}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	final, err := tea.NewProgram(m, progOpts...).Run()
	if err != nil {
		return model.Document{}, err
	}
	fm, ok := final.(appModel)
	if !ok {
		return model.Document{}, fmt.Errorf("unexpected final model %T", final)
	}
	return fm.Document(), nil
}
