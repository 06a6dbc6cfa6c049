package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"sectionpad/internal/config"
	"sectionpad/internal/format"
	"sectionpad/internal/model"
	"sectionpad/internal/seed"
	"sectionpad/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runFunc starts the interactive editor. Tests swap it out.
type runFunc func(tui.Options) (model.Document, error)

type App struct {
	v *viper.Viper

	Print  string
	Pretty bool

	run runFunc
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(tui.Run)
}

func newRootCmd(run runFunc) *cobra.Command {
	app := &App{v: config.New(), run: run}

	cmd := &cobra.Command{
		Use:          "sectionpad",
		Short:        "Edit a page of collapsible sections in the terminal",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start the editor on the built-in page
  sectionpad

  # Start from a seed document and print the result as markdown on exit
  sectionpad --seed page.yaml --print markdown

  # Print a document without starting the editor
  sectionpad render --seed page.yaml --format terminal
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd, app)
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("seed", "", "Seed document (YAML or JSON; default: built-in page)")
	pf.String("theme", "", "Color theme (auto|light|dark)")
	pf.String("glyphs", "", "Glyph set (unicode|ascii)")
	pf.BoolVar(&app.Pretty, "pretty", false, "Pretty-print JSON output")
	_ = app.v.BindPFlag("document.seed", pf.Lookup("seed"))
	_ = app.v.BindPFlag("ui.theme", pf.Lookup("theme"))
	_ = app.v.BindPFlag("ui.glyphs", pf.Lookup("glyphs"))

	cmd.Flags().Bool("no-mouse", false, "Disable mouse support")
	cmd.Flags().StringVar(&app.Print, "print", "", "Write the final document to stdout on exit (json|yaml|markdown)")

	cmd.AddCommand(newRenderCmd(app))
	return cmd
}

func runEditor(cmd *cobra.Command, app *App) error {
	printFormat := strings.ToLower(strings.TrimSpace(app.Print))
	switch printFormat {
	case "", "json", "yaml", "markdown":
	default:
		return writeErr(cmd, unknownFormatError{flag: "--print", value: app.Print})
	}
	if f := cmd.Flags().Lookup("no-mouse"); f != nil && f.Changed {
		app.v.Set("ui.mouse", false)
	}

	cfg, doc, err := loadDocument(app)
	if err != nil {
		return writeErr(cmd, err)
	}

	logger, closeLog, err := openDebugLog(cfg.Debug.LogPath)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer closeLog()
	logger.Debug("start", "sections", len(doc.Sections), "seed", cfg.Document.Seed)

	final, err := app.run(tui.Options{
		Document:      doc,
		Theme:         cfg.UI.Theme,
		Glyphs:        cfg.UI.Glyphs,
		Mouse:         cfg.UI.Mouse,
		ToastDuration: cfg.UI.ToastDuration,
		Logger:        logger,
	})
	if err != nil {
		return writeErr(cmd, err)
	}
	logger.Debug("exit", "sections", len(final.Sections))

	if printFormat == "" {
		return nil
	}
	return writeDoc(cmd, app, final, printFormat, 0)
}

func loadDocument(app *App) (config.Config, model.Document, error) {
	cfg, err := config.Load(app.v)
	if err != nil {
		return config.Config{}, model.Document{}, err
	}
	doc, err := seed.Load(cfg.Document.Seed)
	if err != nil {
		return config.Config{}, model.Document{}, err
	}
	return cfg, doc, nil
}

// openDebugLog returns a debug-level logger writing to path, or a discarding logger
// when path is empty.
func openDebugLog(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := tea.LogToFile(path, "sectionpad")
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}

func writeDoc(cmd *cobra.Command, app *App, doc model.Document, name string, width int) error {
	if err := format.Write(cmd.OutOrStdout(), doc, name, app.Pretty, width); err != nil {
		return writeErr(cmd, err)
	}
	return nil
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
