package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/floatdesk/internal/cli"
	"github.com/bnema/floatdesk/internal/cli/model"
	"github.com/bnema/floatdesk/internal/cli/styles"
	"github.com/bnema/floatdesk/internal/desk"
	"github.com/bnema/floatdesk/internal/infrastructure/config"
	"github.com/bnema/floatdesk/internal/infrastructure/content"
	"github.com/bnema/floatdesk/internal/infrastructure/snapshot"
	"github.com/bnema/floatdesk/internal/logging"
)

const shutdownTimeout = 3 * time.Second

var deskCmd = &cobra.Command{
	Use:   "desk",
	Short: "Open the floating panel desk",
	Long: `Open the desk in the terminal. The stored layout is restored and
saved again as panels move. Press ? on the desk for every shortcut.

Panels are dragged by their header and resized from the right edge, the
bottom edge or the corner grip. Minimized panels wait in the tray at the
bottom of the screen.`,
	RunE: runDesk,
}

func init() {
	rootCmd.AddCommand(deskCmd)
}

// runningDesk is the wired desk behind one program run.
type runningDesk struct {
	manager  *desk.Manager
	snapshot *snapshot.Service
	program  *tea.Program
}

func runDesk(_ *cobra.Command, _ []string) error {
	t0 := time.Now()
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := logging.WithComponent(app.Ctx(), "desk")
	trace := logging.NewStartupTrace(t0, &app.Logger)

	rd := wireDesk(ctx, app, trace)
	trace.Mark("wired")

	app.Notifier.Attach(rd.program)
	defer app.Notifier.Attach(nil)

	_, runErr := rd.program.Run()

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	stopCtx = logging.WithContext(stopCtx, *logging.FromContext(ctx))
	if err := rd.snapshot.Stop(stopCtx); err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("final layout save failed")
	}
	rd.manager.Close(stopCtx)

	if runErr != nil {
		return fmt.Errorf("desk: %w", runErr)
	}
	return nil
}

func wireDesk(ctx context.Context, app *cli.App, trace *logging.StartupTrace) *runningDesk {
	cfg := app.Config
	light := cfg.Appearance.ColorScheme == config.ColorSchemeLight ||
		(cfg.Appearance.ColorScheme == config.ColorSchemeAuto && styles.TerminalIsLight())

	registry := desk.NewContentRegistry()
	opts := cfg.DeskOptions()
	content.RegisterAll(ctx, registry, content.Options{
		ScriptDir:     cfg.Content.ScriptDir,
		ScriptTimeout: time.Duration(cfg.Content.ScriptTimeoutMs) * time.Millisecond,
		NotesStyle:    notesStyle(light),
		Keymap:        opts.Keymap,
	})
	trace.Mark("content")

	rd := &runningDesk{}
	rd.snapshot = snapshot.NewService(app.SaveLayoutUC, nil, cfg.Persistence.DebounceMs)
	rd.manager = desk.NewManager(ctx, opts, desk.Deps{
		Content:  registry,
		Listener: rd.snapshot,
		OnChange: func() {
			if rd.program != nil {
				rd.program.Send(model.DeskChangedMsg{})
			}
		},
	})
	rd.snapshot.SetProvider(rd.manager)
	rd.snapshot.Start(ctx)

	m := model.NewDeskModel(ctx, app.Theme, model.DeskModelConfig{
		Manager:      rd.manager,
		Geometry:     geometryOf(cfg),
		Slot:         cfg.Persistence.Slot,
		ContentTypes: registry.Types(),
		Loader:       app.LoadLayoutUC,
		Exporter:     app.ExportLayoutUC,
		Snapshot:     rd.snapshot,
		Trace:        trace,
	})
	rd.program = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	watchConfig(ctx, app, rd.program, light)
	return rd
}

// watchConfig pushes reloaded settings into the running desk. The terminal
// background is not queried again while the program owns the terminal.
func watchConfig(ctx context.Context, app *cli.App, program *tea.Program, light bool) {
	if app.ConfigManager == nil {
		return
	}
	app.ConfigManager.OnConfigChange(func(c *config.Config) {
		program.Send(model.OptionsChangedMsg{
			Options:  c.DeskOptions(),
			Geometry: geometryOf(c),
			Theme:    styles.NewThemeFromPalette(c.Appearance.Palette(light)),
		})
	})
	if err := app.ConfigManager.Watch(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("config hot reload unavailable")
	}
}

func geometryOf(c *config.Config) model.Geometry {
	return model.Geometry{CellWidth: c.Appearance.CellWidth, CellHeight: c.Appearance.CellHeight}
}

func notesStyle(light bool) string {
	if light {
		return "light"
	}
	return "dark"
}
