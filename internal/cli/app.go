// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/floatdesk/internal/application/usecase"
	"github.com/bnema/floatdesk/internal/cli/styles"
	"github.com/bnema/floatdesk/internal/domain/build"
	"github.com/bnema/floatdesk/internal/domain/repository"
	"github.com/bnema/floatdesk/internal/infrastructure/config"
	"github.com/bnema/floatdesk/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/floatdesk/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info
	DB            *sqlite.LazyDB
	Store         repository.LayoutStore
	Notifier      *Notifier
	Confirmer     *Confirmer
	Logger        zerolog.Logger

	// Use cases
	SaveLayoutUC   *usecase.SaveLayoutUseCase
	LoadLayoutUC   *usecase.LoadLayoutUseCase
	ListLayoutsUC  *usecase.ListLayoutsUseCase
	ResetLayoutUC  *usecase.ResetLayoutUseCase
	ExportLayoutUC *usecase.ExportLayoutUseCase
	ImportLayoutUC *usecase.ImportLayoutUseCase

	// Context with logger
	ctx       context.Context
	logCloser io.Closer
}

// NewApp creates a new CLI application with all dependencies. The database
// is opened on first use so commands that never touch it stay fast.
func NewApp() (*App, error) {
	mgr, cfg := loadConfig()
	theme := styles.NewTheme(cfg)

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("FLOATDESK_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}
	logger, logCloser := newLogger(cfg, logLevel)
	ctx := logging.WithContext(context.Background(), logger)
	if mgr != nil {
		mgr.SetLogger(logger)
	}

	db := sqlite.NewLazyDB(cfg.Database.Path)
	store := sqlite.NewLazyLayoutStore(db)
	notifier := NewNotifier(os.Stderr, theme)
	confirmer := NewConfirmer(theme)

	slot := cfg.Persistence.Slot
	maxPanels := cfg.Persistence.MaxPanels
	saveUC := usecase.NewSaveLayoutUseCase(store, slot, cfg.Persistence.Enabled)

	logger.Debug().Str("db_path", cfg.Database.Path).Str("slot", slot).Msg("cli initialized")

	return &App{
		Config:         cfg,
		ConfigManager:  mgr,
		Theme:          theme,
		DB:             db,
		Store:          store,
		Notifier:       notifier,
		Confirmer:      confirmer,
		Logger:         logger,
		SaveLayoutUC:   saveUC,
		LoadLayoutUC:   usecase.NewLoadLayoutUseCase(store, notifier, slot, cfg.Persistence.Enabled, maxPanels),
		ListLayoutsUC:  usecase.NewListLayoutsUseCase(store, maxPanels),
		ResetLayoutUC:  usecase.NewResetLayoutUseCase(store, slot),
		ExportLayoutUC: usecase.NewExportLayoutUseCase(notifier),
		ImportLayoutUC: usecase.NewImportLayoutUseCase(saveUC, confirmer, notifier, maxPanels),
		ctx:            ctx,
		logCloser:      logCloser,
	}, nil
}

// newLogger writes to the rotated log file when file logging is on and
// discards everything otherwise. Log lines never go to the terminal, which
// the desk owns while it runs.
func newLogger(cfg *config.Config, level string) (zerolog.Logger, io.Closer) {
	if !cfg.Logging.EnableFileLog || cfg.Logging.LogDir == "" {
		return zerolog.Nop(), nil
	}
	logger, closer, err := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(level), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Dir:        cfg.Logging.LogDir,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAge,
			Compress:   cfg.Logging.Compress,
		},
	)
	if err != nil {
		return zerolog.Nop(), nil
	}
	return logger, closer
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations. The manager is
// nil when it could not be created; defaults are used then.
func loadConfig() (*config.Manager, *config.Config) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, defaultsWithPaths()
	}
	if err := mgr.Load(); err != nil {
		return nil, defaultsWithPaths()
	}
	return mgr, mgr.Get()
}

func defaultsWithPaths() *config.Config {
	cfg := config.DefaultConfig()
	if cfg.Database.Path == "" {
		cfg.Database.Path, _ = config.GetDatabaseFile()
	}
	if cfg.Logging.LogDir == "" {
		cfg.Logging.LogDir, _ = config.GetLogDir()
	}
	return cfg
}
