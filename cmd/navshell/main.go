package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/navshell/app"
	"github.com/jask/navshell/core"
	"github.com/jask/navshell/internal/config"
	"github.com/jask/navshell/internal/database"
	"github.com/jask/navshell/internal/database/repository"
	"github.com/jask/navshell/internal/i18n"
	"github.com/jask/navshell/internal/logx"
	"github.com/jask/navshell/internal/secrets"
	"github.com/jask/navshell/internal/service"
	"github.com/jask/navshell/internal/state"
	"github.com/jask/navshell/widgets"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logCloser, err := logx.Init(logx.Options{Path: cfg.Log.Path, Level: cfg.Log.Level, Development: cfg.Log.Development})
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer logCloser.Close()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}
	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.SeedDefaults(ctx, db); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}
	maintenance := &service.MaintenanceService{DB: db}
	if _, err := maintenance.PruneSessions(ctx, time.Now()); err != nil {
		logx.Error(err, "prune sessions")
	}

	auth, err := service.NewAuthService(
		repository.NewUserRepo(db),
		repository.NewSessionRepo(db),
		secrets.New(cfg.Session.SecretsDir),
		cfg.Session.Secret,
		cfg.Session.TTL,
	)
	if err != nil {
		log.Fatalf("auth: %v", err)
	}

	catalog, err := i18n.Load()
	if err != nil {
		log.Fatalf("locales: %v", err)
	}

	store := state.NewStore(nil)
	zones := widgets.NewZoneManager()
	defer zones.Close()

	m := app.NewModel(app.Deps{
		Store:        store,
		Actions:      core.NewDispatcher(auth, store),
		Localizer:    i18n.NewSwitch(catalog, cfg.UI.Locale),
		Locales:      catalog.Locales(),
		Zones:        zones,
		QuickActions: &service.QuickActionService{Repo: repository.NewQuickActionRepo(db)},
		Config:       cfg,
		SaveConfig:   config.Save,
	})
	defer m.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, opts...)
	config.Watch(func(c config.Config, err error) {
		p.Send(core.ConfigChangedMsg{Config: c, Err: err})
	})

	logx.Info("navshell starting", "db", cfg.Database.Path, "locale", cfg.UI.Locale)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
