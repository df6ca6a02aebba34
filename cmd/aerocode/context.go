package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"github.com/jhoicas/aerocode/internal/application/auth"
	"github.com/jhoicas/aerocode/internal/application/catalog"
	"github.com/jhoicas/aerocode/internal/application/report"
	"github.com/jhoicas/aerocode/internal/application/usecase"
	"github.com/jhoicas/aerocode/internal/infrastructure/backup"
	"github.com/jhoicas/aerocode/internal/infrastructure/codegen"
	"github.com/jhoicas/aerocode/internal/infrastructure/jsonstore"
	infrapdf "github.com/jhoicas/aerocode/internal/infrastructure/pdf"
	"github.com/jhoicas/aerocode/internal/interfaces/cli"
	"github.com/jhoicas/aerocode/pkg/config"
	"github.com/jhoicas/aerocode/pkg/logger"
)

// commandContext estado compartido por los comandos: configuración, logger y flags globales.
type commandContext struct {
	dataDirFlag  *string
	logLevelFlag *string

	cfg *config.Config
	log *logger.Logger
}

func newCommandContext(dataDirFlag, logLevelFlag *string) *commandContext {
	return &commandContext{dataDirFlag: dataDirFlag, logLevelFlag: logLevelFlag}
}

// ensureConfig carga la configuración, aplica los flags y crea los directorios de datos.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	if v := strings.TrimSpace(*c.dataDirFlag); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := strings.TrimSpace(*c.logLevelFlag); v != "" {
		cfg.App.LogLevel = v
	}
	if err := config.EnsureDirs(cfg.Storage); err != nil {
		return nil, err
	}
	c.cfg = cfg
	c.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	c.log.Debug().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_dir", cfg.Storage.DataDir).
		Msg("configuración cargada")
	return cfg, nil
}

// lock toma el bloqueo del directorio de datos; una sola sesión a la vez.
func (c *commandContext) lock() (*flock.Flock, error) {
	return jsonstore.Lock(c.cfg.Storage.LockPath())
}

// app grafo de dependencias de la sesión.
type app struct {
	catalog *catalog.Catalog
	deps    cli.Deps
}

// buildApp arma repositorios, catálogo y casos de uso, y carga los datos.
func (c *commandContext) buildApp(ctx context.Context) (*app, error) {
	cfg, log := c.cfg, c.log

	employeeRepo := jsonstore.NewEmployeeRepository(cfg.Storage.EmployeesDir(), log.Component("store"))
	aircraftRepo := jsonstore.NewAircraftRepository(cfg.Storage.AircraftDir(), log.Component("store"))
	cat := catalog.New(employeeRepo, aircraftRepo, log.Component("catalog"))
	if err := cat.Load(ctx); err != nil {
		return nil, err
	}

	authUC := auth.NewUseCase(cat,
		auth.SessionConfig{Secret: cfg.Session.Secret, TTLMinutes: cfg.Session.TTLMinutes, Issuer: cfg.Session.Issuer},
		auth.AdminConfig{Username: cfg.Auth.AdminUser, Password: cfg.Auth.AdminPassword},
		cfg.Auth.BcryptCost, log)

	return &app{
		catalog: cat,
		deps: cli.Deps{
			Catalog:   cat,
			Auth:      authUC,
			Employees: usecase.NewEmployeeUseCase(cat, cfg.Auth.BcryptCost, log),
			Aircraft:  usecase.NewAircraftUseCase(cat, codegen.AircraftCode, log),
			Stages:    usecase.NewStageUseCase(cat, log),
			Reports:   report.NewWriter(cfg.Storage.ReportsDir(), infrapdf.NewMarotoPDFGenerator(), log),
			Backup:    c.runBackup,
			Log:       log,
		},
	}, nil
}

func (c *commandContext) runBackup(ctx context.Context) (string, error) {
	return backup.Run(ctx, c.cfg.Storage.DataDir, c.cfg.Storage.BackupDir, time.Now(), c.log.Component("backup"))
}
