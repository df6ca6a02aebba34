package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/aerocode/internal/interfaces/cli"
)

func newRootCommand() *cobra.Command {
	var dataDirFlag string
	var logLevelFlag string

	ctx := newCommandContext(&dataDirFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:           "aerocode",
		Short:         "Registro de producción de aeronaves",
		Long:          "Sesión interactiva para gestionar funcionarios, aeronaves, piezas, etapas y pruebas.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, ctx)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "Directorio de datos (por defecto DATA_DIR o ./data)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Nivel de log: trace, debug, info, warn, error")

	rootCmd.AddCommand(newBackupCommand(ctx))
	rootCmd.AddCommand(newReportCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func runSession(cmd *cobra.Command, c *commandContext) error {
	lock, err := c.lock()
	if err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()

	runCtx := cmd.Context()
	a, err := c.buildApp(runCtx)
	if err != nil {
		return err
	}
	if _, err := a.deps.Auth.EnsureDefaultAdmin(runCtx); err != nil {
		return err
	}

	c.log.Info().Int("employees", len(a.catalog.Employees())).Int("aircraft", len(a.catalog.Aircraft())).Msg("sesión iniciada")
	return cli.NewSession(a.deps, os.Stdin, cmd.OutOrStdout()).Run(runCtx)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
