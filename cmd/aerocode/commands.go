package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/aerocode/internal/application/dto"
	"github.com/jhoicas/aerocode/internal/application/report"
	"github.com/jhoicas/aerocode/internal/domain/entity"
	"github.com/jhoicas/aerocode/internal/infrastructure/backup"
	"github.com/jhoicas/aerocode/internal/interfaces/cli"
)

// version se reemplaza en build con -ldflags "-X main.version=...".
var version = "dev"

func newBackupCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Copia los datos a backup_<fecha>/ en el directorio de respaldos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lock, err := ctx.lock()
			if err != nil {
				return err
			}
			defer func() { _ = lock.Unlock() }()

			dest, err := backup.Run(cmd.Context(), ctx.cfg.Storage.DataDir, ctx.cfg.Storage.BackupDir, time.Now(), ctx.log.Component("backup"))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Respaldo concluido en %s\n", dest)
			return nil
		},
	}
}

func newReportCommand(ctx *commandContext) *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Reportes sin sesión interactiva",
	}

	var output string
	progressCmd := &cobra.Command{
		Use:   "progress [code...]",
		Short: "Avance de etapas por aeronave (todas si no se indica código)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.buildApp(cmd.Context())
			if err != nil {
				return err
			}
			var fleet []*entity.Aircraft
			if len(args) == 0 {
				fleet = a.deps.Aircraft.List()
			}
			for _, code := range args {
				ac, err := a.deps.Aircraft.ByCode(code)
				if err != nil {
					return err
				}
				fleet = append(fleet, ac)
			}
			summaries := make([]dto.ProgressSummary, 0, len(fleet))
			for _, ac := range fleet {
				summaries = append(summaries, report.Progress(ac))
			}
			return cli.WriteProgress(cmd.OutOrStdout(), output, summaries)
		},
	}
	progressCmd.Flags().StringVarP(&output, "output", "o", cli.FormatTable, "Formato: table, json, yaml")

	reportCmd.AddCommand(progressCmd)
	return reportCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Muestra la versión",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "aerocode %s\n", version)
		},
	}
}
