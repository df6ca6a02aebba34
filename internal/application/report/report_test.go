package report_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aerocode/internal/application/report"
	"github.com/jhoicas/aerocode/internal/domain/entity"
	"github.com/jhoicas/aerocode/internal/domain/production"
	"github.com/jhoicas/aerocode/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func aircraftWithStages(t *testing.T, n, completed int) *entity.Aircraft {
	t.Helper()
	a := entity.NewAircraft("R3P0RT01", "KC-390", entity.AircraftMilitary, 80, 5800)
	for i := 0; i < n; i++ {
		_, err := production.AddStage(a, "Etapa", "1 semana", 0)
		require.NoError(t, err)
	}
	for i := 0; i < completed; i++ {
		require.NoError(t, production.Start(a.Stages[i], a))
		require.NoError(t, production.Complete(a.Stages[i]))
	}
	return a
}

type fakePDF struct {
	doc []byte
	err error
}

func (f fakePDF) ProductionPDF(*entity.Aircraft, string, string) ([]byte, error) {
	return f.doc, f.err
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestProgress_Porcentaje(t *testing.T) {
	cases := []struct {
		name      string
		stages    int
		completed int
		want      string
	}{
		{"sin etapas", 0, 0, "0.00"},
		{"dos de tres", 3, 2, "66.67"},
		{"una de tres", 3, 1, "33.33"},
		{"todas", 2, 2, "100.00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := report.Progress(aircraftWithStages(t, tc.stages, tc.completed))
			assert.Equal(t, tc.want, got.Percent)
			assert.Equal(t, tc.completed, got.Completed)
			assert.Equal(t, tc.stages, got.Total)
		})
	}
}

func TestProduction_Contenido(t *testing.T) {
	a := aircraftWithStages(t, 1, 1)
	a.Parts = append(a.Parts, entity.NewPart("Motor", entity.PartImported, "Pratt"))
	emp := entity.NewEmployee("3", "Carla", "", "", "carla", "h", entity.RoleOperator)
	require.NoError(t, production.Associate(a.Stages[0], emp))

	text := report.Production(a, "Fuerza Aérea", "01/12/2026")

	assert.Contains(t, text, "Cliente: Fuerza Aérea")
	assert.Contains(t, text, "Fecha de entrega: 01/12/2026")
	assert.Contains(t, text, "Código: R3P0RT01")
	assert.Contains(t, text, "- Pieza: Motor (Proveedor: Pratt, Tipo: imported, Estado: in_production)")
	assert.Contains(t, text, "(Funcionarios: Carla)")
	assert.Contains(t, text, "Ninguna prueba registrada.")
}

func TestPartsYEmployees_Filas(t *testing.T) {
	a := aircraftWithStages(t, 0, 0)
	a.Parts = append(a.Parts, entity.NewPart("Ala", entity.PartNational, "Embraer"))
	rows := report.Parts([]*entity.Aircraft{a, entity.NewAircraft("EMPTY001", "X", entity.AircraftMilitary, 0, 0)})
	require.Len(t, rows, 1)
	assert.Equal(t, "R3P0RT01", rows[0].AircraftCode)

	emps := report.Employees([]*entity.Employee{entity.NewEmployee("1", "Ana", "", "", "ana", "secreto", entity.RoleAdministrator)})
	require.Len(t, emps, 1)
	assert.Equal(t, "ana", emps[0].Username)
}

func TestWriter_SaveProduction(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	w := report.NewWriter(dir, fakePDF{doc: []byte("%PDF-1.3 fake")}, logger.Nop())
	a := aircraftWithStages(t, 1, 0)

	paths, err := w.SaveProduction(context.Background(), a, "Cliente", "hoy")
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "production_R3P0RT01.txt"),
		filepath.Join(dir, "production_R3P0RT01.pdf"),
	}, paths)

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "REPORTE FINAL DE PRODUCCIÓN")
}

func TestWriter_FallaPDFConservaTexto(t *testing.T) {
	dir := t.TempDir()
	w := report.NewWriter(dir, fakePDF{err: errors.New("sin fuentes")}, logger.Nop())

	paths, err := w.SaveProduction(context.Background(), aircraftWithStages(t, 0, 0), "C", "D")
	require.Error(t, err)
	require.Len(t, paths, 1)
	_, statErr := os.Stat(paths[0])
	assert.NoError(t, statErr)
}
