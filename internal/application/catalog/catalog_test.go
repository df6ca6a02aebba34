package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aerocode/internal/application/catalog"
	"github.com/jhoicas/aerocode/internal/domain"
	"github.com/jhoicas/aerocode/internal/domain/entity"
	"github.com/jhoicas/aerocode/internal/domain/production"
	"github.com/jhoicas/aerocode/internal/infrastructure/jsonstore"
	"github.com/jhoicas/aerocode/pkg/logger"
)

func newCatalog(t *testing.T, root string) *catalog.Catalog {
	t.Helper()
	empDir := filepath.Join(root, "employees")
	airDir := filepath.Join(root, "aircraft")
	require.NoError(t, os.MkdirAll(empDir, 0o750))
	require.NoError(t, os.MkdirAll(airDir, 0o750))
	return catalog.New(
		jsonstore.NewEmployeeRepository(empDir, logger.Nop()),
		jsonstore.NewAircraftRepository(airDir, logger.Nop()),
		logger.Nop(),
	)
}

func TestCatalog_FlushYRecarga(t *testing.T) {
	root := t.TempDir()
	ctx := context.Background()
	c := newCatalog(t, root)
	require.NoError(t, c.Load(ctx))

	for _, id := range []string{"10", "2", "1"} {
		require.NoError(t, c.AddEmployee(entity.NewEmployee(id, "F"+id, "", "", "user"+id, "h", entity.RoleOperator)))
	}
	a := entity.NewAircraft("B0000002", "E190", entity.AircraftCommercial, 100, 4000)
	require.NoError(t, c.AddAircraft(a))
	require.NoError(t, c.AddAircraft(entity.NewAircraft("A0000001", "T-27", entity.AircraftMilitary, 2, 1500)))
	stage, err := production.AddStage(a, "Montaje", "3 días", 0)
	require.NoError(t, err)
	emp, err := c.EmployeeByID("2")
	require.NoError(t, err)
	require.NoError(t, production.Associate(stage, emp))

	require.NoError(t, c.Flush(ctx))

	reloaded := newCatalog(t, root)
	require.NoError(t, reloaded.Load(ctx))

	var ids []string
	for _, e := range reloaded.Employees() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"1", "2", "10"}, ids, "orden numérico de IDs")

	fleet := reloaded.Aircraft()
	require.Len(t, fleet, 2)
	assert.Equal(t, "A0000001", fleet[0].Code)

	got, err := reloaded.AircraftByCode("b0000002")
	require.NoError(t, err)
	emp2, err := reloaded.EmployeeByID("2")
	require.NoError(t, err)
	assert.Same(t, emp2, got.Stages[0].Employees[0])
	assert.Equal(t, "11", reloaded.NextEmployeeID())
}

func TestCatalog_Duplicados(t *testing.T) {
	c := newCatalog(t, t.TempDir())
	require.NoError(t, c.AddEmployee(entity.NewEmployee("1", "Ana", "", "", "ana", "h", entity.RoleAdministrator)))

	err := c.AddEmployee(entity.NewEmployee("1", "Otra", "", "", "otra", "h", entity.RoleOperator))
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	err = c.AddEmployee(entity.NewEmployee("2", "Ana bis", "", "", "ANA", "h", entity.RoleOperator))
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el usuario es único sin distinguir mayúsculas")

	require.NoError(t, c.AddAircraft(entity.NewAircraft("X1", "M", entity.AircraftMilitary, 1, 1)))
	assert.ErrorIs(t, c.AddAircraft(entity.NewAircraft("X1", "M", entity.AircraftMilitary, 1, 1)), domain.ErrDuplicate)
}

func TestCatalog_NoEncontrado(t *testing.T) {
	c := newCatalog(t, t.TempDir())

	_, err := c.EmployeeByID("99")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = c.EmployeeByUsername("nadie")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = c.AircraftByCode("ZZZ")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalog_FlushAbortaSinIdentificador(t *testing.T) {
	c := newCatalog(t, t.TempDir())
	// un código con separador no es un nombre de archivo válido
	require.NoError(t, c.AddAircraft(entity.NewAircraft("a/b", "M", entity.AircraftMilitary, 1, 1)))

	err := c.Flush(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotIdentifiable)
}
