package jsonstore_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aerocode/internal/domain"
	"github.com/jhoicas/aerocode/internal/domain/entity"
	"github.com/jhoicas/aerocode/internal/domain/production"
	"github.com/jhoicas/aerocode/internal/infrastructure/jsonstore"
	"github.com/jhoicas/aerocode/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func staff() []*entity.Employee {
	return []*entity.Employee{
		entity.NewEmployee("1", "Ana", "1111", "SJC", "ana", "$2a$hash", entity.RoleAdministrator),
		entity.NewEmployee("2", "Bruno", "2222", "SJC", "bruno", "$2a$hash", entity.RoleEngineer),
		entity.NewEmployee("3", "Carla", "3333", "SP", "carla", "$2a$hash", entity.RoleOperator),
	}
}

// sampleAircraft aeronave con piezas, dos etapas con funcionarios y una prueba.
func sampleAircraft(t *testing.T, emps []*entity.Employee) *entity.Aircraft {
	t.Helper()
	a := entity.NewAircraft("9F3A7C1E", "E195-E2", entity.AircraftCommercial, 146, 4800)
	a.Parts = append(a.Parts, entity.NewPart("Tren de aterrizaje", entity.PartImported, "Safran"))
	ready := entity.NewPart("Fuselaje", entity.PartNational, "Embraer")
	ready.Status = entity.PartReady
	a.Parts = append(a.Parts, ready)

	s1, err := production.AddStage(a, "Estructura", "10 días", 0)
	require.NoError(t, err)
	s2, err := production.AddStage(a, "Aviónica", "5 días", 0)
	require.NoError(t, err)
	require.NoError(t, production.Associate(s1, emps[2]))
	require.NoError(t, production.Associate(s1, emps[1]))
	require.NoError(t, production.Associate(s2, emps[2]))
	require.NoError(t, production.Start(s1, a))

	a.Tests = append(a.Tests, entity.NewTest(entity.TestHydraulic, entity.TestApproved))
	return a
}

func rawOf(t *testing.T, v any) jsonstore.RawRecord {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestAircraftToRecord_EtapasGuardanIDs(t *testing.T) {
	emps := staff()
	a := sampleAircraft(t, emps)

	rec := jsonstore.AircraftToRecord(a)

	require.Len(t, rec.Stages, 2)
	assert.Equal(t, []string{"3", "2"}, rec.Stages[0].Employees)
	assert.Equal(t, "in_progress", rec.Stages[0].Status)
	assert.Equal(t, 1, rec.Stages[0].Order)
	assert.Equal(t, []string{"3"}, rec.Stages[1].Employees)

	doc := string(rawOf(t, rec))
	assert.NotContains(t, doc, "password_hash", "las etapas no embeben copias del funcionario")
}

func TestAircraftToRecord_ColeccionesVaciasSonArreglos(t *testing.T) {
	a := entity.NewAircraft("00000001", "T-27", entity.AircraftMilitary, 2, 1500)
	doc := string(rawOf(t, jsonstore.AircraftToRecord(a)))

	assert.Contains(t, doc, `"parts":[]`)
	assert.Contains(t, doc, `"stages":[]`)
	assert.Contains(t, doc, `"tests":[]`)
}

func TestHydrator_RoundTrip(t *testing.T) {
	emps := staff()
	original := sampleAircraft(t, emps)
	h := jsonstore.NewHydrator(logger.Nop())

	got, err := h.Aircraft(rawOf(t, jsonstore.AircraftToRecord(original)), entity.NewEmployeeIndex(emps))
	require.NoError(t, err)

	assert.Equal(t, original.Code, got.Code)
	assert.Equal(t, original.Model, got.Model)
	assert.Equal(t, original.Type, got.Type)
	assert.Equal(t, original.Capacity, got.Capacity)
	assert.Equal(t, original.Range, got.Range)
	assert.Equal(t, original.Parts, got.Parts)
	assert.Equal(t, original.Tests, got.Tests)

	require.Len(t, got.Stages, len(original.Stages))
	for i := range original.Stages {
		assert.Equal(t, original.Stages[i].Name, got.Stages[i].Name)
		assert.Equal(t, original.Stages[i].Deadline, got.Stages[i].Deadline)
		assert.Equal(t, original.Stages[i].Order, got.Stages[i].Order)
		assert.Equal(t, original.Stages[i].Status, got.Stages[i].Status)
		assert.ElementsMatch(t, original.Stages[i].EmployeeIDs(), got.Stages[i].EmployeeIDs())
	}
}

func TestHydrator_MismaInstanciaDeFuncionario(t *testing.T) {
	emps := staff()
	h := jsonstore.NewHydrator(logger.Nop())

	got, err := h.Aircraft(rawOf(t, jsonstore.AircraftToRecord(sampleAircraft(t, emps))), entity.NewEmployeeIndex(emps))
	require.NoError(t, err)

	carla := emps[2]
	assert.Same(t, carla, got.Stages[0].Employees[0])
	assert.Same(t, carla, got.Stages[1].Employees[0], "dos referencias al mismo ID resuelven a la misma instancia")
}

func TestHydrator_ReferenciaInexistenteSeDescarta(t *testing.T) {
	emps := staff()
	rec := jsonstore.AircraftRecord{
		Code: "DEADBEEF", Model: "KC-390", Type: entity.AircraftMilitary,
		Stages: []jsonstore.StageRecord{{
			Name: "Montaje", Order: 1, Status: "pending",
			Employees: []string{"1", "42", "3", "99"},
		}},
	}
	h := jsonstore.NewHydrator(logger.Nop())

	got, err := h.Aircraft(rawOf(t, rec), entity.NewEmployeeIndex(emps))
	require.NoError(t, err, "referencias rotas no son error")

	require.Len(t, got.Stages, 1)
	assert.Equal(t, []string{"1", "3"}, got.Stages[0].EmployeeIDs(),
		"la pertenencia baja exactamente en el número de referencias sin resolver")
}

func TestHydrator_SinTablaDeFuncionarios(t *testing.T) {
	h := jsonstore.NewHydrator(logger.Nop())
	_, err := h.Aircraft(rawOf(t, jsonstore.AircraftRecord{Code: "X"}), nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHydrator_TablaVaciaPierdeAsociaciones(t *testing.T) {
	emps := staff()
	h := jsonstore.NewHydrator(logger.Nop())

	got, err := h.Aircraft(rawOf(t, jsonstore.AircraftToRecord(sampleAircraft(t, emps))), entity.NewEmployeeIndex(nil))
	require.NoError(t, err)
	for _, s := range got.Stages {
		assert.Empty(t, s.Employees)
	}
}

func TestHydrator_ValoresPorDefecto(t *testing.T) {
	raw := jsonstore.RawRecord(`{
		"code": "C0DE0001",
		"model": "E175",
		"type": "commercial",
		"parts": [
			{"name": "Asiento", "type": "national", "supplier": "X"},
			{"name": "Ala", "type": "imported", "supplier": "Y", "status": "EM_PRODUCAO"}
		],
		"stages": [{"name": "Interior", "order": 1, "status": "desconocido", "employees": ["1", "1"]}]
	}`)
	h := jsonstore.NewHydrator(logger.Nop())

	got, err := h.Aircraft(raw, entity.NewEmployeeIndex(staff()))
	require.NoError(t, err)

	assert.Equal(t, entity.PartInProduction, got.Parts[0].Status)
	assert.Equal(t, entity.PartInProduction, got.Parts[1].Status, "un estado desconocido vuelve al valor por defecto")
	assert.Equal(t, entity.StagePending, got.Stages[0].Status)
	assert.Equal(t, []string{"1"}, got.Stages[0].EmployeeIDs(), "IDs repetidos en disco no duplican la pertenencia")
	assert.NotNil(t, got.Tests)
}

func TestHydrator_EtapasSinOrdenTomanSuPosicion(t *testing.T) {
	raw := jsonstore.RawRecord(`{
		"code": "LEGACY01",
		"model": "EMB-110",
		"type": "commercial",
		"stages": [
			{"name": "Fuselaje", "status": "pending"},
			{"name": "Pintura", "order": -3, "status": "pending"}
		]
	}`)
	h := jsonstore.NewHydrator(logger.Nop())

	got, err := h.Aircraft(raw, entity.NewEmployeeIndex(staff()))
	require.NoError(t, err)
	require.Len(t, got.Stages, 2)
	first, second := got.Stages[0], got.Stages[1]
	assert.Equal(t, 1, first.Order)
	assert.Equal(t, 2, second.Order)

	assert.True(t, production.CanStart(first, got))
	assert.False(t, production.CanStart(second, got))
	require.NoError(t, production.Start(first, got))
	require.NoError(t, production.Complete(first))
	require.NoError(t, production.Start(second, got))
}

func TestHydrator_EmployeeSinID(t *testing.T) {
	h := jsonstore.NewHydrator(logger.Nop())
	_, err := h.Employee(jsonstore.RawRecord(`{"name": "Sin id"}`))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRepositorios_PersistenciaCompleta(t *testing.T) {
	root := t.TempDir()
	empDir := filepath.Join(root, "employees")
	airDir := filepath.Join(root, "aircraft")
	require.NoError(t, os.MkdirAll(empDir, 0o750))
	require.NoError(t, os.MkdirAll(airDir, 0o750))
	ctx := context.Background()

	employeeRepo := jsonstore.NewEmployeeRepository(empDir, logger.Nop())
	aircraftRepo := jsonstore.NewAircraftRepository(airDir, logger.Nop())

	emps := staff()
	for _, e := range emps {
		require.NoError(t, employeeRepo.Save(ctx, e))
	}
	original := sampleAircraft(t, emps)
	require.NoError(t, aircraftRepo.Save(ctx, original))

	loadedEmps, err := employeeRepo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loadedEmps, 3)

	idx := entity.NewEmployeeIndex(loadedEmps)
	fleet, err := aircraftRepo.LoadAll(ctx, idx)
	require.NoError(t, err)
	require.Len(t, fleet, 1)

	carla, _ := idx.EmployeeByID("3")
	assert.Same(t, carla, fleet[0].Stages[0].Employees[0])
	assert.Equal(t, []string{"3", "2"}, fleet[0].Stages[0].EmployeeIDs())

	_, err = aircraftRepo.LoadAll(ctx, nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
