package jsonstore

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/aerocode/internal/domain"
	"github.com/jhoicas/aerocode/internal/domain/entity"
	"github.com/jhoicas/aerocode/internal/domain/repository"
	"github.com/jhoicas/aerocode/pkg/logger"
)

// Hydrator reconstruye entidades tipadas desde registros planos.
type Hydrator struct {
	log *logger.Logger
}

// NewHydrator construye el hidratador.
func NewHydrator(log *logger.Logger) *Hydrator {
	if log == nil {
		log = logger.Nop()
	}
	return &Hydrator{log: log}
}

// Employee reconstruye un funcionario. No depende de otras entidades.
func (h *Hydrator) Employee(raw RawRecord) (*entity.Employee, error) {
	var rec EmployeeRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decodificar funcionario: %w", err)
	}
	if rec.ID == "" {
		return nil, fmt.Errorf("funcionario sin id: %w", domain.ErrInvalidInput)
	}
	return entity.NewEmployee(rec.ID, rec.Name, rec.Phone, rec.Address, rec.Username, rec.PasswordHash, rec.PermissionLevel), nil
}

// Aircraft reconstruye una aeronave con piezas, etapas y pruebas. Los IDs de funcionario de
// cada etapa se resuelven contra employees; los que no existen se descartan.
// Una etapa sin orden (o con orden < 1) toma su posición base 1 en la lista.
// employees es obligatorio: sin la tabla completa las asociaciones se perderían en silencio.
func (h *Hydrator) Aircraft(raw RawRecord, employees repository.EmployeeLookup) (*entity.Aircraft, error) {
	if employees == nil {
		return nil, fmt.Errorf("hidratar aeronave sin tabla de funcionarios: %w", domain.ErrInvalidInput)
	}
	var rec AircraftRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decodificar aeronave: %w", err)
	}
	if rec.Code == "" {
		return nil, fmt.Errorf("aeronave sin code: %w", domain.ErrInvalidInput)
	}

	a := entity.NewAircraft(rec.Code, rec.Model, rec.Type, rec.Capacity, rec.Range)
	for _, p := range rec.Parts {
		part := entity.NewPart(p.Name, p.Type, p.Supplier)
		switch {
		case entity.IsValidPartStatus(p.Status):
			part.Status = p.Status
		case p.Status != "":
			h.log.Warn().Str("aircraft", rec.Code).Str("part", p.Name).Str("status", p.Status).
				Msg("estado de pieza desconocido, se usa in_production")
		}
		a.Parts = append(a.Parts, part)
	}
	for i, s := range rec.Stages {
		if s.Order < 1 {
			h.log.Warn().Str("aircraft", rec.Code).Str("stage", s.Name).Int("order", s.Order).Int("position", i+1).
				Msg("etapa sin orden válido, se usa su posición")
			s.Order = i + 1
		}
		stage, missing := StageFromRecord(s, employees)
		if len(missing) > 0 {
			h.log.Debug().
				Str("aircraft", rec.Code).
				Str("stage", s.Name).
				Strs("missing_employees", missing).
				Msg("referencias de funcionario sin resolver descartadas")
		}
		if _, ok := entity.ParseStageStatus(s.Status); !ok && s.Status != "" {
			h.log.Warn().Str("aircraft", rec.Code).Str("stage", s.Name).Str("status", s.Status).
				Msg("estado de etapa desconocido, se usa pending")
		}
		a.Stages = append(a.Stages, stage)
	}
	for _, t := range rec.Tests {
		a.Tests = append(a.Tests, entity.NewTest(t.Type, t.Result))
	}
	return a, nil
}

// StageFromRecord reconstruye una etapa y devuelve los IDs que no se pudieron resolver.
func StageFromRecord(rec StageRecord, employees repository.EmployeeLookup) (*entity.Stage, []string) {
	stage := entity.NewStage(rec.Name, rec.Deadline, rec.Order)
	stage.Status, _ = entity.ParseStageStatus(rec.Status)

	var missing []string
	for _, id := range rec.Employees {
		emp, ok := employees.EmployeeByID(id)
		if !ok {
			missing = append(missing, id)
			continue
		}
		if stage.HasEmployee(emp.ID) {
			continue
		}
		stage.Employees = append(stage.Employees, emp)
	}
	return stage, missing
}

// EmployeeToRecord proyección de un funcionario a su registro.
func EmployeeToRecord(e *entity.Employee) EmployeeRecord {
	return EmployeeRecord{
		ID:              e.ID,
		Name:            e.Name,
		Phone:           e.Phone,
		Address:         e.Address,
		Username:        e.Username,
		PasswordHash:    e.PasswordHash,
		PermissionLevel: e.PermissionLevel,
	}
}

// AircraftToRecord proyección de una aeronave a su registro. Los funcionarios de cada etapa
// se reducen a sus IDs; la dirección inversa solo la hace Hydrator.Aircraft.
func AircraftToRecord(a *entity.Aircraft) AircraftRecord {
	rec := AircraftRecord{
		Code:     a.Code,
		Model:    a.Model,
		Type:     a.Type,
		Capacity: a.Capacity,
		Range:    a.Range,
		Parts:    make([]PartRecord, 0, len(a.Parts)),
		Stages:   make([]StageRecord, 0, len(a.Stages)),
		Tests:    make([]TestRecord, 0, len(a.Tests)),
	}
	for _, p := range a.Parts {
		rec.Parts = append(rec.Parts, PartRecord{Name: p.Name, Type: p.Type, Supplier: p.Supplier, Status: p.Status})
	}
	for _, s := range a.Stages {
		rec.Stages = append(rec.Stages, StageRecord{
			Name:      s.Name,
			Deadline:  s.Deadline,
			Order:     s.Order,
			Status:    string(s.Status),
			Employees: s.EmployeeIDs(),
		})
	}
	for _, t := range a.Tests {
		rec.Tests = append(rec.Tests, TestRecord{Type: t.Type, Result: t.Result})
	}
	return rec
}
