package usecase

import (
	"fmt"

	"github.com/jhoicas/aerocode/internal/application/catalog"
	"github.com/jhoicas/aerocode/internal/application/dto"
	"github.com/jhoicas/aerocode/internal/domain"
	"github.com/jhoicas/aerocode/internal/domain/entity"
	"github.com/jhoicas/aerocode/internal/domain/production"
	"github.com/jhoicas/aerocode/pkg/logger"
)

// StageUseCase ciclo de vida de las etapas y asociación de funcionarios.
// Las etapas se identifican por código de aeronave y posición (base 1).
type StageUseCase struct {
	catalog *catalog.Catalog
	log     *logger.Logger
}

// NewStageUseCase construye el caso de uso.
func NewStageUseCase(c *catalog.Catalog, log *logger.Logger) *StageUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &StageUseCase{catalog: c, log: log.Component("stages")}
}

// Start inicia la etapa (pending -> in_progress).
func (uc *StageUseCase) Start(code string, index int) (*entity.Stage, error) {
	a, s, err := uc.locate(code, index)
	if err != nil {
		return nil, err
	}
	if err := production.Start(s, a); err != nil {
		return nil, err
	}
	uc.log.Info().Str("code", a.Code).Str("stage", s.Name).Msg("etapa iniciada")
	return s, nil
}

// Complete concluye la etapa (in_progress -> completed).
func (uc *StageUseCase) Complete(code string, index int) (*entity.Stage, error) {
	a, s, err := uc.locate(code, index)
	if err != nil {
		return nil, err
	}
	if err := production.Complete(s); err != nil {
		return nil, err
	}
	uc.log.Info().Str("code", a.Code).Str("stage", s.Name).Msg("etapa concluida")
	return s, nil
}

// Associate asocia el funcionario employeeID a la etapa.
func (uc *StageUseCase) Associate(code string, index int, employeeID string) error {
	_, s, err := uc.locate(code, index)
	if err != nil {
		return err
	}
	emp, err := uc.catalog.EmployeeByID(employeeID)
	if err != nil {
		return err
	}
	if err := production.Associate(s, emp); err != nil {
		return err
	}
	uc.log.Info().Str("stage", s.Name).Str("employee_id", emp.ID).Msg("funcionario asociado")
	return nil
}

// Disassociate quita el funcionario employeeID de la etapa.
func (uc *StageUseCase) Disassociate(code string, index int, employeeID string) error {
	_, s, err := uc.locate(code, index)
	if err != nil {
		return err
	}
	emp, err := uc.catalog.EmployeeByID(employeeID)
	if err != nil {
		return err
	}
	if err := production.Disassociate(s, emp); err != nil {
		return err
	}
	uc.log.Info().Str("stage", s.Name).Str("employee_id", emp.ID).Msg("funcionario desasociado")
	return nil
}

// Associated funcionarios de la etapa en orden de asociación.
func (uc *StageUseCase) Associated(code string, index int) ([]*entity.Employee, error) {
	_, s, err := uc.locate(code, index)
	if err != nil {
		return nil, err
	}
	return production.ListAssociated(s), nil
}

// Stages filas de las etapas de una aeronave.
func (uc *StageUseCase) Stages(code string) ([]dto.StageRow, error) {
	a, err := uc.catalog.AircraftByCode(code)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.StageRow, 0, len(a.Stages))
	for i, s := range a.Stages {
		rows = append(rows, toStageRow(a, i, s))
	}
	return rows, nil
}

// StagesForEmployee etapas de todas las aeronaves asociadas al funcionario ("mis etapas").
func (uc *StageUseCase) StagesForEmployee(employeeID string) []dto.StageRow {
	refs := production.StagesFor(uc.catalog.Aircraft(), employeeID)
	rows := make([]dto.StageRow, 0, len(refs))
	for _, ref := range refs {
		rows = append(rows, toStageRow(ref.Aircraft, indexOf(ref.Aircraft, ref.Stage), ref.Stage))
	}
	return rows
}

func (uc *StageUseCase) locate(code string, index int) (*entity.Aircraft, *entity.Stage, error) {
	a, err := uc.catalog.AircraftByCode(code)
	if err != nil {
		return nil, nil, err
	}
	if index < 1 || index > len(a.Stages) {
		return nil, nil, fmt.Errorf("etapa %d de la aeronave %s: %w", index, a.Code, domain.ErrNotFound)
	}
	return a, a.Stages[index-1], nil
}

func indexOf(a *entity.Aircraft, s *entity.Stage) int {
	for i, candidate := range a.Stages {
		if candidate == s {
			return i
		}
	}
	return -1
}

func toStageRow(a *entity.Aircraft, i int, s *entity.Stage) dto.StageRow {
	names := make([]string, 0, len(s.Employees))
	for _, e := range s.Employees {
		names = append(names, e.Name)
	}
	return dto.StageRow{
		AircraftCode: a.Code,
		Index:        i + 1,
		Name:         s.Name,
		Deadline:     s.Deadline,
		Order:        s.Order,
		Status:       string(s.Status),
		Employees:    names,
		CanStart:     production.CanStart(s, a),
	}
}
