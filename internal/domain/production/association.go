package production

import (
	"fmt"

	"github.com/jhoicas/aerocode/internal/domain"
	"github.com/jhoicas/aerocode/internal/domain/entity"
)

// Associate agrega el funcionario a la etapa. Idempotente por ID: si ya está, no cambia nada
// y devuelve ErrAlreadyAssociated.
func Associate(stage *entity.Stage, employee *entity.Employee) error {
	if stage == nil || employee == nil {
		return domain.ErrInvalidInput
	}
	if stage.HasEmployee(employee.ID) {
		return fmt.Errorf("funcionario %s en etapa %q: %w", employee.Name, stage.Name, domain.ErrAlreadyAssociated)
	}
	stage.Employees = append(stage.Employees, employee)
	return nil
}

// Disassociate quita el funcionario (por ID) de la etapa.
func Disassociate(stage *entity.Stage, employee *entity.Employee) error {
	if stage == nil || employee == nil {
		return domain.ErrInvalidInput
	}
	for i, e := range stage.Employees {
		if e.ID == employee.ID {
			stage.Employees = append(stage.Employees[:i:i], stage.Employees[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("funcionario %s en etapa %q: %w", employee.Name, stage.Name, domain.ErrNotAssociated)
}

// ListAssociated devuelve una copia de la pertenencia en orden de asociación.
func ListAssociated(stage *entity.Stage) []*entity.Employee {
	if stage == nil {
		return nil
	}
	out := make([]*entity.Employee, len(stage.Employees))
	copy(out, stage.Employees)
	return out
}

// StageRef etapa junto a la aeronave que la contiene.
type StageRef struct {
	Aircraft *entity.Aircraft
	Stage    *entity.Stage
}

// StagesFor etapas (de todas las aeronaves) a las que está asociado el funcionario.
func StagesFor(fleet []*entity.Aircraft, employeeID string) []StageRef {
	var refs []StageRef
	for _, a := range fleet {
		for _, s := range a.Stages {
			if s.HasEmployee(employeeID) {
				refs = append(refs, StageRef{Aircraft: a, Stage: s})
			}
		}
	}
	return refs
}
