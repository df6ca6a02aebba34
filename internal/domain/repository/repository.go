package repository

import (
	"context"

	"github.com/jhoicas/aerocode/internal/domain/entity"
)

// EmployeeLookup resuelve referencias de funcionario por ID contra un conjunto ya hidratado.
type EmployeeLookup interface {
	EmployeeByID(id string) (*entity.Employee, bool)
}

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
type EmployeeRepository interface {
	LoadAll(ctx context.Context) ([]*entity.Employee, error)
	Save(ctx context.Context, employee *entity.Employee) error
}

// AircraftRepository define el puerto de persistencia para Aircraft.
// LoadAll exige la tabla de funcionarios: las etapas se reconstruyen contra ella,
// por lo que los funcionarios deben cargarse antes.
type AircraftRepository interface {
	LoadAll(ctx context.Context, employees EmployeeLookup) ([]*entity.Aircraft, error)
	Save(ctx context.Context, aircraft *entity.Aircraft) error
}
