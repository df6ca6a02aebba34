package jsonstore

import (
	"context"

	"github.com/jhoicas/aerocode/internal/domain"
	"github.com/jhoicas/aerocode/internal/domain/entity"
	"github.com/jhoicas/aerocode/internal/domain/repository"
	"github.com/jhoicas/aerocode/pkg/logger"
)

var (
	_ repository.EmployeeRepository = (*EmployeeRepo)(nil)
	_ repository.AircraftRepository = (*AircraftRepo)(nil)
)

// EmployeeRepo implementación del puerto EmployeeRepository sobre archivos JSON.
type EmployeeRepo struct {
	store    *Store
	hydrator *Hydrator
}

// NewEmployeeRepository construye el adaptador de persistencia para funcionarios.
func NewEmployeeRepository(dir string, log *logger.Logger) *EmployeeRepo {
	return &EmployeeRepo{store: NewStore(dir, log), hydrator: NewHydrator(log)}
}

// LoadAll carga todos los funcionarios del directorio.
func (r *EmployeeRepo) LoadAll(ctx context.Context) ([]*entity.Employee, error) {
	return LoadAll(ctx, r.store, r.hydrator.Employee)
}

// Save persiste un funcionario en <id>.json.
func (r *EmployeeRepo) Save(ctx context.Context, e *entity.Employee) error {
	if e == nil {
		return domain.ErrInvalidInput
	}
	return r.store.Save(ctx, EmployeeToRecord(e))
}

// AircraftRepo implementación del puerto AircraftRepository sobre archivos JSON.
type AircraftRepo struct {
	store    *Store
	hydrator *Hydrator
}

// NewAircraftRepository construye el adaptador de persistencia para aeronaves.
func NewAircraftRepository(dir string, log *logger.Logger) *AircraftRepo {
	return &AircraftRepo{store: NewStore(dir, log), hydrator: NewHydrator(log)}
}

// LoadAll carga todas las aeronaves resolviendo las etapas contra employees.
func (r *AircraftRepo) LoadAll(ctx context.Context, employees repository.EmployeeLookup) ([]*entity.Aircraft, error) {
	if employees == nil {
		return nil, domain.ErrInvalidInput
	}
	return LoadAll(ctx, r.store, func(raw RawRecord) (*entity.Aircraft, error) {
		return r.hydrator.Aircraft(raw, employees)
	})
}

// Save persiste una aeronave en <code>.json con las etapas reducidas a IDs de funcionario.
func (r *AircraftRepo) Save(ctx context.Context, a *entity.Aircraft) error {
	if a == nil {
		return domain.ErrInvalidInput
	}
	return r.store.Save(ctx, AircraftToRecord(a))
}
