package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/aerocode/internal/application/auth"
	"github.com/jhoicas/aerocode/internal/application/catalog"
	"github.com/jhoicas/aerocode/internal/application/dto"
	"github.com/jhoicas/aerocode/internal/application/report"
	"github.com/jhoicas/aerocode/internal/domain"
	"github.com/jhoicas/aerocode/internal/domain/entity"
	"github.com/jhoicas/aerocode/pkg/logger"
)

// EmployeeUseCase aplica reglas de negocio para funcionarios.
type EmployeeUseCase struct {
	catalog    *catalog.Catalog
	bcryptCost int
	log        *logger.Logger
}

// NewEmployeeUseCase construye el caso de uso sobre el catálogo de la sesión.
func NewEmployeeUseCase(c *catalog.Catalog, bcryptCost int, log *logger.Logger) *EmployeeUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &EmployeeUseCase{catalog: c, bcryptCost: bcryptCost, log: log.Component("employees")}
}

// Register crea un funcionario con el siguiente ID secuencial y la contraseña hasheada.
// Se persiste al cerrar la sesión.
func (uc *EmployeeUseCase) Register(ctx context.Context, in dto.RegisterEmployeeInput) (*entity.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	username := strings.TrimSpace(in.Username)
	if name == "" || username == "" || in.Password == "" {
		return nil, fmt.Errorf("nombre, usuario y contraseña son obligatorios: %w", domain.ErrInvalidInput)
	}
	if !entity.IsValidRole(in.PermissionLevel) {
		return nil, fmt.Errorf("nivel de permiso %q: %w", in.PermissionLevel, domain.ErrInvalidInput)
	}
	if _, err := uc.catalog.EmployeeByUsername(username); err == nil {
		return nil, fmt.Errorf("usuario %q: %w", username, domain.ErrDuplicate)
	}
	hash, err := auth.HashSecret(in.Password, uc.bcryptCost)
	if err != nil {
		return nil, err
	}
	emp := entity.NewEmployee(uc.catalog.NextEmployeeID(), name, strings.TrimSpace(in.Phone),
		strings.TrimSpace(in.Address), username, hash, in.PermissionLevel)
	if err := uc.catalog.AddEmployee(emp); err != nil {
		return nil, err
	}
	uc.log.Info().Str("employee_id", emp.ID).Str("role", emp.PermissionLevel).Msg("funcionario registrado")
	return emp, nil
}

// List filas de todos los funcionarios (sin hash).
func (uc *EmployeeUseCase) List() []dto.EmployeeRow {
	return report.Employees(uc.catalog.Employees())
}

// ByID obtiene un funcionario por ID.
func (uc *EmployeeUseCase) ByID(id string) (*entity.Employee, error) {
	return uc.catalog.EmployeeByID(strings.TrimSpace(id))
}
