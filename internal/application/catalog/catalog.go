// Package catalog contiene el estado en memoria de la sesión: los funcionarios y las aeronaves
// cargados del almacenamiento. Se construye al arrancar, lo posee el driver de la sesión, se
// modifica solo a través de los casos de uso y se vuelca a disco al salir.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/aerocode/internal/domain"
	"github.com/jhoicas/aerocode/internal/domain/entity"
	"github.com/jhoicas/aerocode/internal/domain/repository"
	"github.com/jhoicas/aerocode/pkg/logger"
)

// Catalog grafo de entidades de la sesión.
type Catalog struct {
	employeeRepo repository.EmployeeRepository
	aircraftRepo repository.AircraftRepository
	log          *logger.Logger

	employees []*entity.Employee
	aircraft  []*entity.Aircraft
}

// New construye un catálogo vacío sobre los repositorios.
func New(employeeRepo repository.EmployeeRepository, aircraftRepo repository.AircraftRepository, log *logger.Logger) *Catalog {
	if log == nil {
		log = logger.Nop()
	}
	return &Catalog{employeeRepo: employeeRepo, aircraftRepo: aircraftRepo, log: log}
}

// Load carga funcionarios y después aeronaves; las etapas se resuelven contra los funcionarios
// recién cargados. Reemplaza el estado en memoria.
func (c *Catalog) Load(ctx context.Context) error {
	employees, err := c.employeeRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("cargar funcionarios: %w", err)
	}
	sortEmployees(employees)

	fleet, err := c.aircraftRepo.LoadAll(ctx, entity.NewEmployeeIndex(employees))
	if err != nil {
		return fmt.Errorf("cargar aeronaves: %w", err)
	}
	sort.SliceStable(fleet, func(i, j int) bool { return fleet[i].Code < fleet[j].Code })

	c.employees = employees
	c.aircraft = fleet
	c.log.Info().Int("employees", len(employees)).Int("aircraft", len(fleet)).Msg("catálogo cargado")
	return nil
}

// Flush guarda todos los funcionarios y aeronaves. Se detiene en el primer error.
func (c *Catalog) Flush(ctx context.Context) error {
	for _, e := range c.employees {
		if err := c.employeeRepo.Save(ctx, e); err != nil {
			return fmt.Errorf("guardar funcionario %s: %w", e.ID, err)
		}
	}
	for _, a := range c.aircraft {
		if err := c.aircraftRepo.Save(ctx, a); err != nil {
			return fmt.Errorf("guardar aeronave %s: %w", a.Code, err)
		}
	}
	c.log.Info().Int("employees", len(c.employees)).Int("aircraft", len(c.aircraft)).Msg("datos guardados")
	return nil
}

// SaveEmployee persiste un funcionario de inmediato (p. ej. el administrador inicial).
func (c *Catalog) SaveEmployee(ctx context.Context, e *entity.Employee) error {
	return c.employeeRepo.Save(ctx, e)
}

// Employees funcionarios en orden de ID. El slice es una copia; las entidades son compartidas.
func (c *Catalog) Employees() []*entity.Employee {
	out := make([]*entity.Employee, len(c.employees))
	copy(out, c.employees)
	return out
}

// Aircraft aeronaves en orden de registro (por código tras una carga).
func (c *Catalog) Aircraft() []*entity.Aircraft {
	out := make([]*entity.Aircraft, len(c.aircraft))
	copy(out, c.aircraft)
	return out
}

// EmployeeByID busca un funcionario por ID.
func (c *Catalog) EmployeeByID(id string) (*entity.Employee, error) {
	for _, e := range c.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, fmt.Errorf("funcionario %s: %w", id, domain.ErrNotFound)
}

// EmployeeByUsername busca por nombre de usuario sin distinguir mayúsculas (case folding Unicode).
func (c *Catalog) EmployeeByUsername(username string) (*entity.Employee, error) {
	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(username))
	for _, e := range c.employees {
		if fold.String(e.Username) == want {
			return e, nil
		}
	}
	return nil, fmt.Errorf("usuario %q: %w", username, domain.ErrNotFound)
}

// AircraftByCode busca una aeronave por código (sin distinguir mayúsculas).
func (c *Catalog) AircraftByCode(code string) (*entity.Aircraft, error) {
	code = strings.TrimSpace(code)
	for _, a := range c.aircraft {
		if strings.EqualFold(a.Code, code) {
			return a, nil
		}
	}
	return nil, fmt.Errorf("aeronave %s: %w", code, domain.ErrNotFound)
}

// NextEmployeeID siguiente ID secuencial.
func (c *Catalog) NextEmployeeID() string {
	return entity.NextEmployeeID(c.employees)
}

// AddEmployee registra un funcionario nuevo. ID y usuario deben ser únicos.
func (c *Catalog) AddEmployee(e *entity.Employee) error {
	if e == nil || e.ID == "" {
		return domain.ErrInvalidInput
	}
	if _, err := c.EmployeeByID(e.ID); err == nil {
		return fmt.Errorf("funcionario %s: %w", e.ID, domain.ErrDuplicate)
	}
	if _, err := c.EmployeeByUsername(e.Username); err == nil {
		return fmt.Errorf("usuario %q: %w", e.Username, domain.ErrDuplicate)
	}
	c.employees = append(c.employees, e)
	return nil
}

// AddAircraft registra una aeronave nueva con código único.
func (c *Catalog) AddAircraft(a *entity.Aircraft) error {
	if a == nil || a.Code == "" {
		return domain.ErrInvalidInput
	}
	if _, err := c.AircraftByCode(a.Code); err == nil {
		return fmt.Errorf("aeronave %s: %w", a.Code, domain.ErrDuplicate)
	}
	c.aircraft = append(c.aircraft, a)
	return nil
}

// sortEmployees ordena por ID numérico; los no numéricos van al final por texto.
func sortEmployees(employees []*entity.Employee) {
	sort.SliceStable(employees, func(i, j int) bool {
		a, errA := strconv.Atoi(employees[i].ID)
		b, errB := strconv.Atoi(employees[j].ID)
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return employees[i].ID < employees[j].ID
		}
	})
}
