package entity

import "strconv"

// Niveles de permiso válidos para Employee.
const (
	RoleAdministrator = "administrator"
	RoleEngineer      = "engineer"
	RoleOperator      = "operator"
)

// Roles lista ordenada de niveles de permiso (para menús de selección).
func Roles() []string {
	return []string{RoleAdministrator, RoleEngineer, RoleOperator}
}

// IsValidRole indica si role es uno de los niveles conocidos.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdministrator, RoleEngineer, RoleOperator:
		return true
	}
	return false
}

// Employee representa un funcionario. Identidad = ID; se comparte por puntero entre etapas.
type Employee struct {
	ID              string
	Name            string
	Phone           string
	Address         string
	Username        string
	PasswordHash    string // bcrypt hash, nunca la contraseña plana
	PermissionLevel string // administrator, engineer, operator
}

// NewEmployee construye un funcionario con los campos obligatorios.
func NewEmployee(id, name, phone, address, username, passwordHash, level string) *Employee {
	return &Employee{
		ID:              id,
		Name:            name,
		Phone:           phone,
		Address:         address,
		Username:        username,
		PasswordHash:    passwordHash,
		PermissionLevel: level,
	}
}

// NextEmployeeID devuelve max(ids numéricos) + 1. Conjunto vacío -> "1".
// IDs no numéricos se ignoran.
func NextEmployeeID(employees []*Employee) string {
	maxID := 0
	for _, e := range employees {
		if e == nil {
			continue
		}
		n, err := strconv.Atoi(e.ID)
		if err != nil {
			continue
		}
		if n > maxID {
			maxID = n
		}
	}
	return strconv.Itoa(maxID + 1)
}

// EmployeeIndex tabla de búsqueda id -> funcionario ya hidratado.
type EmployeeIndex map[string]*Employee

// NewEmployeeIndex indexa los funcionarios por ID. Ante IDs repetidos gana el primero.
func NewEmployeeIndex(employees []*Employee) EmployeeIndex {
	idx := make(EmployeeIndex, len(employees))
	for _, e := range employees {
		if e == nil {
			continue
		}
		if _, exists := idx[e.ID]; !exists {
			idx[e.ID] = e
		}
	}
	return idx
}

// EmployeeByID implementa repository.EmployeeLookup.
func (idx EmployeeIndex) EmployeeByID(id string) (*Employee, bool) {
	e, ok := idx[id]
	return e, ok
}
