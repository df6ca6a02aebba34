package dto

// RegisterEmployeeInput entrada para registrar un funcionario (contraseña en texto, se hashea en el use case).
type RegisterEmployeeInput struct {
	Name            string
	Phone           string
	Address         string
	Username        string
	Password        string
	PermissionLevel string // administrator, engineer, operator
}

// EmployeeRow fila de listado de funcionarios (sin hash de contraseña).
type EmployeeRow struct {
	ID              string
	Name            string
	Phone           string
	Address         string
	Username        string
	PermissionLevel string
}
