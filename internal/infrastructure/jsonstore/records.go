package jsonstore

// Registros planos tal como se guardan en disco. Las claves JSON son el formato de almacenamiento.

// EmployeeRecord registro de data/employees/<id>.json.
type EmployeeRecord struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	Username        string `json:"username"`
	PasswordHash    string `json:"password_hash"`
	PermissionLevel string `json:"permission_level"`
}

// AircraftRecord registro de data/aircraft/<code>.json, con sus colecciones embebidas.
type AircraftRecord struct {
	Code     string        `json:"code"`
	Model    string        `json:"model"`
	Type     string        `json:"type"`
	Capacity int           `json:"capacity"`
	Range    int           `json:"range"`
	Parts    []PartRecord  `json:"parts"`
	Stages   []StageRecord `json:"stages"`
	Tests    []TestRecord  `json:"tests"`
}

// PartRecord pieza embebida en la aeronave.
type PartRecord struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Supplier string `json:"supplier"`
	Status   string `json:"status"`
}

// StageRecord etapa embebida; Employees guarda solo IDs, nunca copias del funcionario.
type StageRecord struct {
	Name      string   `json:"name"`
	Deadline  string   `json:"deadline"`
	Order     int      `json:"order"`
	Status    string   `json:"status"`
	Employees []string `json:"employees"`
}

// TestRecord prueba embebida en la aeronave.
type TestRecord struct {
	Type   string `json:"type"`
	Result string `json:"result"`
}
