package dto

// RegisterAircraftInput entrada para registrar una aeronave; el código lo genera el sistema.
type RegisterAircraftInput struct {
	Model    string
	Type     string // commercial, military
	Capacity int
	Range    int
}

// AddPartInput entrada para agregar una pieza a una aeronave.
type AddPartInput struct {
	Name     string
	Type     string // national, imported
	Supplier string
}

// AddStageInput entrada para agregar una etapa. Order 0 = siguiente disponible.
type AddStageInput struct {
	Name     string
	Deadline string
	Order    int
}

// AddTestInput entrada para registrar una prueba.
type AddTestInput struct {
	Type   string
	Result string
}

// PartRow fila del reporte de piezas.
type PartRow struct {
	AircraftCode string
	Name         string
	Type         string
	Supplier     string
	Status       string
}

// StageRow fila de etapas (detalle de aeronave y "mis etapas").
type StageRow struct {
	AircraftCode string
	Index        int // posición en la aeronave, base 1
	Name         string
	Deadline     string
	Order        int
	Status       string
	Employees    []string // nombres
	CanStart     bool
}

// ProgressSummary avance de producción de una aeronave.
type ProgressSummary struct {
	AircraftCode string `json:"code" yaml:"code"`
	Model        string `json:"model" yaml:"model"`
	Completed    int    `json:"completed" yaml:"completed"`
	Total        int    `json:"total" yaml:"total"`
	Percent      string `json:"percent" yaml:"percent"` // 2 decimales, ej. "66.67"
	Parts        int    `json:"parts" yaml:"parts"`
	Tests        int    `json:"tests" yaml:"tests"`
}
