package entity

// StageStatus ciclo de vida de una etapa de producción.
type StageStatus string

const (
	StagePending    StageStatus = "pending"
	StageInProgress StageStatus = "in_progress"
	StageCompleted  StageStatus = "completed"
)

// ParseStageStatus convierte un valor almacenado; desconocido -> pending, false.
func ParseStageStatus(value string) (StageStatus, bool) {
	switch s := StageStatus(value); s {
	case StagePending, StageInProgress, StageCompleted:
		return s, true
	}
	return StagePending, false
}

// Stage etapa de producción. Employees es pertenencia (no propiedad): los punteros
// apuntan a las mismas instancias del conjunto de funcionarios cargado.
type Stage struct {
	Name      string
	Deadline  string // texto libre, ej. "10 días"
	Order     int
	Status    StageStatus
	Employees []*Employee
}

// NewStage construye una etapa pendiente sin funcionarios.
func NewStage(name, deadline string, order int) *Stage {
	return &Stage{
		Name:      name,
		Deadline:  deadline,
		Order:     order,
		Status:    StagePending,
		Employees: []*Employee{},
	}
}

// HasEmployee indica si ya hay un funcionario con ese ID asociado.
func (s *Stage) HasEmployee(id string) bool {
	for _, e := range s.Employees {
		if e.ID == id {
			return true
		}
	}
	return false
}

// EmployeeIDs proyección de la pertenencia a identificadores, en orden de asociación.
func (s *Stage) EmployeeIDs() []string {
	ids := make([]string, 0, len(s.Employees))
	for _, e := range s.Employees {
		ids = append(ids, e.ID)
	}
	return ids
}
