package entity

// Tipos de aeronave.
const (
	AircraftCommercial = "commercial"
	AircraftMilitary   = "military"
)

// AircraftTypes tipos válidos, en orden de presentación.
func AircraftTypes() []string {
	return []string{AircraftCommercial, AircraftMilitary}
}

// IsValidAircraftType indica si t es un tipo de aeronave conocido.
func IsValidAircraftType(t string) bool {
	return t == AircraftCommercial || t == AircraftMilitary
}

// Aircraft representa una aeronave. Es dueña exclusiva de sus piezas, etapas y pruebas.
type Aircraft struct {
	Code     string
	Model    string
	Type     string
	Capacity int // pasajeros
	Range    int // km

	Parts  []*Part
	Stages []*Stage
	Tests  []*Test
}

// NewAircraft construye una aeronave con colecciones vacías.
func NewAircraft(code, model, aircraftType string, capacity, rangeKm int) *Aircraft {
	return &Aircraft{
		Code:     code,
		Model:    model,
		Type:     aircraftType,
		Capacity: capacity,
		Range:    rangeKm,
		Parts:    []*Part{},
		Stages:   []*Stage{},
		Tests:    []*Test{},
	}
}

// Owns indica si stage pertenece a esta aeronave (identidad de puntero).
func (a *Aircraft) Owns(stage *Stage) bool {
	for _, s := range a.Stages {
		if s == stage {
			return true
		}
	}
	return false
}

// StagesWithOrder devuelve las etapas con el orden indicado.
func (a *Aircraft) StagesWithOrder(order int) []*Stage {
	var out []*Stage
	for _, s := range a.Stages {
		if s.Order == order {
			out = append(out, s)
		}
	}
	return out
}

// MaxStageOrder mayor orden registrado (0 si no hay etapas).
func (a *Aircraft) MaxStageOrder() int {
	maxOrder := 0
	for _, s := range a.Stages {
		if s.Order > maxOrder {
			maxOrder = s.Order
		}
	}
	return maxOrder
}
