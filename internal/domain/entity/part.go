package entity

// Tipos de pieza.
const (
	PartNational = "national"
	PartImported = "imported"
)

// Estados de pieza.
const (
	PartInProduction = "in_production"
	PartInTransport  = "in_transport"
	PartReady        = "ready"
)

// PartTypes tipos válidos de pieza.
func PartTypes() []string { return []string{PartNational, PartImported} }

// PartStatuses estados válidos de pieza, en orden de presentación.
func PartStatuses() []string { return []string{PartInProduction, PartInTransport, PartReady} }

// IsValidPartType indica si t es un tipo de pieza conocido.
func IsValidPartType(t string) bool { return t == PartNational || t == PartImported }

// IsValidPartStatus indica si s es un estado de pieza conocido.
func IsValidPartStatus(s string) bool {
	switch s {
	case PartInProduction, PartInTransport, PartReady:
		return true
	}
	return false
}

// Part pieza de una aeronave; no tiene identidad propia de persistencia.
type Part struct {
	Name     string
	Type     string
	Supplier string
	Status   string
}

// NewPart construye una pieza en estado inicial in_production.
func NewPart(name, partType, supplier string) *Part {
	return &Part{Name: name, Type: partType, Supplier: supplier, Status: PartInProduction}
}
