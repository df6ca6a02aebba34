// Package report arma los reportes de la fábrica: reporte final de producción, avance de
// etapas, piezas y funcionarios.
package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/aerocode/internal/application/dto"
	"github.com/jhoicas/aerocode/internal/domain/entity"
	"github.com/jhoicas/aerocode/internal/domain/production"
)

var hundred = decimal.NewFromInt(100)

const ruler = "================================================="

// Production texto del reporte final de producción de una aeronave.
func Production(a *entity.Aircraft, client, deliveryDate string) string {
	var b strings.Builder
	b.WriteString(ruler + "\n")
	b.WriteString("    REPORTE FINAL DE PRODUCCIÓN - AEROCODE\n")
	b.WriteString(ruler + "\n\n")

	fmt.Fprintf(&b, "Cliente: %s\n", client)
	fmt.Fprintf(&b, "Fecha de entrega: %s\n\n", deliveryDate)

	b.WriteString("--- 1. Datos de la aeronave ---\n")
	fmt.Fprintf(&b, "Código: %s\n", a.Code)
	fmt.Fprintf(&b, "Modelo: %s\n", a.Model)
	fmt.Fprintf(&b, "Tipo: %s\n", a.Type)
	fmt.Fprintf(&b, "Capacidad: %d pasajeros\n", a.Capacity)
	fmt.Fprintf(&b, "Alcance: %d km\n\n", a.Range)

	b.WriteString("--- 2. Piezas utilizadas ---\n")
	if len(a.Parts) == 0 {
		b.WriteString("Ninguna pieza registrada.\n")
	}
	for _, p := range a.Parts {
		fmt.Fprintf(&b, "- Pieza: %s (Proveedor: %s, Tipo: %s, Estado: %s)\n", p.Name, p.Supplier, p.Type, p.Status)
	}
	b.WriteString("\n")

	b.WriteString("--- 3. Etapas de producción ---\n")
	if len(a.Stages) == 0 {
		b.WriteString("Ninguna etapa registrada.\n")
	}
	for _, s := range a.Stages {
		fmt.Fprintf(&b, "- Etapa %d: %s (Plazo: %s, Estado: %s)\n", s.Order, s.Name, s.Deadline, s.Status)
		fmt.Fprintf(&b, "  (Funcionarios: %s)\n", employeeNames(s))
	}
	b.WriteString("\n")

	b.WriteString("--- 4. Resultados de las pruebas ---\n")
	if len(a.Tests) == 0 {
		b.WriteString("Ninguna prueba registrada.\n")
	}
	for _, t := range a.Tests {
		fmt.Fprintf(&b, "- Prueba: %s (Resultado: %s)\n", t.Type, t.Result)
	}
	b.WriteString("\n")

	b.WriteString(ruler + "\n")
	b.WriteString("            Fin del reporte\n")
	b.WriteString(ruler + "\n")
	return b.String()
}

// Progress avance de etapas concluidas sobre el total, con porcentaje a 2 decimales.
// Sin etapas el porcentaje es 0.00.
func Progress(a *entity.Aircraft) dto.ProgressSummary {
	completed, total := production.Progress(a)
	percent := decimal.Zero
	if total > 0 {
		percent = decimal.NewFromInt(int64(completed)).Mul(hundred).Div(decimal.NewFromInt(int64(total)))
	}
	return dto.ProgressSummary{
		AircraftCode: a.Code,
		Model:        a.Model,
		Completed:    completed,
		Total:        total,
		Percent:      percent.StringFixed(2),
		Parts:        len(a.Parts),
		Tests:        len(a.Tests),
	}
}

// Parts filas de todas las piezas de todas las aeronaves.
func Parts(fleet []*entity.Aircraft) []dto.PartRow {
	var rows []dto.PartRow
	for _, a := range fleet {
		for _, p := range a.Parts {
			rows = append(rows, dto.PartRow{
				AircraftCode: a.Code,
				Name:         p.Name,
				Type:         p.Type,
				Supplier:     p.Supplier,
				Status:       p.Status,
			})
		}
	}
	return rows
}

func employeeNames(s *entity.Stage) string {
	if len(s.Employees) == 0 {
		return "Ninguno"
	}
	names := make([]string, 0, len(s.Employees))
	for _, e := range s.Employees {
		names = append(names, e.Name)
	}
	return strings.Join(names, ", ")
}

// Employees filas del reporte de funcionarios (sin hash de contraseña).
func Employees(employees []*entity.Employee) []dto.EmployeeRow {
	rows := make([]dto.EmployeeRow, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, dto.EmployeeRow{
			ID:              e.ID,
			Name:            e.Name,
			Phone:           e.Phone,
			Address:         e.Address,
			Username:        e.Username,
			PermissionLevel: e.PermissionLevel,
		})
	}
	return rows
}
