package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/aerocode/internal/application/auth"
	"github.com/jhoicas/aerocode/internal/application/dto"
	"github.com/jhoicas/aerocode/internal/application/report"
	"github.com/jhoicas/aerocode/internal/domain/entity"
)

// ── Administrador ─────────────────────────────────────────────────────────────

// Roles habilitados por ítem de menú.
var (
	adminOnly    = []string{entity.RoleAdministrator}
	engineerOnly = []string{entity.RoleEngineer}
	operatorOnly = []string{entity.RoleOperator}
	// aircraftViewers consultan los detalles de una aeronave desde su propio menú.
	aircraftViewers = []string{entity.RoleAdministrator, entity.RoleEngineer}
)

func (s *Session) showAircraftItem() menuItem {
	return menuItem{"Ver detalles de aeronave", aircraftViewers, s.showAircraft}
}

func (s *Session) administratorItems() []menuItem {
	return []menuItem{
		{"Registrar funcionario", adminOnly, s.registerEmployee},
		{"Registrar aeronave", adminOnly, s.registerAircraft},
		s.showAircraftItem(),
		{"Generar reporte final de producción", adminOnly, s.productionReport},
		{"Reporte de funcionarios", adminOnly, s.employeesReport},
		{"Reporte de piezas", adminOnly, s.partsReport},
		{"Reporte de avance de aeronave", adminOnly, s.progressReport},
		{"Respaldar datos", adminOnly, s.backup},
	}
}

func (s *Session) registerEmployee(ctx context.Context) error {
	fmt.Fprintln(s.out, "\n--- Registro de funcionario ---")
	var in dto.RegisterEmployeeInput
	var err error
	if in.Name, err = s.prompt("Nombre: "); err != nil {
		return err
	}
	if in.Phone, err = s.prompt("Teléfono: "); err != nil {
		return err
	}
	if in.Address, err = s.prompt("Dirección: "); err != nil {
		return err
	}
	if in.Username, err = s.prompt("Usuario: "); err != nil {
		return err
	}
	if in.Password, err = s.readSecret("Contraseña: "); err != nil {
		return err
	}
	if in.PermissionLevel, err = s.chooseOption("Nivel de permiso:", entity.Roles()); err != nil {
		return err
	}
	emp, err := s.deps.Employees.Register(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Funcionario %s registrado con ID %s.\n", emp.Name, emp.ID)
	return nil
}

func (s *Session) registerAircraft(ctx context.Context) error {
	fmt.Fprintln(s.out, "\n--- Registro de aeronave ---")
	var in dto.RegisterAircraftInput
	var err error
	if in.Model, err = s.prompt("Modelo: "); err != nil {
		return err
	}
	if in.Type, err = s.chooseOption("Tipo de aeronave:", entity.AircraftTypes()); err != nil {
		return err
	}
	if in.Capacity, err = s.promptInt("Capacidad (pasajeros): ", 0); err != nil {
		return err
	}
	if in.Range, err = s.promptInt("Alcance (km): ", 0); err != nil {
		return err
	}
	a, err := s.deps.Aircraft.Register(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Aeronave %s registrada con código %s.\n", a.Model, a.Code)
	return nil
}

func (s *Session) showAircraft(_ context.Context) error {
	a, err := s.chooseAircraft("Elija la aeronave:")
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "\nAeronave %s - %s (%s)\nCapacidad: %d pasajeros | Alcance: %d km\n",
		a.Code, a.Model, a.Type, a.Capacity, a.Range)

	fmt.Fprintln(s.out, "\nPiezas:")
	parts := make([][]string, 0, len(a.Parts))
	for i, p := range a.Parts {
		parts = append(parts, []string{strconv.Itoa(i + 1), p.Name, p.Type, p.Supplier, p.Status})
	}
	fmt.Fprintln(s.out, partListing.render(parts))

	rows, err := s.deps.Stages.Stages(a.Code)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "\nEtapas:")
	fmt.Fprintln(s.out, renderStageRows(stageListing, rows))

	fmt.Fprintln(s.out, "\nPruebas:")
	tests := make([][]string, 0, len(a.Tests))
	for i, t := range a.Tests {
		tests = append(tests, []string{strconv.Itoa(i + 1), t.Type, t.Result})
	}
	fmt.Fprintln(s.out, testListing.render(tests))
	return nil
}

func (s *Session) productionReport(ctx context.Context) error {
	a, err := s.chooseAircraft("Elija la aeronave para el reporte:")
	if err != nil {
		return err
	}
	client, err := s.prompt("Nombre del cliente: ")
	if err != nil {
		return err
	}
	delivery, err := s.prompt("Fecha de entrega (DD/MM/AAAA): ")
	if err != nil {
		return err
	}
	paths, err := s.deps.Reports.SaveProduction(ctx, a, client, delivery)
	for _, p := range paths {
		fmt.Fprintf(s.out, "Reporte guardado en %s\n", p)
	}
	return err
}

func (s *Session) employeesReport(_ context.Context) error {
	rows := s.deps.Employees.List()
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{r.ID, r.Name, r.Username, r.PermissionLevel, r.Phone, r.Address})
	}
	fmt.Fprintln(s.out, employeeListing.render(out))
	return nil
}

func (s *Session) partsReport(_ context.Context) error {
	rows := report.Parts(s.deps.Aircraft.List())
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{r.AircraftCode, r.Name, r.Type, r.Supplier, r.Status})
	}
	fmt.Fprintln(s.out, fleetPartListing.render(out))
	return nil
}

func (s *Session) progressReport(_ context.Context) error {
	a, err := s.chooseAircraft("Elija la aeronave:")
	if err != nil {
		return err
	}
	p := report.Progress(a)
	fmt.Fprintf(s.out, "\nAvance de la aeronave %s (%s)\n", p.Model, p.AircraftCode)
	if p.Total == 0 {
		fmt.Fprintln(s.out, "No hay etapas de producción definidas.")
	} else {
		fmt.Fprintf(s.out, "Etapas concluidas: %d de %d\n", p.Completed, p.Total)
	}
	fmt.Fprintf(s.out, "Porcentaje: %s%%\n", p.Percent)
	fmt.Fprintf(s.out, "Piezas registradas: %d\nPruebas realizadas: %d\n", p.Parts, p.Tests)
	return nil
}

func (s *Session) backup(ctx context.Context) error {
	if s.deps.Backup == nil {
		return fmt.Errorf("respaldo no configurado")
	}
	// el respaldo copia lo que hay en disco
	if err := s.deps.Catalog.Flush(ctx); err != nil {
		return err
	}
	dest, err := s.deps.Backup(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Respaldo concluido en %s\n", dest)
	return nil
}

// ── Ingeniero ─────────────────────────────────────────────────────────────────

func (s *Session) engineerItems() []menuItem {
	return []menuItem{
		{"Agregar pieza a una aeronave", engineerOnly, s.addPart},
		{"Agregar etapa de producción", engineerOnly, s.addStage},
		{"Registrar prueba", engineerOnly, s.addTest},
		{"Asociar funcionario a una etapa", engineerOnly, s.associate},
		{"Desasociar funcionario de una etapa", engineerOnly, s.disassociate},
		s.showAircraftItem(),
	}
}

func (s *Session) addPart(_ context.Context) error {
	a, err := s.chooseAircraft("Elija la aeronave:")
	if err != nil {
		return err
	}
	var in dto.AddPartInput
	if in.Name, err = s.prompt("Nombre de la pieza: "); err != nil {
		return err
	}
	if in.Type, err = s.chooseOption("Tipo de pieza:", entity.PartTypes()); err != nil {
		return err
	}
	if in.Supplier, err = s.prompt("Proveedor: "); err != nil {
		return err
	}
	p, err := s.deps.Aircraft.AddPart(a.Code, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Pieza %s agregada a %s.\n", p.Name, a.Code)
	return nil
}

func (s *Session) addStage(_ context.Context) error {
	a, err := s.chooseAircraft("Elija la aeronave:")
	if err != nil {
		return err
	}
	var in dto.AddStageInput
	if in.Name, err = s.prompt("Nombre de la etapa: "); err != nil {
		return err
	}
	if in.Deadline, err = s.prompt("Plazo (ej. 10 días): "); err != nil {
		return err
	}
	next := a.MaxStageOrder() + 1
	if in.Order, err = s.promptInt(fmt.Sprintf("Orden [%d]: ", next), 0); err != nil {
		return err
	}
	st, err := s.deps.Aircraft.AddStage(a.Code, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Etapa %s agregada con orden %d.\n", st.Name, st.Order)
	return nil
}

func (s *Session) addTest(_ context.Context) error {
	a, err := s.chooseAircraft("Elija la aeronave:")
	if err != nil {
		return err
	}
	var in dto.AddTestInput
	if in.Type, err = s.chooseOption("Tipo de prueba:", entity.TestTypes()); err != nil {
		return err
	}
	if in.Result, err = s.chooseOption("Resultado:", entity.TestResults()); err != nil {
		return err
	}
	if _, err := s.deps.Aircraft.AddTest(a.Code, in); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Prueba %s (%s) registrada en %s.\n", in.Type, in.Result, a.Code)
	return nil
}

func (s *Session) associate(_ context.Context) error {
	a, err := s.chooseAircraft("Elija la aeronave:")
	if err != nil {
		return err
	}
	idx, err := s.chooseStage(a)
	if err != nil {
		return err
	}
	emp, err := s.chooseEmployee("Funcionario a asociar:", s.deps.Catalog.Employees())
	if err != nil {
		return err
	}
	if err := s.deps.Stages.Associate(a.Code, idx, emp.ID); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s asociado a la etapa %s.\n", emp.Name, a.Stages[idx-1].Name)
	return nil
}

func (s *Session) disassociate(_ context.Context) error {
	a, err := s.chooseAircraft("Elija la aeronave:")
	if err != nil {
		return err
	}
	idx, err := s.chooseStage(a)
	if err != nil {
		return err
	}
	members, err := s.deps.Stages.Associated(a.Code, idx)
	if err != nil {
		return err
	}
	emp, err := s.chooseEmployee("Funcionario a desasociar:", members)
	if err != nil {
		return err
	}
	if err := s.deps.Stages.Disassociate(a.Code, idx, emp.ID); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s desasociado de la etapa %s.\n", emp.Name, a.Stages[idx-1].Name)
	return nil
}

// ── Operador ──────────────────────────────────────────────────────────────────

func (s *Session) operatorItems(p *auth.Principal) []menuItem {
	id := p.Employee.ID
	return []menuItem{
		{"Ver mis etapas", operatorOnly, func(context.Context) error { return s.myStages(id) }},
		{"Iniciar etapa", operatorOnly, func(context.Context) error { return s.changeStage(id, true) }},
		{"Concluir etapa", operatorOnly, func(context.Context) error { return s.changeStage(id, false) }},
		{"Actualizar estado de pieza", operatorOnly, s.updatePartStatus},
	}
}

func (s *Session) myStages(employeeID string) error {
	fmt.Fprintln(s.out, renderStageRows(myStageListing, s.deps.Stages.StagesForEmployee(employeeID)))
	return nil
}

func (s *Session) changeStage(employeeID string, start bool) error {
	rows := s.deps.Stages.StagesForEmployee(employeeID)
	labels := make([]string, 0, len(rows))
	for _, r := range rows {
		labels = append(labels, fmt.Sprintf("%s - %d. %s (%s)", r.AircraftCode, r.Order, r.Name, r.Status))
	}
	i, err := s.chooseIndex("Sus etapas:", labels)
	if err != nil {
		return err
	}
	r := rows[i]
	if start {
		if _, err := s.deps.Stages.Start(r.AircraftCode, r.Index); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Etapa %s iniciada.\n", r.Name)
		return nil
	}
	if _, err := s.deps.Stages.Complete(r.AircraftCode, r.Index); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Etapa %s concluida.\n", r.Name)
	return nil
}

func (s *Session) updatePartStatus(_ context.Context) error {
	a, err := s.chooseAircraft("Elija la aeronave que contiene la pieza:")
	if err != nil {
		return err
	}
	labels := make([]string, 0, len(a.Parts))
	for _, p := range a.Parts {
		labels = append(labels, fmt.Sprintf("%s (estado: %s)", p.Name, p.Status))
	}
	i, err := s.chooseIndex("Piezas:", labels)
	if err != nil {
		return err
	}
	status, err := s.chooseOption("Nuevo estado:", entity.PartStatuses())
	if err != nil {
		return err
	}
	p, err := s.deps.Aircraft.UpdatePartStatus(a.Code, i+1, status)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Pieza %s ahora está %s.\n", p.Name, p.Status)
	return nil
}

func renderStageRows(l listing, rows []dto.StageRow) string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		line := []string{strconv.Itoa(r.Order), r.Name, r.Deadline, r.Status, strings.Join(r.Employees, ", "), yesNo(r.CanStart)}
		if l.perAircraft {
			line = append([]string{r.AircraftCode}, line...)
		}
		out = append(out, line)
	}
	return l.render(out)
}

func yesNo(v bool) string {
	if v {
		return "sí"
	}
	return "no"
}
