// Package cli implementa la sesión interactiva por terminal: login, menús por nivel de
// permiso y guardado de los datos al cerrar la sesión.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/jhoicas/aerocode/internal/application/auth"
	"github.com/jhoicas/aerocode/internal/application/catalog"
	"github.com/jhoicas/aerocode/internal/application/report"
	"github.com/jhoicas/aerocode/internal/application/usecase"
	"github.com/jhoicas/aerocode/internal/domain"
	"github.com/jhoicas/aerocode/internal/domain/entity"
	"github.com/jhoicas/aerocode/pkg/logger"
)

var (
	errCancelled = errors.New("operación cancelada")
	errNoOptions = errors.New("no hay opciones disponibles")
)

// BackupFunc ejecuta un respaldo y devuelve la carpeta creada.
type BackupFunc func(ctx context.Context) (string, error)

// Deps dependencias de la sesión.
type Deps struct {
	Catalog   *catalog.Catalog
	Auth      *auth.UseCase
	Employees *usecase.EmployeeUseCase
	Aircraft  *usecase.AircraftUseCase
	Stages    *usecase.StageUseCase
	Reports   *report.Writer
	Backup    BackupFunc
	Log       *logger.Logger
}

// Session driver de la sesión interactiva. Es dueño del catálogo mientras corre.
type Session struct {
	deps     Deps
	in       *bufio.Reader
	out      io.Writer
	secretFd int // descriptor de terminal para leer contraseñas sin eco; -1 si no hay terminal
}

// NewSession construye la sesión sobre in/out. Si in es una terminal, las contraseñas se leen sin eco.
func NewSession(deps Deps, in io.Reader, out io.Writer) *Session {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	fd := -1
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}
	return &Session{deps: deps, in: bufio.NewReader(in), out: out, secretFd: fd}
}

// Run ciclo login -> menú -> guardado hasta que se agote la entrada o el usuario desista.
// Solo devuelve error ante fallas no recuperables (p. ej. un registro sin identificador al guardar).
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		principal, err := s.login(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if principal == nil {
			again, err := s.confirm("¿Intentar de nuevo? (s/n): ")
			if err != nil || !again {
				return nil
			}
			continue
		}

		menuErr := s.menu(ctx, principal)
		if err := s.deps.Catalog.Flush(context.WithoutCancel(ctx)); err != nil {
			return fmt.Errorf("guardar datos: %w", err)
		}
		fmt.Fprintln(s.out, "Datos guardados.")
		s.deps.Log.Info().Str("employee_id", principal.Employee.ID).Msg("sesión cerrada")

		if errors.Is(menuErr, io.EOF) {
			return nil
		}
		if menuErr != nil {
			return menuErr
		}
	}
}

// login pide credenciales. Devuelve (nil, nil) si son inválidas.
func (s *Session) login(ctx context.Context) (*auth.Principal, error) {
	fmt.Fprintln(s.out, "\n=== AEROCODE - Inicio de sesión ===")
	username, err := s.prompt("Usuario: ")
	if err != nil {
		return nil, err
	}
	secret, err := s.readSecret("Contraseña: ")
	if err != nil {
		return nil, err
	}
	principal, err := s.deps.Auth.Authenticate(ctx, username, secret)
	if errors.Is(err, domain.ErrUnauthorized) {
		fmt.Fprintln(s.out, "Usuario o contraseña inválidos.")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(s.out, "Bienvenido, %s (%s).\n", principal.Employee.Name, principal.Employee.PermissionLevel)
	return principal, nil
}

func (s *Session) menu(ctx context.Context, p *auth.Principal) error {
	switch p.Employee.PermissionLevel {
	case entity.RoleAdministrator:
		return s.runMenu(ctx, p, "Menú del administrador", s.administratorItems())
	case entity.RoleEngineer:
		return s.runMenu(ctx, p, "Menú del ingeniero", s.engineerItems())
	case entity.RoleOperator:
		return s.runMenu(ctx, p, "Menú del operador", s.operatorItems(p))
	default:
		fmt.Fprintf(s.out, "Nivel de permiso desconocido: %s\n", p.Employee.PermissionLevel)
		return nil
	}
}

// menuItem opción de menú con los roles que pueden ejecutarla.
type menuItem struct {
	label  string
	roles  []string
	action func(ctx context.Context) error
}

// runMenu muestra items hasta "0". Antes de cada acción se valida el token de la sesión
// (firma, vencimiento y rol contra item.roles); si falla, la sesión termina y se guarda.
func (s *Session) runMenu(ctx context.Context, p *auth.Principal, title string, items []menuItem) error {
	for {
		fmt.Fprintf(s.out, "\n--- %s ---\n", title)
		for i, it := range items {
			fmt.Fprintf(s.out, "%d. %s\n", i+1, it.label)
		}
		fmt.Fprintln(s.out, "0. Guardar y salir")

		choice, err := s.prompt("Opción: ")
		if err != nil {
			return err
		}
		if choice == "0" {
			return nil
		}
		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(items) {
			fmt.Fprintln(s.out, "Opción inválida.")
			continue
		}
		item := items[n-1]
		if _, err := s.deps.Auth.RequireRole(p.Token, item.roles...); err != nil {
			s.printError(err)
			return nil
		}
		if err := item.action(ctx); err != nil {
			if isFatal(err) {
				return err
			}
			s.printError(err)
		}
	}
}

func isFatal(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, domain.ErrNotIdentifiable)
}

func (s *Session) printError(err error) {
	switch {
	case errors.Is(err, errCancelled):
		fmt.Fprintln(s.out, "Operación cancelada.")
	case domain.IsPrecondition(err):
		fmt.Fprintf(s.out, "No permitido: %v\n", err)
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrForbidden):
		fmt.Fprintln(s.out, "Sesión inválida o sin permisos; vuelva a iniciar sesión.")
	default:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

// ── Entrada ───────────────────────────────────────────────────────────────────

// prompt muestra label y lee una línea sin espacios extremos. Fin de entrada -> io.EOF.
func (s *Session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Session) readSecret(label string) (string, error) {
	if s.secretFd < 0 {
		return s.prompt(label)
	}
	fmt.Fprint(s.out, label)
	b, err := term.ReadPassword(s.secretFd)
	fmt.Fprintln(s.out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (s *Session) confirm(label string) (bool, error) {
	answer, err := s.prompt(label)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "s") || strings.EqualFold(answer, "si") || strings.EqualFold(answer, "sí"), nil
}

// promptInt lee un entero no negativo; vacío devuelve def.
func (s *Session) promptInt(label string, def int) (int, error) {
	for {
		raw, err := s.prompt(label)
		if err != nil {
			return 0, err
		}
		if raw == "" {
			return def, nil
		}
		n, err := strconv.Atoi(raw)
		if err == nil && n >= 0 {
			return n, nil
		}
		fmt.Fprintln(s.out, "Ingrese un número entero no negativo.")
	}
}

// chooseIndex muestra opciones numeradas y devuelve la posición elegida (base 0).
// "0" cancela.
func (s *Session) chooseIndex(title string, labels []string) (int, error) {
	if len(labels) == 0 {
		return -1, errNoOptions
	}
	fmt.Fprintln(s.out, title)
	for i, l := range labels {
		fmt.Fprintf(s.out, "  %d. %s\n", i+1, l)
	}
	for {
		raw, err := s.prompt("Elija (0 para cancelar): ")
		if err != nil {
			return -1, err
		}
		if raw == "0" {
			return -1, errCancelled
		}
		n, err := strconv.Atoi(raw)
		if err == nil && n >= 1 && n <= len(labels) {
			return n - 1, nil
		}
		fmt.Fprintln(s.out, "Opción inválida.")
	}
}

func (s *Session) chooseOption(title string, options []string) (string, error) {
	i, err := s.chooseIndex(title, options)
	if err != nil {
		return "", err
	}
	return options[i], nil
}

func (s *Session) chooseAircraft(title string) (*entity.Aircraft, error) {
	fleet := s.deps.Aircraft.List()
	labels := make([]string, 0, len(fleet))
	for _, a := range fleet {
		labels = append(labels, fmt.Sprintf("%s (%s)", a.Model, a.Code))
	}
	i, err := s.chooseIndex(title, labels)
	if err != nil {
		return nil, err
	}
	return fleet[i], nil
}

// chooseStage devuelve la posición (base 1) de la etapa elegida.
func (s *Session) chooseStage(a *entity.Aircraft) (int, error) {
	labels := make([]string, 0, len(a.Stages))
	for _, st := range a.Stages {
		labels = append(labels, fmt.Sprintf("%d. %s (%s)", st.Order, st.Name, st.Status))
	}
	i, err := s.chooseIndex("Etapas:", labels)
	if err != nil {
		return 0, err
	}
	return i + 1, nil
}

func (s *Session) chooseEmployee(title string, employees []*entity.Employee) (*entity.Employee, error) {
	labels := make([]string, 0, len(employees))
	for _, e := range employees {
		labels = append(labels, fmt.Sprintf("%s (ID: %s, %s)", e.Name, e.ID, e.PermissionLevel))
	}
	i, err := s.chooseIndex(title, labels)
	if err != nil {
		return nil, err
	}
	return employees[i], nil
}
