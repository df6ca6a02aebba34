package auth

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/aerocode/internal/application/catalog"
	"github.com/jhoicas/aerocode/internal/domain"
	"github.com/jhoicas/aerocode/internal/domain/entity"
	"github.com/jhoicas/aerocode/pkg/jwt"
	"github.com/jhoicas/aerocode/pkg/logger"
)

// SessionConfig configuración para generación de tokens de sesión.
type SessionConfig struct {
	Secret     string
	TTLMinutes int
	Issuer     string
}

// AdminConfig credenciales del administrador inicial.
type AdminConfig struct {
	Username string
	Password string
}

// Principal funcionario autenticado y su token de sesión.
type Principal struct {
	Employee *entity.Employee
	Token    string
}

// UseCase casos de uso de autenticación: login, control de rol y administrador inicial.
type UseCase struct {
	catalog    *catalog.Catalog
	session    SessionConfig
	admin      AdminConfig
	bcryptCost int
	log        *logger.Logger
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(c *catalog.Catalog, session SessionConfig, admin AdminConfig, bcryptCost int, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UseCase{catalog: c, session: session, admin: admin, bcryptCost: bcryptCost, log: log.Component("auth")}
}

// HashSecret genera el hash bcrypt de una contraseña.
func HashSecret(secret string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", fmt.Errorf("hash de contraseña: %w", err)
	}
	return string(hash), nil
}

// HashSecret hash con el costo configurado.
func (uc *UseCase) HashSecret(secret string) (string, error) {
	return HashSecret(secret, uc.bcryptCost)
}

// Authenticate verifica usuario (sin distinguir mayúsculas) y contraseña, y emite el token de sesión.
// Usuario inexistente o contraseña incorrecta -> ErrUnauthorized, sin distinguir el caso.
func (uc *UseCase) Authenticate(ctx context.Context, username, secret string) (*Principal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	emp, err := uc.catalog.EmployeeByUsername(username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.log.Debug().Str("username", username).Msg("login con usuario inexistente")
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(secret)); err != nil {
		uc.log.Debug().Str("employee_id", emp.ID).Msg("contraseña incorrecta")
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.session.Secret, emp.ID, emp.PermissionLevel, uc.session.Issuer, uc.session.TTLMinutes)
	if err != nil {
		return nil, fmt.Errorf("generar token de sesión: %w", err)
	}
	uc.log.Info().Str("employee_id", emp.ID).Str("role", emp.PermissionLevel).Msg("sesión iniciada")
	return &Principal{Employee: emp, Token: token}, nil
}

// RequireRole valida el token y exige que el rol esté entre los permitidos.
// Token inválido o vencido -> ErrUnauthorized; rol no permitido -> ErrForbidden.
func (uc *UseCase) RequireRole(token string, roles ...string) (*jwt.Claims, error) {
	claims, err := jwt.Parse(uc.session.Secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if len(roles) > 0 && !slices.Contains(roles, claims.Role) {
		return nil, fmt.Errorf("rol %s: %w", claims.Role, domain.ErrForbidden)
	}
	return claims, nil
}

// EnsureDefaultAdmin crea el administrador inicial (id "1") si no hay funcionarios y lo
// persiste de inmediato. Devuelve true si lo creó.
func (uc *UseCase) EnsureDefaultAdmin(ctx context.Context) (bool, error) {
	if len(uc.catalog.Employees()) > 0 {
		return false, nil
	}
	hash, err := uc.HashSecret(uc.admin.Password)
	if err != nil {
		return false, err
	}
	admin := entity.NewEmployee(uc.catalog.NextEmployeeID(), "Administrador", "", "", uc.admin.Username, hash, entity.RoleAdministrator)
	if err := uc.catalog.AddEmployee(admin); err != nil {
		return false, err
	}
	if err := uc.catalog.SaveEmployee(ctx, admin); err != nil {
		return false, fmt.Errorf("guardar administrador inicial: %w", err)
	}
	uc.log.Warn().Str("username", admin.Username).Msg("administrador inicial creado; cambie la contraseña")
	return true, nil
}
