package auth_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/aerocode/internal/application/auth"
	"github.com/jhoicas/aerocode/internal/application/catalog"
	"github.com/jhoicas/aerocode/internal/domain"
	"github.com/jhoicas/aerocode/internal/domain/entity"
	"github.com/jhoicas/aerocode/internal/infrastructure/jsonstore"
	"github.com/jhoicas/aerocode/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testSession = auth.SessionConfig{Secret: "test-secret", TTLMinutes: 60, Issuer: "aerocode-test"}

func newCatalog(t *testing.T) (*catalog.Catalog, string) {
	t.Helper()
	root := t.TempDir()
	empDir := filepath.Join(root, "employees")
	airDir := filepath.Join(root, "aircraft")
	require.NoError(t, os.MkdirAll(empDir, 0o750))
	require.NoError(t, os.MkdirAll(airDir, 0o750))
	c := catalog.New(
		jsonstore.NewEmployeeRepository(empDir, logger.Nop()),
		jsonstore.NewAircraftRepository(airDir, logger.Nop()),
		logger.Nop(),
	)
	require.NoError(t, c.Load(context.Background()))
	return c, empDir
}

func newUseCase(c *catalog.Catalog) *auth.UseCase {
	return auth.NewUseCase(c, testSession, auth.AdminConfig{Username: "admin", Password: "admin"}, bcrypt.MinCost, logger.Nop())
}

func addEmployee(t *testing.T, c *catalog.Catalog, id, username, password, role string) *entity.Employee {
	t.Helper()
	hash, err := auth.HashSecret(password, bcrypt.MinCost)
	require.NoError(t, err)
	e := entity.NewEmployee(id, "Func "+id, "", "", username, hash, role)
	require.NoError(t, c.AddEmployee(e))
	return e
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthenticate_Exitoso(t *testing.T) {
	c, _ := newCatalog(t)
	uc := newUseCase(c)
	carla := addEmployee(t, c, "3", "Carla", "s3cret", entity.RoleOperator)

	p, err := uc.Authenticate(context.Background(), "carla", "s3cret")
	require.NoError(t, err)
	assert.Same(t, carla, p.Employee, "el usuario no distingue mayúsculas")
	assert.NotEmpty(t, p.Token)

	claims, err := uc.RequireRole(p.Token, entity.RoleOperator)
	require.NoError(t, err)
	assert.Equal(t, "3", claims.EmployeeID)
}

func TestAuthenticate_CredencialesInvalidas(t *testing.T) {
	c, _ := newCatalog(t)
	uc := newUseCase(c)
	addEmployee(t, c, "1", "ana", "correcta", entity.RoleAdministrator)
	ctx := context.Background()

	_, err := uc.Authenticate(ctx, "ana", "incorrecta")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Authenticate(ctx, "nadie", "correcta")
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "usuario inexistente no se distingue de contraseña incorrecta")
}

func TestRequireRole(t *testing.T) {
	c, _ := newCatalog(t)
	uc := newUseCase(c)
	addEmployee(t, c, "2", "bruno", "pw", entity.RoleEngineer)

	p, err := uc.Authenticate(context.Background(), "bruno", "pw")
	require.NoError(t, err)

	_, err = uc.RequireRole(p.Token, entity.RoleAdministrator)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.RequireRole(p.Token, entity.RoleAdministrator, entity.RoleEngineer)
	assert.NoError(t, err)

	_, err = uc.RequireRole(p.Token)
	assert.NoError(t, err, "sin roles solo se valida el token")

	_, err = uc.RequireRole("token.invalido.x", entity.RoleEngineer)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestEnsureDefaultAdmin(t *testing.T) {
	c, empDir := newCatalog(t)
	uc := newUseCase(c)
	ctx := context.Background()

	created, err := uc.EnsureDefaultAdmin(ctx)
	require.NoError(t, err)
	assert.True(t, created)

	_, err = os.Stat(filepath.Join(empDir, "1.json"))
	require.NoError(t, err, "el administrador se persiste de inmediato")

	p, err := uc.Authenticate(ctx, "admin", "admin")
	require.NoError(t, err)
	assert.Equal(t, "1", p.Employee.ID)
	assert.Equal(t, entity.RoleAdministrator, p.Employee.PermissionLevel)

	created, err = uc.EnsureDefaultAdmin(ctx)
	require.NoError(t, err)
	assert.False(t, created, "con funcionarios existentes no se crea otro")
	assert.Len(t, c.Employees(), 1)
}
