package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("usuario o contraseña inválidos")
	ErrForbidden    = errors.New("acceso denegado")

	// ErrNotIdentifiable el registro no tiene campo "id" ni "code": error de configuración, aborta el guardado.
	ErrNotIdentifiable = errors.New("el registro no tiene identificador (id o code)")
	// ErrSessionLocked otra sesión mantiene el directorio de datos.
	ErrSessionLocked = errors.New("hay otra sesión activa sobre el directorio de datos")

	// Violaciones de precondición: se informan al usuario, el estado no cambia.
	ErrIllegalTransition = errors.New("transición de etapa no permitida")
	ErrStageDependency   = errors.New("la etapa anterior no está concluida")
	ErrAlreadyAssociated = errors.New("el funcionario ya está asociado a esta etapa")
	ErrNotAssociated     = errors.New("el funcionario no está asociado a esta etapa")
	ErrInvalidStageOrder = errors.New("orden de etapa inválido")
)

var preconditions = []error{
	ErrIllegalTransition,
	ErrStageDependency,
	ErrAlreadyAssociated,
	ErrNotAssociated,
	ErrInvalidStageOrder,
}

// IsPrecondition indica si err es una violación de precondición (no fatal, se muestra como mensaje).
func IsPrecondition(err error) bool {
	for _, target := range preconditions {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
