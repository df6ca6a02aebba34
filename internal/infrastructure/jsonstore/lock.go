package jsonstore

import (
	"fmt"

	"github.com/gofrs/flock"

	"github.com/jhoicas/aerocode/internal/domain"
)

// Lock toma el bloqueo exclusivo de la sesión sobre path. Si otro proceso ya lo tiene
// devuelve domain.ErrSessionLocked. Liberar con Unlock al cerrar la sesión.
func Lock(path string) (*flock.Flock, error) {
	l := flock.New(path)
	ok, err := l.TryLock()
	if err != nil {
		return nil, fmt.Errorf("adquirir bloqueo %s: %w", path, err)
	}
	if !ok {
		return nil, domain.ErrSessionLocked
	}
	return l, nil
}
