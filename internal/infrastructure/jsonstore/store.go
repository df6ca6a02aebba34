// Package jsonstore persiste registros como un archivo JSON por entidad:
//
//	<dir>/<identificador>.json
//
// El identificador sale del campo "id" del documento o, si no existe, del campo "code".
// Además reconstruye las entidades de dominio a partir de los registros planos (hidratación)
// y hace la proyección inversa antes de guardar.
package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/aerocode/internal/domain"
	"github.com/jhoicas/aerocode/pkg/logger"
)

// RawRecord documento JSON tal como está en disco, sin tipar.
type RawRecord = json.RawMessage

// identifierFields campos que pueden identificar un registro.
var identifierFields = []string{"id", "code"}

// Store guarda y carga registros de un directorio. El directorio debe existir antes de guardar.
type Store struct {
	dir string
	log *logger.Logger
}

// NewStore construye un store sobre dir.
func NewStore(dir string, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{dir: dir, log: log}
}

// Dir directorio del store.
func (s *Store) Dir() string { return s.dir }

// Save escribe record en <dir>/<id>.json sobrescribiendo el archivo completo.
// Devuelve domain.ErrNotIdentifiable si el documento no tiene "id" ni "code".
func (s *Store) Save(ctx context.Context, record any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar registro: %w", err)
	}
	id, err := identifierOf(data)
	if err != nil {
		return err
	}
	path := filepath.Join(s.dir, id+".json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	s.log.Debug().Str("path", path).Msg("registro guardado")
	return nil
}

// identifierOf extrae el identificador del documento y valida que sirva como nombre de archivo.
// El documento debe traer exactamente uno de los campos de identificador.
func identifierOf(doc []byte) (string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(doc, &fields); err != nil {
		return "", fmt.Errorf("registro no es un objeto JSON: %w", domain.ErrNotIdentifiable)
	}
	var found []string
	for _, key := range identifierFields {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		var id string
		if err := json.Unmarshal(raw, &id); err != nil || id == "" {
			continue
		}
		found = append(found, id)
	}
	switch len(found) {
	case 0:
		return "", domain.ErrNotIdentifiable
	case 1:
	default:
		return "", fmt.Errorf("registro con más de un identificador %v: %w", found, domain.ErrNotIdentifiable)
	}
	id := found[0]
	if id == "." || id == ".." || strings.ContainsAny(id, `/\`) || filepath.Base(id) != id {
		return "", fmt.Errorf("identificador %q no es un nombre de archivo válido: %w", id, domain.ErrNotIdentifiable)
	}
	return id, nil
}

// LoadAll lee todos los *.json del directorio del store y aplica hydrate a cada uno.
// Directorio inexistente -> colección vacía. Archivos ilegibles, JSON inválido o registros que
// hydrate rechaza se omiten con un warning. El orden del resultado no está definido.
func LoadAll[T any](ctx context.Context, s *Store, hydrate func(RawRecord) (T, error)) ([]T, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("leer directorio %s: %w", s.dir, err)
	}

	items := make([]T, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		// #nosec G304 - path construido desde la lista del directorio del store
		data, err := os.ReadFile(path)
		if err != nil {
			s.log.Warn().Err(err).Str("path", path).Msg("registro ilegible, se omite")
			continue
		}
		if !json.Valid(data) {
			s.log.Warn().Str("path", path).Msg("JSON inválido, se omite")
			continue
		}
		item, err := hydrate(RawRecord(data))
		if err != nil {
			s.log.Warn().Err(err).Str("path", path).Msg("registro no reconstruible, se omite")
			continue
		}
		items = append(items, item)
	}
	s.log.Debug().Str("dir", s.dir).Int("count", len(items)).Msg("registros cargados")
	return items, nil
}
