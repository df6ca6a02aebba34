// Package backup copia los directorios de datos a una carpeta de respaldo con marca de tiempo.
package backup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/jhoicas/aerocode/pkg/logger"
)

// Dirs subdirectorios del directorio de datos que se respaldan.
var Dirs = []string{"employees", "aircraft", "reports"}

// TimestampLayout formato de la carpeta backup_<timestamp>.
const TimestampLayout = "2006-01-02T15-04-05"

// Run copia <dataDir>/{employees,aircraft,reports} a <backupDir>/backup_<timestamp>/.
// Los directorios de origen inexistentes se omiten. Devuelve la ruta del respaldo.
func Run(ctx context.Context, dataDir, backupDir string, now time.Time, log *logger.Logger) (string, error) {
	if log == nil {
		log = logger.Nop()
	}
	dest := filepath.Join(backupDir, "backup_"+now.Format(TimestampLayout))
	if err := os.MkdirAll(dest, 0o750); err != nil {
		return "", fmt.Errorf("crear respaldo %s: %w", dest, err)
	}

	copied := 0
	for _, name := range Dirs {
		if err := ctx.Err(); err != nil {
			return dest, err
		}
		src := filepath.Join(dataDir, name)
		info, err := os.Stat(src)
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("dir", src).Msg("directorio inexistente, se omite")
			continue
		}
		if err != nil {
			return dest, fmt.Errorf("leer %s: %w", src, err)
		}
		if !info.IsDir() {
			continue
		}
		n, err := copyDir(ctx, src, filepath.Join(dest, name))
		if err != nil {
			return dest, fmt.Errorf("copiar %s: %w", src, err)
		}
		copied += n
	}
	log.Info().Str("dest", dest).Int("files", copied).Msg("respaldo concluido")
	return dest, nil
}

// copyDir copia el árbol src en dst y devuelve la cantidad de archivos copiados.
func copyDir(ctx context.Context, src, dst string) (int, error) {
	files := 0
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o750)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		files++
		return nil
	})
	return files, err
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
