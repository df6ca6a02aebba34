package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/aerocode/internal/domain/entity"
	"github.com/jhoicas/aerocode/pkg/logger"
)

// PDFGenerator genera el reporte de producción en PDF.
type PDFGenerator interface {
	ProductionPDF(a *entity.Aircraft, client, deliveryDate string) ([]byte, error)
}

// Writer guarda los reportes de producción en el directorio de reportes.
type Writer struct {
	dir string
	pdf PDFGenerator
	log *logger.Logger
}

// NewWriter construye el writer. pdf puede ser nil (solo texto).
func NewWriter(dir string, pdf PDFGenerator, log *logger.Logger) *Writer {
	if log == nil {
		log = logger.Nop()
	}
	return &Writer{dir: dir, pdf: pdf, log: log.Component("reports")}
}

// SaveProduction escribe production_<code>.txt (y .pdf si hay generador). Devuelve las rutas escritas.
func (w *Writer) SaveProduction(ctx context.Context, a *entity.Aircraft, client, deliveryDate string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(w.dir, 0o750); err != nil {
		return nil, fmt.Errorf("crear directorio de reportes: %w", err)
	}
	base := filepath.Join(w.dir, "production_"+a.Code)

	txt := base + ".txt"
	if err := os.WriteFile(txt, []byte(Production(a, client, deliveryDate)), 0o600); err != nil {
		return nil, fmt.Errorf("escribir reporte %s: %w", txt, err)
	}
	paths := []string{txt}

	if w.pdf != nil {
		doc, err := w.pdf.ProductionPDF(a, client, deliveryDate)
		if err != nil {
			return paths, fmt.Errorf("generar PDF: %w", err)
		}
		pdfPath := base + ".pdf"
		if err := os.WriteFile(pdfPath, doc, 0o600); err != nil {
			return paths, fmt.Errorf("escribir reporte %s: %w", pdfPath, err)
		}
		paths = append(paths, pdfPath)
	}
	w.log.Info().Str("code", a.Code).Strs("files", paths).Msg("reporte de producción guardado")
	return paths, nil
}
