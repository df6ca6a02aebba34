package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/aerocode/internal/application/dto"
)

// Formatos de salida para comandos no interactivos.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// WriteProgress escribe el avance de producción en el formato pedido.
func WriteProgress(w io.Writer, format string, summaries []dto.ProgressSummary) error {
	switch format {
	case FormatTable, "":
		rows := make([][]string, 0, len(summaries))
		for _, p := range summaries {
			rows = append(rows, []string{
				p.AircraftCode, p.Model,
				fmt.Sprintf("%d/%d", p.Completed, p.Total),
				p.Percent + "%",
				strconv.Itoa(p.Parts), strconv.Itoa(p.Tests),
			})
		}
		_, err := fmt.Fprintln(w, progressListing.render(rows))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(summaries); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("formato de salida desconocido %q (table, json, yaml)", format)
	}
}
