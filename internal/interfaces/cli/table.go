package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// column encabezado y alineación de una columna de listado.
type column struct {
	title string
	align text.Align
}

func left(title string) column  { return column{title: title, align: text.AlignLeft} }
func right(title string) column { return column{title: title, align: text.AlignRight} }

// listing formato de un listado del menú: columnas fijas y el texto que se muestra sin filas.
type listing struct {
	columns []column
	empty   string
	// perAircraft la primera columna es el código de aeronave.
	perAircraft bool
}

// Listados del catálogo. Posiciones, órdenes y contadores van a la derecha.
var (
	partListing = listing{
		columns: []column{right("#"), left("Nombre"), left("Tipo"), left("Proveedor"), left("Estado")},
		empty:   "Sin piezas registradas.",
	}
	testListing = listing{
		columns: []column{right("#"), left("Tipo"), left("Resultado")},
		empty:   "Sin pruebas registradas.",
	}
	stageListing = listing{
		columns: []column{right("Orden"), left("Etapa"), left("Plazo"), left("Estado"), left("Funcionarios"), left("Puede iniciar")},
		empty:   "Sin etapas de producción.",
	}
	employeeListing = listing{
		columns: []column{right("ID"), left("Nombre"), left("Usuario"), left("Nivel"), left("Teléfono"), left("Dirección")},
		empty:   "Ningún funcionario registrado.",
	}
	fleetPartListing = listing{
		columns: []column{left("Aeronave"), left("Pieza"), left("Tipo"), left("Proveedor"), left("Estado")},
		empty:   "Ninguna pieza registrada en ninguna aeronave.",
	}
	myStageListing  = stageListing.withAircraft("No está asociado a ninguna etapa.")
	progressListing = listing{
		columns: []column{left("Aeronave"), left("Modelo"), right("Etapas"), right("Avance"), right("Piezas"), right("Pruebas")},
		empty:   "Ninguna aeronave para informar.",
	}
)

// withAircraft antepone la columna del código de aeronave (listados de varias aeronaves).
func (l listing) withAircraft(empty string) listing {
	cols := append([]column{left("Aeronave")}, l.columns...)
	return listing{columns: cols, empty: empty, perAircraft: true}
}

// render tabla con bordes redondeados; sin filas devuelve el mensaje de vacío.
// Las filas cortas se completan con celdas vacías y las largas se recortan.
func (l listing) render(rows [][]string) string {
	if len(rows) == 0 {
		return l.empty
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(l.columns))
	configs := make([]table.ColumnConfig, len(l.columns))
	for i, c := range l.columns {
		header[i] = c.title
		configs[i] = table.ColumnConfig{Number: i + 1, Align: c.align, AlignHeader: text.AlignLeft}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		r := make(table.Row, len(l.columns))
		for i := range r {
			r[i] = ""
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}
	return tw.Render()
}
