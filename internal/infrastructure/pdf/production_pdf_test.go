package pdf_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aerocode/internal/domain/entity"
	"github.com/jhoicas/aerocode/internal/domain/production"
	"github.com/jhoicas/aerocode/internal/infrastructure/pdf"
)

func TestProductionPDF_GeneraDocumento(t *testing.T) {
	a := entity.NewAircraft("9F3A7C1E", "E195-E2", entity.AircraftCommercial, 146, 4800)
	a.Parts = append(a.Parts, entity.NewPart("Tren de aterrizaje", entity.PartImported, "Safran"))
	s, err := production.AddStage(a, "Estructura", "10 días", 0)
	require.NoError(t, err)
	require.NoError(t, production.Associate(s, entity.NewEmployee("3", "Carla", "", "", "carla", "h", entity.RoleOperator)))
	a.Tests = append(a.Tests, entity.NewTest(entity.TestHydraulic, entity.TestApproved))

	doc, err := pdf.NewMarotoPDFGenerator().ProductionPDF(a, "Azul Linhas Aéreas", "01/12/2026")
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")), "debe ser un documento PDF")
}

func TestProductionPDF_AeronaveVacia(t *testing.T) {
	doc, err := pdf.NewMarotoPDFGenerator().ProductionPDF(
		entity.NewAircraft("00000001", "T-27", entity.AircraftMilitary, 2, 1500), "", "")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))

	_, err = pdf.NewMarotoPDFGenerator().ProductionPDF(nil, "", "")
	assert.Error(t, err)
}
