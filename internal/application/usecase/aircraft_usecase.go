package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/aerocode/internal/application/catalog"
	"github.com/jhoicas/aerocode/internal/application/dto"
	"github.com/jhoicas/aerocode/internal/domain"
	"github.com/jhoicas/aerocode/internal/domain/entity"
	"github.com/jhoicas/aerocode/internal/domain/production"
	"github.com/jhoicas/aerocode/pkg/logger"
)

// CodeGenerator produce códigos de aeronave nuevos.
type CodeGenerator func() string

// maxCodeAttempts reintentos ante colisión de código.
const maxCodeAttempts = 5

// AircraftUseCase registro de aeronaves y de sus piezas, etapas y pruebas.
type AircraftUseCase struct {
	catalog *catalog.Catalog
	newCode CodeGenerator
	log     *logger.Logger
}

// NewAircraftUseCase construye el caso de uso. newCode genera el código de cada aeronave nueva.
func NewAircraftUseCase(c *catalog.Catalog, newCode CodeGenerator, log *logger.Logger) *AircraftUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AircraftUseCase{catalog: c, newCode: newCode, log: log.Component("aircraft")}
}

// Register crea una aeronave con código generado y colecciones vacías.
func (uc *AircraftUseCase) Register(ctx context.Context, in dto.RegisterAircraftInput) (*entity.Aircraft, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	model := strings.TrimSpace(in.Model)
	if model == "" {
		return nil, fmt.Errorf("modelo obligatorio: %w", domain.ErrInvalidInput)
	}
	if !entity.IsValidAircraftType(in.Type) {
		return nil, fmt.Errorf("tipo de aeronave %q: %w", in.Type, domain.ErrInvalidInput)
	}
	if in.Capacity < 0 || in.Range < 0 {
		return nil, fmt.Errorf("capacidad y alcance no pueden ser negativos: %w", domain.ErrInvalidInput)
	}

	var lastErr error
	for i := 0; i < maxCodeAttempts; i++ {
		a := entity.NewAircraft(uc.newCode(), model, in.Type, in.Capacity, in.Range)
		lastErr = uc.catalog.AddAircraft(a)
		if lastErr == nil {
			uc.log.Info().Str("code", a.Code).Str("model", a.Model).Msg("aeronave registrada")
			return a, nil
		}
	}
	return nil, fmt.Errorf("generar código de aeronave: %w", lastErr)
}

// ByCode obtiene una aeronave por código.
func (uc *AircraftUseCase) ByCode(code string) (*entity.Aircraft, error) {
	return uc.catalog.AircraftByCode(code)
}

// List todas las aeronaves.
func (uc *AircraftUseCase) List() []*entity.Aircraft {
	return uc.catalog.Aircraft()
}

// AddPart agrega una pieza en estado in_production.
func (uc *AircraftUseCase) AddPart(code string, in dto.AddPartInput) (*entity.Part, error) {
	a, err := uc.catalog.AircraftByCode(code)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("nombre de pieza obligatorio: %w", domain.ErrInvalidInput)
	}
	if !entity.IsValidPartType(in.Type) {
		return nil, fmt.Errorf("tipo de pieza %q: %w", in.Type, domain.ErrInvalidInput)
	}
	p := entity.NewPart(name, in.Type, strings.TrimSpace(in.Supplier))
	a.Parts = append(a.Parts, p)
	uc.log.Info().Str("code", a.Code).Str("part", p.Name).Msg("pieza agregada")
	return p, nil
}

// UpdatePartStatus cambia el estado de la pieza en la posición index (base 1).
func (uc *AircraftUseCase) UpdatePartStatus(code string, index int, status string) (*entity.Part, error) {
	a, err := uc.catalog.AircraftByCode(code)
	if err != nil {
		return nil, err
	}
	if index < 1 || index > len(a.Parts) {
		return nil, fmt.Errorf("pieza %d: %w", index, domain.ErrNotFound)
	}
	if !entity.IsValidPartStatus(status) {
		return nil, fmt.Errorf("estado de pieza %q: %w", status, domain.ErrInvalidInput)
	}
	p := a.Parts[index-1]
	p.Status = status
	uc.log.Info().Str("code", a.Code).Str("part", p.Name).Str("status", status).Msg("estado de pieza actualizado")
	return p, nil
}

// AddStage agrega una etapa pendiente respetando la política de orden.
func (uc *AircraftUseCase) AddStage(code string, in dto.AddStageInput) (*entity.Stage, error) {
	a, err := uc.catalog.AircraftByCode(code)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("nombre de etapa obligatorio: %w", domain.ErrInvalidInput)
	}
	s, err := production.AddStage(a, name, strings.TrimSpace(in.Deadline), in.Order)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("code", a.Code).Str("stage", s.Name).Int("order", s.Order).Msg("etapa agregada")
	return s, nil
}

// AddTest registra una prueba sobre la aeronave.
func (uc *AircraftUseCase) AddTest(code string, in dto.AddTestInput) (*entity.Test, error) {
	a, err := uc.catalog.AircraftByCode(code)
	if err != nil {
		return nil, err
	}
	if !entity.IsValidTestType(in.Type) {
		return nil, fmt.Errorf("tipo de prueba %q: %w", in.Type, domain.ErrInvalidInput)
	}
	if !entity.IsValidTestResult(in.Result) {
		return nil, fmt.Errorf("resultado de prueba %q: %w", in.Result, domain.ErrInvalidInput)
	}
	t := entity.NewTest(in.Type, in.Result)
	a.Tests = append(a.Tests, t)
	uc.log.Info().Str("code", a.Code).Str("test", t.Type).Str("result", t.Result).Msg("prueba registrada")
	return t, nil
}
