package production

import (
	"fmt"

	"github.com/jhoicas/aerocode/internal/domain"
	"github.com/jhoicas/aerocode/internal/domain/entity"
)

// ResolveStageOrder decide el orden de una etapa nueva.
// requested == 0 asigna max+1. Un orden explícito debe ser >= 1, no usado y sin dejar huecos
// (<= max+1); como los órdenes usados son contiguos, eso equivale a max+1.
func ResolveStageOrder(owner *entity.Aircraft, requested int) (int, error) {
	if owner == nil {
		return 0, domain.ErrInvalidInput
	}
	next := owner.MaxStageOrder() + 1
	if requested == 0 {
		return next, nil
	}
	if requested < 0 {
		return 0, fmt.Errorf("orden %d debe ser positivo: %w", requested, domain.ErrInvalidStageOrder)
	}
	if len(owner.StagesWithOrder(requested)) > 0 {
		return 0, fmt.Errorf("orden %d ya existe en la aeronave %s: %w", requested, owner.Code, domain.ErrInvalidStageOrder)
	}
	if requested > next {
		return 0, fmt.Errorf("orden %d deja un hueco (siguiente: %d): %w", requested, next, domain.ErrInvalidStageOrder)
	}
	return requested, nil
}

// AddStage valida el orden y agrega una etapa pendiente a la aeronave.
func AddStage(owner *entity.Aircraft, name, deadline string, requestedOrder int) (*entity.Stage, error) {
	order, err := ResolveStageOrder(owner, requestedOrder)
	if err != nil {
		return nil, err
	}
	stage := entity.NewStage(name, deadline, order)
	owner.Stages = append(owner.Stages, stage)
	return stage, nil
}
