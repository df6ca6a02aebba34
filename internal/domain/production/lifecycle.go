// Package production implementa las reglas de negocio de las etapas de producción:
// la máquina de estados pending -> in_progress -> completed con dependencia secuencial
// entre etapas de una misma aeronave, y la asociación funcionario <-> etapa.
//
// Las funciones devuelven errores de precondición de internal/domain (ver domain.IsPrecondition);
// cuando fallan no modifican el estado.
package production

import (
	"fmt"

	"github.com/jhoicas/aerocode/internal/domain"
	"github.com/jhoicas/aerocode/internal/domain/entity"
)

// Start pasa la etapa a in_progress. Requiere status pending y que la etapa anterior
// (order-1) de la misma aeronave exista y esté concluida; la etapa con order 1 no depende de nadie.
// Los órdenes son siempre >= 1: AddStage los valida y el hidratador normaliza los de disco.
func Start(stage *entity.Stage, owner *entity.Aircraft) error {
	if stage == nil || owner == nil {
		return domain.ErrInvalidInput
	}
	if !owner.Owns(stage) {
		return fmt.Errorf("etapa %q no pertenece a la aeronave %s: %w", stage.Name, owner.Code, domain.ErrInvalidInput)
	}
	if stage.Status != entity.StagePending {
		return fmt.Errorf("etapa %q no puede iniciarse (estado actual: %s): %w", stage.Name, stage.Status, domain.ErrIllegalTransition)
	}
	if stage.Order < 1 {
		return fmt.Errorf("etapa %q con orden %d: %w", stage.Name, stage.Order, domain.ErrInvalidStageOrder)
	}
	if stage.Order != 1 && !predecessorsCompleted(owner, stage) {
		return fmt.Errorf("etapa %q requiere la etapa de orden %d concluida: %w", stage.Name, stage.Order-1, domain.ErrStageDependency)
	}
	stage.Status = entity.StageInProgress
	return nil
}

// Complete pasa la etapa de in_progress a completed. completed es terminal.
func Complete(stage *entity.Stage) error {
	if stage == nil {
		return domain.ErrInvalidInput
	}
	if stage.Status != entity.StageInProgress {
		return fmt.Errorf("etapa %q no puede concluirse (estado actual: %s): %w", stage.Name, stage.Status, domain.ErrIllegalTransition)
	}
	stage.Status = entity.StageCompleted
	return nil
}

// Predecessors devuelve las etapas de orden stage.Order-1 de la aeronave.
func Predecessors(owner *entity.Aircraft, stage *entity.Stage) []*entity.Stage {
	if owner == nil || stage == nil || stage.Order <= 1 {
		return nil
	}
	return owner.StagesWithOrder(stage.Order - 1)
}

// predecessorsCompleted: al menos una etapa anterior y todas concluidas
// (los datos en disco pueden traer órdenes repetidos).
func predecessorsCompleted(owner *entity.Aircraft, stage *entity.Stage) bool {
	prev := Predecessors(owner, stage)
	if len(prev) == 0 {
		return false
	}
	for _, p := range prev {
		if p.Status != entity.StageCompleted {
			return false
		}
	}
	return true
}

// CanStart indica si Start tendría éxito, sin modificar nada (para menús).
func CanStart(stage *entity.Stage, owner *entity.Aircraft) bool {
	if stage == nil || owner == nil || !owner.Owns(stage) || stage.Status != entity.StagePending {
		return false
	}
	return stage.Order == 1 || predecessorsCompleted(owner, stage)
}

// Progress cuenta etapas concluidas sobre el total.
func Progress(owner *entity.Aircraft) (completed, total int) {
	if owner == nil {
		return 0, 0
	}
	for _, s := range owner.Stages {
		if s.Status == entity.StageCompleted {
			completed++
		}
	}
	return completed, len(owner.Stages)
}
