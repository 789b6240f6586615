package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jask/skincare/internal/routine"
)

// RoutineStore is the persistence the planner needs.
type RoutineStore interface {
	Load(ctx context.Context) []routine.Routine
	Save(ctx context.Context, routines []routine.Routine) error
	Clear(ctx context.Context) error
}

// Planner applies saved-list changes and persists the whole list after each one.
// Write failures are logged and otherwise ignored; the returned list is the
// caller's new in-memory state either way.
type Planner struct {
	Store RoutineStore
	Log   *zap.Logger
	NewID func() string
}

func (p *Planner) logger() *zap.Logger {
	if p.Log == nil {
		return zap.NewNop()
	}
	return p.Log
}

func (p *Planner) newID() string {
	if p.NewID != nil {
		return p.NewID()
	}
	return uuid.NewString()
}

// Load returns the persisted routines, or an empty list.
func (p *Planner) Load(ctx context.Context) []routine.Routine {
	return p.Store.Load(ctx)
}

// Save appends a new routine built from products. An empty name becomes
// "Routine N" with N one past the current count; any other name is kept as
// typed. Empty products are replaced by the fallback steps.
func (p *Planner) Save(ctx context.Context, saved []routine.Routine, name string, products []routine.ProductStep) ([]routine.Routine, routine.Routine) {
	if name == "" {
		name = routine.DefaultName(len(saved))
	}
	if len(products) == 0 {
		products = routine.FallbackSteps()
	}
	r := routine.Routine{
		ID:       p.newID(),
		Name:     name,
		Products: append([]routine.ProductStep(nil), products...),
	}
	out := make([]routine.Routine, 0, len(saved)+1)
	out = append(out, saved...)
	out = append(out, r)
	p.persist(ctx, out)
	p.logger().Info("routine saved", zap.String("id", r.ID), zap.String("name", r.Name), zap.Int("steps", len(r.Products)))
	return out, r
}

// Delete removes the routine at index and persists the rest. Nothing is
// written when index is out of range.
func (p *Planner) Delete(ctx context.Context, saved []routine.Routine, index int) ([]routine.Routine, error) {
	out, err := routine.Remove(saved, index)
	if err != nil {
		return saved, err
	}
	p.persist(ctx, out)
	p.logger().Info("routine deleted", zap.String("id", saved[index].ID), zap.Int("remaining", len(out)))
	return out, nil
}

// Reset removes every saved routine.
func (p *Planner) Reset(ctx context.Context) error {
	if err := p.Store.Clear(ctx); err != nil {
		return err
	}
	p.logger().Info("saved routines cleared")
	return nil
}

func (p *Planner) persist(ctx context.Context, routines []routine.Routine) {
	if err := p.Store.Save(ctx, routines); err != nil {
		p.logger().Warn("persist saved routines", zap.Int("count", len(routines)), zap.Error(err))
	}
}
