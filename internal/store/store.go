// Package store persists the saved routine list as one JSON blob in a
// key-value slot. Every write replaces the whole list.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jask/skincare/internal/routine"
)

// DefaultKey is the slot the routine list lives under.
const DefaultKey = "savedRoutines"

// KV is a durable key-value slot. Get returns nil, nil for a missing key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

var errSchema = errors.New("routine without id, name or products")

// RoutineStore reads and writes the saved routine list.
type RoutineStore struct {
	kv  KV
	key string
	log *zap.Logger
}

// New returns a store over kv. An empty key means DefaultKey; a nil logger
// discards output.
func New(kv KV, key string, log *zap.Logger) *RoutineStore {
	if key == "" {
		key = DefaultKey
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RoutineStore{kv: kv, key: key, log: log}
}

// Key returns the slot name.
func (s *RoutineStore) Key() string { return s.key }

// Load returns the saved routines. A missing, unreadable or malformed slot
// yields an empty list; the cause is only logged.
func (s *RoutineStore) Load(ctx context.Context) []routine.Routine {
	data, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.log.Warn("read saved routines", zap.String("key", s.key), zap.Error(err))
		return []routine.Routine{}
	}
	if data == nil {
		s.log.Debug("no saved routines yet", zap.String("key", s.key))
		return []routine.Routine{}
	}
	list, err := decode(data)
	if err != nil {
		s.log.Warn("discarding saved routines", zap.String("key", s.key), zap.Error(err))
		return []routine.Routine{}
	}
	s.log.Debug("loaded saved routines", zap.Int("count", len(list)))
	return list
}

// Save overwrites the slot with the full list.
func (s *RoutineStore) Save(ctx context.Context, routines []routine.Routine) error {
	data, err := encode(routines)
	if err != nil {
		return fmt.Errorf("encode routines: %w", err)
	}
	if err := s.kv.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("write %s: %w", s.key, err)
	}
	s.log.Debug("saved routines", zap.Int("count", len(routines)))
	return nil
}

// Clear removes the slot.
func (s *RoutineStore) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("clear %s: %w", s.key, err)
	}
	return nil
}

func encode(routines []routine.Routine) ([]byte, error) {
	out := make([]routine.Routine, len(routines))
	for i, r := range routines {
		if r.Products == nil {
			r.Products = []routine.ProductStep{}
		}
		out[i] = r
	}
	return json.Marshal(out)
}

// storedRoutine tells a missing or null products field apart from an empty one.
type storedRoutine struct {
	ID       string                 `json:"id"`
	Name     string                 `json:"name"`
	Products *[]routine.ProductStep `json:"products"`
}

func decode(data []byte) ([]routine.Routine, error) {
	var raw []storedRoutine
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	list := make([]routine.Routine, 0, len(raw))
	for i, r := range raw {
		if r.ID == "" || r.Name == "" || r.Products == nil {
			return nil, fmt.Errorf("entry %d: %w", i, errSchema)
		}
		products := *r.Products
		if products == nil {
			products = []routine.ProductStep{}
		}
		list = append(list, routine.Routine{ID: r.ID, Name: r.Name, Products: products})
	}
	return list, nil
}
