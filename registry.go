// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fractal

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Registry errors.
var (
	// ErrUnknownStrategy is returned when a requested strategy is not registered.
	ErrUnknownStrategy = errors.New("fractal: unknown strategy")

	// ErrNoStrategy is returned when no registered strategy could be initialized.
	ErrNoStrategy = errors.New("fractal: no strategy available")
)

// StrategyFactory creates a new strategy instance.
type StrategyFactory func() Strategy

var (
	registryMu sync.RWMutex
	strategies = make(map[string]StrategyFactory)
	// Priority order for strategy selection (first that initializes wins).
	strategyPriority = []string{StrategyGPU, StrategyParallel, StrategyBatch, StrategyScalar}
)

// Register registers a strategy factory with the given name.
// This is typically called from init() functions.
// If a strategy with the same name is already registered, it is replaced.
func Register(name string, factory StrategyFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	strategies[name] = factory
}

// Unregister removes a strategy from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(strategies, name)
}

// Available returns the registered strategy names in priority order,
// followed by any others sorted by name.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(strategies))
	seen := make(map[string]bool, len(strategies))
	for _, name := range strategyPriority {
		if _, ok := strategies[name]; ok {
			names = append(names, name)
			seen[name] = true
		}
	}
	var rest []string
	for name := range strategies {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

// IsRegistered checks if a strategy with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := strategies[name]
	return ok
}

// Get returns a new, uninitialized strategy by name.
// Returns nil if the strategy is not registered.
func Get(name string) Strategy {
	registryMu.RLock()
	factory, ok := strategies[name]
	registryMu.RUnlock()
	if !ok {
		return nil
	}
	s := factory()
	if s != nil {
		propagateLogger(s, Logger())
	}
	return s
}

// New creates and initializes the named strategy.
func New(name string, table *ColorTable) (Strategy, error) {
	s := Get(name)
	if s == nil {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownStrategy, name, Available())
	}
	if err := s.Init(table); err != nil {
		s.Close()
		return nil, fmt.Errorf("fractal: init %s strategy: %w", name, err)
	}
	Logger().Info("strategy selected", "name", s.Name())
	return s, nil
}

// InitDefault creates and initializes the best available strategy.
// Strategies are tried in priority order (gpu > parallel > batch > scalar);
// one whose Init fails is closed, logged and skipped.
func InitDefault(table *ColorTable) (Strategy, error) {
	for _, name := range Available() {
		s, err := New(name, table)
		if err != nil {
			Logger().Warn("strategy unavailable, falling back", "name", name, "err", err)
			continue
		}
		return s, nil
	}
	return nil, ErrNoStrategy
}

func init() {
	Register(StrategyScalar, func() Strategy { return NewScalarStrategy() })
	Register(StrategyBatch, func() Strategy { return NewBatchStrategy() })
	Register(StrategyParallel, func() Strategy { return NewParallelStrategy() })
}
