// Package registry maps spawn kinds to entity factories.
// Entity packages register their kinds in init() functions, allowing the
// stage to build levels without hardcoded dependencies on every variant.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/object"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// ErrUnknownKind is returned by Create for unregistered kinds.
var ErrUnknownKind = errors.New("unknown kind")

// Category groups kinds for listing and update ordering.
type Category string

const (
	CategoryEnemy        Category = "enemy"
	CategoryInteractable Category = "interactable"
)

// Tuning overrides a kind's built-in numbers. Zero fields keep the default.
type Tuning struct {
	Health          int       `yaml:"health"`
	AttackPower     int       `yaml:"attack_power"`
	DropProbability float64   `yaml:"drop_probability"`
	Speed           float64   `yaml:"speed"`
	CoinWeights     []float64 `yaml:"coin_weights"`
}

// Env is what factories get besides the spawn entry.
type Env struct {
	Tuning      map[string]Tuning
	HealthScale float64 // multiplies enemy health, 0 means 1
	AttackScale float64 // multiplies enemy attack, 0 means 1
}

// Tune returns the overrides for kind.
func (e *Env) Tune(kind string) Tuning {
	if e == nil {
		return Tuning{}
	}
	return e.Tuning[kind]
}

// ScaleHealth applies the difficulty health multiplier, keeping at least 1.
func (e *Env) ScaleHealth(h int) int {
	if e == nil || e.HealthScale <= 0 {
		return h
	}
	return max(1, int(float64(h)*e.HealthScale+0.5))
}

// ScaleAttack applies the difficulty attack multiplier, keeping at least 1.
func (e *Env) ScaleAttack(a int) int {
	if e == nil || e.AttackScale <= 0 {
		return a
	}
	return max(1, int(float64(a)*e.AttackScale+0.5))
}

// Factory builds an entity from a level spawn entry.
type Factory func(sp world.Spawn, env *Env) object.Entity

// KindInfo describes a registered kind.
type KindInfo struct {
	Kind     string
	Category Category
}

type entry struct {
	category Category
	factory  Factory
}

var (
	factories = make(map[string]entry)
	mu        sync.RWMutex
)

// Register adds a factory. Panics if the kind is already registered.
func Register(kind string, cat Category, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[kind]; exists {
		panic(fmt.Sprintf("registry: kind %q already registered", kind))
	}
	factories[kind] = entry{category: cat, factory: f}
}

// List returns all registered kinds sorted by name.
func List() []KindInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]KindInfo, 0, len(factories))
	for kind, e := range factories {
		result = append(result, KindInfo{Kind: kind, Category: e.category})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Kind < result[j].Kind
	})
	return result
}

// Create builds the entity for a spawn entry.
func Create(sp world.Spawn, env *Env) (object.Entity, error) {
	mu.RLock()
	e, ok := factories[sp.Kind]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %q: %w", sp.Kind, ErrUnknownKind)
	}
	return e.factory(sp, env), nil
}

// Exists checks if a kind is registered.
func Exists(kind string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[kind]
	return ok
}
