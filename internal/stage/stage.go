// Package stage runs one level: it owns the map, the player, the enemy
// and interactable lists and the projectile pool, and steps them in a
// fixed order so that identical inputs give identical runs.
package stage

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/enemy"
	"github.com/vovakirdan/tui-platformer/internal/event"
	"github.com/vovakirdan/tui-platformer/internal/input"
	"github.com/vovakirdan/tui-platformer/internal/object"
	"github.com/vovakirdan/tui-platformer/internal/player"
	"github.com/vovakirdan/tui-platformer/internal/projectile"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/render"
	"github.com/vovakirdan/tui-platformer/internal/world"

	// Interactable kinds register themselves with the registry.
	_ "github.com/vovakirdan/tui-platformer/internal/interactable"
)

const (
	// DefaultPoolSize is the projectile pool capacity.
	DefaultPoolSize = 32
	// killPlane is how far below the map the player dies.
	killPlane = 64.0
	// cameraRate is the camera's follow approach per step.
	cameraRate = 0.2
)

// Options configures a new stage.
type Options struct {
	Level    world.Level
	Player   player.Config
	Physics  object.Physics
	Env      *registry.Env
	Seed     int64
	PoolSize int
	Stats    object.Stats
	Input    *input.Input   // nil runs the player without controls
	Camera   *render.Camera // nil disables culling
	Logger   *log.Logger
	Start    *core.Vector // overrides the level start, as a checkpoint does
}

// Stage is one running level.
type Stage struct {
	Level   world.Level
	Player  *player.Player
	Enemies []enemy.Enemy
	Items   []object.Entity
	Shots   *projectile.Pool
	Events  *event.Bag
	Camera  *render.Camera

	ctx    *object.Context
	rng    *rand.Rand
	logger *log.Logger
}

// New builds a stage and spawns the level's entities. Spawn entries of
// unknown kinds are skipped.
func New(opts Options) (*Stage, error) {
	if opts.Level.Map == nil {
		return nil, fmt.Errorf("stage: level %q has no map", opts.Level.ID)
	}
	if opts.PoolSize <= 0 {
		opts.PoolSize = DefaultPoolSize
	}
	if opts.Player == (player.Config{}) {
		opts.Player = player.DefaultConfig()
	}
	if opts.Physics == (object.Physics{}) {
		opts.Physics = object.DefaultPhysics()
	}

	start := opts.Level.Start
	if opts.Start != nil {
		start = *opts.Start
	}

	s := &Stage{
		Level:  opts.Level,
		Player: player.New(start, opts.Player),
		Shots:  projectile.NewPool(opts.PoolSize),
		Events: &event.Bag{},
		Camera: opts.Camera,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		logger: opts.Logger,
	}
	s.ctx = &object.Context{
		World:    opts.Level.Map,
		Events:   s.Events,
		Rand:     s.rng,
		Camera:   opts.Camera,
		Input:    opts.Input,
		Stats:    opts.Stats,
		Launcher: s.Shots,
		Physics:  opts.Physics,
		Tick:     core.Tick,
	}

	for _, sp := range opts.Level.Spawns {
		e, err := registry.Create(sp, opts.Env)
		if err != nil {
			s.debug("spawn skipped", "level", opts.Level.ID, "kind", sp.Kind, "err", err)
			continue
		}
		s.add(e)
	}

	if s.Camera != nil {
		s.Camera.SetBounds(opts.Level.Map.PixelWidth(), opts.Level.Map.PixelHeight())
		s.Camera.Follow(s.Player.Pos, 1)
	}
	s.debug("stage ready", "level", opts.Level.ID, "enemies", len(s.Enemies), "items", len(s.Items))
	return s, nil
}

func (s *Stage) debug(msg string, kv ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, kv...)
	}
}

func (s *Stage) add(e object.Entity) {
	if en, ok := e.(enemy.Enemy); ok {
		s.Enemies = append(s.Enemies, en)
		return
	}
	s.Items = append(s.Items, e)
}

// Context exposes the step context, mainly for tests.
func (s *Stage) Context() *object.Context {
	return s.ctx
}

// StepCount returns how many logic steps ran.
func (s *Stage) StepCount() int64 {
	return s.ctx.Step
}

// Update runs one logic step: player, enemies, hits on enemies,
// interactables, projectiles, then queued spawns and removals. The event
// bag is reset first and holds this step's requests afterwards.
func (s *Stage) Update() {
	ctx := s.ctx
	s.Events.Reset()
	ctx.Step++

	ctx.Player = s.Player
	object.Step(ctx, s.Player)
	if s.Player.Alive() && s.Player.Pos.Y > s.Level.Map.PixelHeight()+killPlane {
		s.Player.Perish(ctx)
	}
	ctx.Player = nil
	if s.Player.Alive() {
		ctx.Player = s.Player
	}

	for _, e := range s.Enemies {
		object.Step(ctx, e)
	}
	s.resolveHits()
	for i := 0; i < len(s.Enemies); i++ {
		for j := i + 1; j < len(s.Enemies); j++ {
			object.Collide(ctx, s.Enemies[i], s.Enemies[j])
		}
	}

	for _, e := range s.Items {
		object.Step(ctx, e)
	}
	s.Shots.Update(ctx)

	for _, e := range ctx.TakeSpawns() {
		s.add(e)
	}
	s.prune()

	if s.Camera != nil {
		s.Camera.Follow(s.Player.Pos, cameraRate)
	}
}

// resolveHits applies the player's attack and friendly shots to enemies.
func (s *Stage) resolveHits() {
	ctx := s.ctx
	box, attacking := s.Player.AttackBox()
	for _, e := range s.Enemies {
		o := e.Base()
		if !o.Alive() {
			continue
		}
		if attacking && core.OverlayRect(s.Player.Pos, box, o.Pos, o.Hitbox) {
			e.Hurt(ctx, s.Player.AttackDamage(), s.Player.Pos)
		}
		s.Shots.Each(func(p *projectile.Projectile) {
			if p.Friendly && o.Alive() && p.Overlaps(o) && e.Hurt(ctx, p.Damage, p.Pos) {
				p.Exist = false
			}
		})
	}
}

func (s *Stage) prune() {
	s.Enemies = keep(s.Enemies)
	s.Items = keep(s.Items)
}

func keep[E object.Entity](list []E) []E {
	out := list[:0]
	for _, e := range list {
		if e.Base().Exist {
			out = append(out, e)
		}
	}
	clear(list[len(out):])
	return out
}

// Draw renders the map and every entity, the player last.
func (s *Stage) Draw(f *render.Frame) {
	f.DrawMap(s.Level.Map)
	for _, e := range s.Items {
		draw(f, e)
	}
	for _, e := range s.Enemies {
		draw(f, e)
	}
	s.Shots.Each(func(p *projectile.Projectile) { p.Draw(f) })
	draw(f, s.Player)
}

func draw(f *render.Frame, e object.Entity) {
	o := e.Base()
	if !o.Exist || (f.Camera != nil && !f.Camera.Visible(o.Pos, o.CameraCheckArea)) {
		return
	}
	if d, ok := e.(object.Drawer); ok {
		d.Draw(f)
	}
}

// Boss returns the live boss, if the level has one.
func (s *Stage) Boss() (*enemy.Boss, bool) {
	for _, e := range s.Enemies {
		if b, ok := e.(*enemy.Boss); ok && b.Exist {
			return b, true
		}
	}
	return nil, false
}
