// Package projectile implements a fixed-size pool of shots.
package projectile

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/object"
	"github.com/vovakirdan/tui-platformer/internal/render"
)

// Projectile is one pooled shot.
type Projectile struct {
	object.Object

	Damage   int
	Life     float64
	Homing   bool
	TurnRate float64
	Cruise   float64       // homing speed
	LockOn   object.Player // set on the first step of a homing shot
	Friendly bool
	Big      bool

	seq uint64
}

func (p *Projectile) Base() *object.Object { return &p.Object }

// Age counts down the lifespan, on screen or off.
func (p *Projectile) Age(ctx *object.Context) {
	p.Life -= ctx.Tick
	if p.Life <= 0 {
		p.Exist = false
	}
}

// UpdateLogic steers homing shots.
func (p *Projectile) UpdateLogic(ctx *object.Context) {
	if p.Homing {
		if p.LockOn == nil {
			if pl, ok := ctx.LivePlayer(); ok {
				p.LockOn = pl
			}
		}
		if p.LockOn != nil && p.LockOn.Alive() {
			to := p.LockOn.Base().Pos.Sub(p.Pos).Normalize(true)
			p.Target = to.Scale(p.Cruise)
			p.Friction = core.Vec(p.TurnRate, p.TurnRate)
		}
	}

	p.Sprite.Animate(p.row(), 0, 1, 4, ctx.Tick)
}

func (p *Projectile) row() int {
	if p.Big {
		return 1
	}
	return 0
}

// WallCollisionEvent destroys the shot.
func (p *Projectile) WallCollisionEvent(*object.Context, int) {
	p.Exist = false
}

// PlayerEvent damages the player on contact.
func (p *Projectile) PlayerEvent(ctx *object.Context, pl object.Player) {
	if p.Friendly || !p.Exist {
		return
	}
	if p.Overlaps(pl.Base()) && pl.Hurt(ctx, p.Damage, p.Pos) {
		p.Exist = false
	}
}

// Draw renders the shot.
func (p *Projectile) Draw(f *render.Frame) {
	f.Sprite("projectile", p.Sprite, p.Pos, p.Speed.X < 0)
}

// Pool is a fixed arena of projectiles. Spawning takes a free slot when
// one exists and otherwise recycles the oldest live shot.
type Pool struct {
	slots []Projectile
	next  int
	seq   uint64
}

// NewPool allocates size slots.
func NewPool(size int) *Pool {
	return &Pool{slots: make([]Projectile, max(size, 1))}
}

// Cap returns the pool size.
func (p *Pool) Cap() int {
	return len(p.slots)
}

// Spawn initialises a slot from spec and returns it. Every field of the
// slot is reset, so nothing leaks from the previous occupant.
func (p *Pool) Spawn(spec object.ShotSpec) *Projectile {
	idx := p.take()
	p.seq++

	size := 4.0
	if spec.Big {
		size = 8
	}
	obj := object.New(spec.Pos, size, size)
	obj.Speed = spec.Speed
	obj.Target = spec.Speed
	obj.Friction = core.Vector{}
	obj.Sprite = core.NewSprite(1, 1)
	obj.InCamera = true

	p.slots[idx] = Projectile{
		Object:   obj,
		Damage:   spec.Damage,
		Life:     spec.Life,
		Homing:   spec.Homing,
		TurnRate: spec.TurnRate,
		Cruise:   spec.Speed.Length(),
		Friendly: spec.Friendly,
		Big:      spec.Big,
		seq:      p.seq,
	}
	return &p.slots[idx]
}

// Launch satisfies object.Launcher.
func (p *Pool) Launch(spec object.ShotSpec) {
	p.Spawn(spec)
}

func (p *Pool) take() int {
	n := len(p.slots)
	for i := 0; i < n; i++ {
		idx := (p.next + i) % n
		if !p.slots[idx].Exist {
			p.next = (idx + 1) % n
			return idx
		}
	}

	oldest := 0
	for i := range p.slots {
		if p.slots[i].seq < p.slots[oldest].seq {
			oldest = i
		}
	}
	p.next = (oldest + 1) % n
	return oldest
}

// Update steps every live projectile in slot order.
func (p *Pool) Update(ctx *object.Context) {
	for i := range p.slots {
		if p.slots[i].Exist {
			object.Step(ctx, &p.slots[i])
		}
	}
}

// Each calls fn for every live projectile in slot order.
func (p *Pool) Each(fn func(*Projectile)) {
	for i := range p.slots {
		if p.slots[i].Exist {
			fn(&p.slots[i])
		}
	}
}

// Active counts live projectiles.
func (p *Pool) Active() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Exist {
			n++
		}
	}
	return n
}

// Reset frees every slot.
func (p *Pool) Reset() {
	clear(p.slots)
	p.next = 0
	p.seq = 0
}
