package object

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/event"
	"github.com/vovakirdan/tui-platformer/internal/render"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

type dummy struct {
	Object
	logic   int
	dyingN  int
	walls   []int
	slopes  []float64
	met     int
	died    int
	touched []Entity
	always  bool
}

func (d *dummy) Base() *Object { return &d.Object }
func (d *dummy) UpdateLogic(*Context) { d.logic++ }
func (d *dummy) DyingLogic(*Context) { d.dyingN++ }
func (d *dummy) WallCollisionEvent(_ *Context, dir int) { d.walls = append(d.walls, dir) }
func (d *dummy) SlopeCollisionEvent(_ *Context, _ int, k float64) {
	d.slopes = append(d.slopes, k)
}
func (d *dummy) PlayerEvent(*Context, Player) { d.met++ }
func (d *dummy) Die(*Context) { d.died++ }
func (d *dummy) EnemyCollisionEvent(_ *Context, e Entity) { d.touched = append(d.touched, e) }
func (d *dummy) AlwaysActive() bool { return d.always }

type stubPlayer struct {
	dummy
	alive bool
}

func (p *stubPlayer) Alive() bool { return p.alive }
func (p *stubPlayer) Hurt(*Context, int, core.Vector) bool { return true }
func (p *stubPlayer) Heal(int) {}
func (p *stubPlayer) AddCoins(int) {}
func (p *stubPlayer) AttackBox() (core.Rect, bool) { return core.Rect{}, false }
func (p *stubPlayer) Launch(float64) {}
func (p *stubPlayer) SetCheckpoint(core.Vector) {}

func mustMap(t *testing.T, tiles string) *world.Map {
	t.Helper()
	lvl, err := world.ParseLevel([]byte("id: t\ntiles: |\n" + tiles))
	if err != nil {
		t.Fatalf("ParseLevel() error = %v", err)
	}
	return lvl.Map
}

func newDummy(x, y float64) *dummy {
	return &dummy{Object: New(core.Vec(x, y), 8, 8)}
}

func testContext(m *world.Map) *Context {
	return &Context{World: m, Events: &event.Bag{}, Physics: DefaultPhysics(), Tick: 1}
}

func TestFrictionConvergesWithoutOvershoot(t *testing.T) {
	for _, f := range []float64{0.01, 0.05, 0.3, 0.5, 0.9, 0.99} {
		for _, start := range []float64{-10, 0, 2.5, 20} {
			o := Object{Speed: core.Vec(start, start), Target: core.Vec(3, -1), Friction: core.Vec(f, f)}
			prevX, prevY := math.Abs(o.Target.X-o.Speed.X), math.Abs(o.Target.Y-o.Speed.Y)
			signX := core.Sign(o.Target.X - o.Speed.X)

			steps := 0
			for ; steps < 5000 && (o.Speed.X != o.Target.X || o.Speed.Y != o.Target.Y); steps++ {
				o.ApplyFriction(1)
				gapX, gapY := math.Abs(o.Target.X-o.Speed.X), math.Abs(o.Target.Y-o.Speed.Y)
				if gapX > prevX || gapY > prevY {
					t.Fatalf("f=%v start=%v: gap grew at step %d", f, start, steps)
				}
				if s := core.Sign(o.Target.X - o.Speed.X); s != 0 && s != signX {
					t.Fatalf("f=%v start=%v: overshoot at step %d", f, start, steps)
				}
				prevX, prevY = gapX, gapY
			}
			if o.Speed != o.Target {
				t.Errorf("f=%v start=%v: did not reach target after %d steps, speed=%+v", f, start, steps, o.Speed)
			}
		}
	}
}

func TestFrictionEdgeRates(t *testing.T) {
	o := Object{Speed: core.Vec(5, 5), Target: core.Vec(0, 0), Friction: core.Vec(0, 1)}
	o.ApplyFriction(1)
	if o.Speed.X != 5 {
		t.Errorf("friction 0 should hold speed, got %v", o.Speed.X)
	}
	if o.Speed.Y != 0 {
		t.Errorf("friction 1 should reach target at once, got %v", o.Speed.Y)
	}
}

func TestCapSpeed(t *testing.T) {
	o := Object{Speed: core.Vec(-20, 20), MaxSpeed: core.Vec(5, 0)}
	o.CapSpeed()
	if o.Speed.X != -5 || o.Speed.Y != 20 {
		t.Errorf("CapSpeed() = %+v, expected (-5, 20)", o.Speed)
	}
}

func TestKnockbackDecaysThroughFriction(t *testing.T) {
	o := New(core.Vec(100, 100), 8, 8)
	o.Friction = core.Vec(0.2, 0.2)
	o.Knockback(core.Vec(90, 100), 4, core.Vec(1, 0.5))
	if o.Speed.X != 4 || o.Speed.Y != -2 {
		t.Fatalf("Knockback() speed = %+v, expected (4, -2)", o.Speed)
	}
	if !o.Knocked(0.5) {
		t.Error("fresh knockback should count as knocked")
	}
	for i := 0; i < 30; i++ {
		o.ApplyFriction(1)
	}
	if o.Knocked(0.5) {
		t.Errorf("knockback should decay, speed = %+v", o.Speed)
	}
}

func TestFastFallDoesNotTunnel(t *testing.T) {
	m := mustMap(t, "  ....\n  ....\n  ....\n  ....\n  ....\n  ####\n  ....\n  ....\n")
	o := New(core.Vec(24, 8), 8, 8)

	c := o.MoveAndCollide(m, core.Vec(0, 200))
	if !c.Floor || !o.TouchSurface {
		t.Fatalf("expected a floor hit, got %+v", c)
	}
	if o.Bottom() != 5*world.TileSize {
		t.Errorf("Bottom() = %v, expected %v", o.Bottom(), 5*world.TileSize)
	}
}

func TestFastSideMoveDoesNotTunnel(t *testing.T) {
	m := mustMap(t, "  ...#....\n  ...#....\n  ##########\n")
	o := New(core.Vec(8, 20), 8, 8)

	c := o.MoveAndCollide(m, core.Vec(120, 0))
	if c.Wall != 1 {
		t.Fatalf("Wall = %d, expected 1", c.Wall)
	}
	_, _, r, _ := o.CollisionBox.Bounds(o.Pos)
	if r > 3*world.TileSize {
		t.Errorf("right edge %v passed the wall at %v", r, 3*world.TileSize)
	}
}

func TestWalkUpSlope(t *testing.T) {
	m := mustMap(t, "  ......\n  ..../#\n  ######\n")
	o := New(core.Vec(40, 28), 8, 8)
	o.TouchSurface = true

	for o.Pos.X < 72 {
		o.DidTouchSurface = o.TouchSurface
		o.MoveAndCollide(m, core.Vec(1, 1))
	}
	want := world.TileSize + world.TileSize*(1-(72-4*world.TileSize)/world.TileSize)
	if math.Abs(o.Bottom()-want) > 1e-9 {
		t.Errorf("Bottom() = %v, expected slope surface %v", o.Bottom(), want)
	}
	if !o.TouchSurface || o.Steepness != -1 {
		t.Errorf("TouchSurface=%v Steepness=%v, expected grounded on '/'", o.TouchSurface, o.Steepness)
	}
}

func TestWalkDownSlopeSticks(t *testing.T) {
	m := mustMap(t, "  ......\n  ##\\...\n  ######\n")
	o := New(core.Vec(24, 12), 8, 8)
	o.TouchSurface = true

	for o.Pos.X < 44 {
		o.DidTouchSurface = o.TouchSurface
		o.MoveAndCollide(m, core.Vec(1, 0))
		if o.Pos.X > 32 && !o.TouchSurface {
			t.Fatalf("lost the ground at x=%v bottom=%v", o.Pos.X, o.Bottom())
		}
	}
	if o.Steepness != 1 {
		t.Errorf("Steepness = %v, expected 1 on '\\'", o.Steepness)
	}
}

func TestOneWayPlatform(t *testing.T) {
	m := mustMap(t, "  ....\n  ....\n  ====\n  ....\n  ....\n")

	falling := New(core.Vec(24, 20), 8, 8)
	if c := falling.MoveAndCollide(m, core.Vec(0, 10)); !c.Floor {
		t.Error("falling onto a one-way platform should land")
	}

	rising := New(core.Vec(24, 60), 8, 8)
	rising.MoveAndCollide(m, core.Vec(0, -30))
	if rising.Pos.Y != 30 {
		t.Errorf("jumping up through a one-way platform should pass, y = %v", rising.Pos.Y)
	}

	dropping := New(core.Vec(24, 28), 8, 8)
	dropping.DropThrough = true
	if c := dropping.MoveAndCollide(m, core.Vec(0, 4)); c.Floor {
		t.Error("DropThrough should fall through")
	}
}

func TestCeiling(t *testing.T) {
	m := mustMap(t, "  ####\n  ....\n  ....\n")
	o := New(core.Vec(24, 40), 8, 8)
	c := o.MoveAndCollide(m, core.Vec(0, -40))
	if !c.Ceiling {
		t.Fatal("expected a ceiling hit")
	}
	_, top, _, _ := o.CollisionBox.Bounds(o.Pos)
	if top != world.TileSize {
		t.Errorf("top = %v, expected %v", top, world.TileSize)
	}
}

func TestWaterAndHazardFlags(t *testing.T) {
	m := mustMap(t, "  ~~..\n  ~~^^\n  ####\n")
	o := New(core.Vec(8, 8), 8, 8)
	o.MoveAndCollide(m, core.Vector{})
	if !o.InWater {
		t.Error("expected InWater")
	}
	h := New(core.Vec(40, 20), 8, 8)
	h.MoveAndCollide(m, core.Vector{})
	if !h.OnHazard {
		t.Error("expected OnHazard above spikes")
	}
}

func TestStepPipelineHooks(t *testing.T) {
	m := mustMap(t, "  .....#\n  .....#\n  ######\n")
	ctx := testContext(m)
	d := newDummy(60, 28)
	d.Weight = true
	d.Friction.X = 1
	d.Target.X = 3

	for i := 0; i < 30; i++ {
		d.Target.X = 3
		Step(ctx, d)
	}
	if d.logic != 30 {
		t.Errorf("UpdateLogic ran %d times, expected 30", d.logic)
	}
	if len(d.walls) == 0 || d.walls[0] != 1 {
		t.Errorf("walls = %v, expected right wall hits", d.walls)
	}
	if !d.TouchSurface {
		t.Error("weighted object should come to rest on the floor")
	}
	if d.met != 0 {
		t.Error("PlayerEvent must not run without a player")
	}

	p := &stubPlayer{dummy: *newDummy(10, 10), alive: true}
	ctx.Player = p
	Step(ctx, d)
	if d.met != 1 {
		t.Errorf("PlayerEvent ran %d times, expected 1", d.met)
	}
	p.alive = false
	Step(ctx, d)
	if d.met != 1 {
		t.Error("PlayerEvent must not run for a dead player")
	}
}

func TestKillAndDeathTimer(t *testing.T) {
	ctx := testContext(nil)
	d := newDummy(0, 0)

	Kill(ctx, d, 3)
	Kill(ctx, d, 3)
	if d.died != 1 {
		t.Errorf("Die ran %d times, expected once", d.died)
	}
	if !d.Dying || !d.IsActive() || d.Alive() {
		t.Fatal("dying entity should be active but not alive")
	}

	for i := 0; i < 2; i++ {
		Step(ctx, d)
	}
	if d.logic != 0 || d.dyingN != 2 {
		t.Errorf("logic=%d dying=%d, expected only DyingLogic", d.logic, d.dyingN)
	}
	Step(ctx, d)
	if d.IsActive() {
		t.Error("entity should be removed when the timer runs out")
	}

	e := newDummy(0, 0)
	Kill(ctx, e, 0)
	if e.IsActive() || e.died != 1 {
		t.Error("zero duration should remove at once")
	}
}

func TestCullingSkipsOffscreenLogic(t *testing.T) {
	ctx := testContext(nil)
	ctx.Camera = render.NewCamera(10, 5)

	far := newDummy(5000, 5000)
	Step(ctx, far)
	if far.logic != 0 || far.InCamera {
		t.Error("offscreen entity should be culled and skip logic")
	}

	far.always = true
	Step(ctx, far)
	if far.logic != 1 {
		t.Error("AlwaysActive entity should update offscreen")
	}

	near := newDummy(20, 20)
	Step(ctx, near)
	if near.logic != 1 || !near.InCamera {
		t.Error("visible entity should update")
	}
}

type aging struct {
	dummy
	life float64
}

func (a *aging) Age(ctx *Context) {
	a.life -= ctx.Tick
	if a.life <= 0 {
		a.Exist = false
	}
}

func TestOffscreenTimersKeepRunning(t *testing.T) {
	ctx := testContext(nil)
	ctx.Camera = render.NewCamera(10, 5)

	d := newDummy(5000, 5000)
	Kill(ctx, d, 20)
	for i := 0; i < 20; i++ {
		Step(ctx, d)
	}
	if d.IsActive() || d.InCamera {
		t.Errorf("offscreen dying entity: active=%v, expected removed", d.IsActive())
	}
	if d.dyingN != 0 {
		t.Errorf("DyingLogic ran %d times offscreen, expected 0", d.dyingN)
	}

	a := &aging{dummy: *newDummy(5000, 5000), life: 30}
	for i := 0; i < 29; i++ {
		Step(ctx, a)
	}
	if !a.Exist || a.logic != 0 {
		t.Fatalf("Age() exist=%v logic=%d, expected alive and culled", a.Exist, a.logic)
	}
	Step(ctx, a)
	if a.Exist {
		t.Error("offscreen entity should expire when its lifetime runs out")
	}
}

func TestCollideIsSymmetric(t *testing.T) {
	ctx := testContext(nil)
	a, b := newDummy(0, 0), newDummy(8, 0)

	if !Collide(ctx, a, b) {
		t.Fatal("touching hitboxes should collide")
	}
	if len(a.touched) != 1 || len(b.touched) != 1 {
		t.Errorf("both sides should be told, got %d and %d", len(a.touched), len(b.touched))
	}
	if !Collide(ctx, b, a) {
		t.Error("Collide must not depend on argument order")
	}

	c := newDummy(8.01, 0)
	if Collide(ctx, a, c) {
		t.Error("separated hitboxes should not collide")
	}
}

func TestContextSpawnQueue(t *testing.T) {
	ctx := testContext(nil)
	ctx.Spawn(newDummy(0, 0))
	ctx.Spawn(newDummy(1, 0))
	if got := len(ctx.TakeSpawns()); got != 2 {
		t.Errorf("TakeSpawns() = %d entities, expected 2", got)
	}
	if got := len(ctx.TakeSpawns()); got != 0 {
		t.Errorf("queue should be empty, got %d", got)
	}
}
