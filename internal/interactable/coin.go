package interactable

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/object"
	"github.com/vovakirdan/tui-platformer/internal/render"
)

// Coin types, also the sheet row.
const (
	CoinCopper = iota
	CoinSilver
	CoinGold
	coinTypes
)

// coinValues is indexed by coin type.
var coinValues = [coinTypes]int{1, 5, 10}

const (
	coinLife        = 600.0 // ticks before a dropped coin vanishes
	coinBlinkAt     = 120.0
	coinPickupDelay = 20.0
)

// Coin is a bouncing pickup. Placed coins never expire; dropped coins do.
type Coin struct {
	Core

	Type    int
	Value   int
	Dropped bool
	life    float64
	delay   float64
}

// NewCoin places a coin of the given type at pos.
func NewCoin(pos core.Vector, typ int) *Coin {
	typ = core.Clamp(typ, 0, coinTypes-1)
	c := &Coin{Core: newCore("coin", pos, 6, 6), Type: typ, Value: coinValues[typ]}
	c.Weight = true
	c.Friction = core.Vec(0.03, 1)
	c.Bounce = core.Vec(0.6, 0.55)
	c.Sprite.Row = typ
	return c
}

// DropCoin creates a coin tossed out of a dying enemy or an opened chest.
func DropCoin(pos core.Vector, typ int, speed core.Vector) *Coin {
	c := NewCoin(pos, typ)
	c.Speed = speed
	c.Dropped = true
	c.life = coinLife
	c.delay = coinPickupDelay
	c.InCamera = true
	return c
}

// Age runs the pickup delay and, for dropped coins, the lifetime.
func (c *Coin) Age(ctx *object.Context) {
	if c.delay > 0 {
		c.delay -= ctx.Tick
	}
	if c.Dropped {
		c.life -= ctx.Tick
		if c.life <= 0 {
			c.Exist = false
		}
	}
}

func (c *Coin) UpdateLogic(ctx *object.Context) {
	if c.TouchSurface {
		c.Target.X = 0
	}
	c.Sprite.Animate(c.Type, 0, 1, 10, ctx.Tick)
}

func (c *Coin) PlayerEvent(ctx *object.Context, p object.Player) {
	if !c.CanInteract || c.delay > 0 || !c.touching(p) {
		return
	}
	c.CanInteract = false
	p.AddCoins(c.Value)
	ctx.Sound("coin", 0.5)
	c.Exist = false
}

func (c *Coin) Draw(f *render.Frame) {
	if c.Dropped && c.life < coinBlinkAt && f.Flicker() {
		return
	}
	c.Core.Draw(f)
}
