package stage

import (
	"fmt"
	"hash/fnv"
	"math"
)

// Snapshot is a compact view of stage state for replays and determinism
// checks. Positions are rounded to 1/1000 of a unit.
type Snapshot struct {
	Step         int64
	PlayerX      int64
	PlayerY      int64
	PlayerHealth int
	Coins        int
	Enemies      []EnemyState
	Items        int
	Shots        int
}

// EnemyState is one enemy's part of a snapshot.
type EnemyState struct {
	Kind   string
	X, Y   int64
	Health int
	Mode   int
}

func fixed(v float64) int64 {
	return int64(math.Round(v * 1000))
}

// Snapshot captures the current state.
func (s *Stage) Snapshot() Snapshot {
	snap := Snapshot{
		Step:         s.ctx.Step,
		PlayerX:      fixed(s.Player.Pos.X),
		PlayerY:      fixed(s.Player.Pos.Y),
		PlayerHealth: s.Player.Health,
		Coins:        s.Player.Coins,
		Items:        len(s.Items),
		Shots:        s.Shots.Active(),
	}
	for _, e := range s.Enemies {
		c := e.EnemyCore()
		snap.Enemies = append(snap.Enemies, EnemyState{
			Kind:   c.Kind,
			X:      fixed(c.Pos.X),
			Y:      fixed(c.Pos.Y),
			Health: c.Health,
			Mode:   c.Mode,
		})
	}
	return snap
}

// Hash returns a hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "S:%d;P:%d,%d,%d,%d;", snap.Step, snap.PlayerX, snap.PlayerY, snap.PlayerHealth, snap.Coins)
	for _, e := range snap.Enemies {
		fmt.Fprintf(h, "E:%s:%d:%d:%d:%d,", e.Kind, e.X, e.Y, e.Health, e.Mode)
	}
	fmt.Fprintf(h, ";I:%d;X:%d", snap.Items, snap.Shots)
	return h.Sum64()
}
