package render

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/assets"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

func TestDrawBitmapFlip(t *testing.T) {
	scr := core.NewScreen(6, 2)
	c := NewScreenCanvas(scr)
	bmp := assets.NewBitmap("t", 3, 1, core.ColorRed, []string{"<o ", "ab)"})

	c.DrawBitmap(bmp, false, 0, 0, 0, 0, 3, 1)
	c.DrawBitmap(bmp, true, 3, 0, 0, 0, 3, 1)
	c.DrawBitmap(bmp, true, 0, 1, 0, 1, 3, 1)

	if got := scr.Row(0); got != "<o  o>" {
		t.Errorf("Row(0) = %q, expected %q", got, "<o  o>")
	}
	if got := scr.Row(1); got != "(ba   " {
		t.Errorf("Row(1) = %q, expected %q", got, "(ba   ")
	}
	if scr.GetCell(0, 0).Color != core.ColorRed {
		t.Error("bitmap colour should be used")
	}

	c.SetTint(core.ColorWhite)
	c.DrawBitmap(bmp, false, 0, 0, 0, 0, 1, 1)
	if scr.GetCell(0, 0).Color != core.ColorWhite {
		t.Error("tint should override bitmap colour")
	}
}

func TestDrawBitmapNilIsNoop(t *testing.T) {
	scr := core.NewScreen(2, 1)
	NewScreenCanvas(scr).DrawBitmap(nil, false, 0, 0, 0, 0, 2, 1)
	if scr.Row(0) != "  " {
		t.Error("nil bitmap should draw nothing")
	}
}

func TestCameraToCell(t *testing.T) {
	cam := NewCamera(10, 5)
	cam.Pos = core.Vec(16, 32)

	tests := []struct {
		p    core.Vector
		x, y int
	}{
		{core.Vec(16, 32), 0, 0},
		{core.Vec(23.9, 47.9), 0, 0},
		{core.Vec(24, 48), 1, 1},
		{core.Vec(0, 0), -2, -2},
	}
	for _, tt := range tests {
		x, y := cam.ToCell(tt.p)
		if x != tt.x || y != tt.y {
			t.Errorf("ToCell(%v) = (%d, %d), expected (%d, %d)", tt.p, x, y, tt.x, tt.y)
		}
	}

	w := cam.ToWorld(1, 1)
	if w.Dist(core.Vec(24, 48)) > 1e-9 {
		t.Errorf("ToWorld(1,1) = %+v, expected (24,48)", w)
	}
}

func TestCameraFollowClamps(t *testing.T) {
	cam := NewCamera(10, 5) // 80 x 80 world units
	cam.SetBounds(200, 100)

	cam.Follow(core.Vec(0, 0), 1)
	if cam.Pos.X != 0 || cam.Pos.Y != 0 {
		t.Errorf("Pos = %+v, expected clamp to origin", cam.Pos)
	}
	cam.Follow(core.Vec(1000, 1000), 1)
	if cam.Pos.X != 120 || cam.Pos.Y != 20 {
		t.Errorf("Pos = %+v, expected (120, 20)", cam.Pos)
	}
	cam.Follow(core.Vec(100, 50), 0.5)
	if cam.Pos.X != 90 {
		t.Errorf("Pos.X = %v, expected halfway 90", cam.Pos.X)
	}
}

func TestCameraVisible(t *testing.T) {
	cam := NewCamera(10, 5)
	area := core.Vec(8, 8)

	if !cam.Visible(core.Vec(40, 40), area) {
		t.Error("centre should be visible")
	}
	if !cam.Visible(core.Vec(88, 40), area) {
		t.Error("box touching the right edge should count as visible")
	}
	if cam.Visible(core.Vec(89, 40), area) {
		t.Error("box past the right edge should be culled")
	}
	if cam.Visible(core.Vec(40, -20), area) {
		t.Error("box above the view should be culled")
	}
}

func TestCameraShakeDecays(t *testing.T) {
	cam := NewCamera(10, 5)
	cam.Shake(2)
	for i := 0; i < 200; i++ {
		cam.Update(1)
	}
	if cam.Shaking() {
		t.Error("shake should decay to zero")
	}
	x, y := cam.ToCell(core.Vec(0, 0))
	if x != 0 || y != 0 {
		t.Error("offset should be cleared once shake ends")
	}
}

func TestFrameSpriteMissingAsset(t *testing.T) {
	scr := core.NewScreen(4, 2)
	f := &Frame{Canvas: NewScreenCanvas(scr), Camera: NewCamera(4, 2), Assets: assets.NewRegistry(nil)}
	f.Sprite("ghost", core.NewSprite(2, 1), core.Vec(8, 8), false)
	if scr.String() != "    \n    " {
		t.Error("missing sheet should draw nothing")
	}
}

func TestDrawMap(t *testing.T) {
	lvl, err := world.ParseLevel([]byte("id: t\ntiles: |\n  ..\n  #~\n"))
	if err != nil {
		t.Fatalf("ParseLevel() error = %v", err)
	}
	scr := core.NewScreen(4, 2)
	f := &Frame{Canvas: NewScreenCanvas(scr), Camera: NewCamera(4, 2)}
	f.DrawMap(lvl.Map)

	if got := scr.Row(1); got != "██~~" {
		t.Errorf("Row(1) = %q, expected %q", got, "██~~")
	}
	if got := scr.Row(0); got != "    " {
		t.Errorf("Row(0) = %q, expected blank", got)
	}
}
