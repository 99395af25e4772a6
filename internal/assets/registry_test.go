package assets

import (
	"testing"
	"time"
)

func TestDefaultManifestLoads(t *testing.T) {
	r := NewRegistry(nil)
	if r.Loaded() {
		t.Fatal("fresh registry should not be loaded")
	}
	if err := r.Load(DefaultManifest()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !r.Loaded() {
		t.Fatal("registry should be loaded")
	}

	for _, name := range []string{"player", "slime", "bat", "turret", "brute", "boss", "projectile", "coin", "chest", "lever", "spring", "door", "checkpoint", "sign"} {
		if _, ok := r.GetBitmap(name); !ok {
			t.Errorf("bitmap %q missing", name)
		}
	}
	for _, name := range []string{"jump", "attack", "hit", "hurt", "coin", "shoot", "explode"} {
		s, ok := r.GetSample(name)
		if !ok || s.Len() == 0 {
			t.Errorf("sample %q missing or empty", name)
		}
	}
	if m, ok := r.GetMusic("meadow"); !ok || m.Volume != 0.25 {
		t.Errorf("music meadow = %+v, %v", m, ok)
	}
}

func TestMissingAssetsAreNotErrors(t *testing.T) {
	r := NewRegistry(nil)
	if b, ok := r.GetBitmap("nope"); ok || b != nil {
		t.Error("missing bitmap should report !ok")
	}
	if _, ok := r.GetSample("nope"); ok {
		t.Error("missing sample should report !ok")
	}

	var nilReg *Registry
	if _, ok := nilReg.GetBitmap("player"); ok {
		t.Error("nil registry lookup should report !ok")
	}
}

func TestLoadAsyncSignalsDone(t *testing.T) {
	r := NewRegistry(nil)
	r.LoadAsync(DefaultManifest())

	select {
	case <-r.Done():
	case <-time.After(10 * time.Second):
		t.Fatal("async load did not finish")
	}
	if !r.Loaded() {
		t.Error("Loaded() should be true after Done")
	}
}

func TestBadNoteSkipsSample(t *testing.T) {
	m, err := ParseManifest([]byte(`
samples:
  good: {wave: sine, notes: [[440, 10]]}
  bad:  {wave: sine, notes: [[440]]}
  weird: {wave: kazoo, notes: [[440, 10]]}
`))
	if err != nil {
		t.Fatalf("ParseManifest() error = %v", err)
	}
	r := NewRegistry(nil)
	if err := r.Load(m); err == nil {
		t.Error("Load() should report the broken sample")
	}
	if _, ok := r.GetSample("good"); !ok {
		t.Error("valid sample should still load")
	}
	if _, ok := r.GetSample("bad"); ok {
		t.Error("broken sample should be skipped")
	}
}

func TestSynthesizeLength(t *testing.T) {
	notes := []Note{{Freq: 440, Duration: 50 * time.Millisecond}, {Freq: 0, Duration: 20 * time.Millisecond}}
	for _, w := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		t.Run(string(w), func(t *testing.T) {
			s, err := Synthesize("t", w, notes, 1)
			if err != nil {
				t.Fatalf("Synthesize() error = %v", err)
			}
			want := SampleRate.N(50*time.Millisecond) + SampleRate.N(20*time.Millisecond)
			if s.Len() != want {
				t.Errorf("Len() = %d, expected %d", s.Len(), want)
			}

			buf := make([][2]float64, s.Len())
			n, _ := s.Streamer().Stream(buf)
			for i := 0; i < n; i++ {
				if buf[i][0] < -1 || buf[i][0] > 1 {
					t.Fatalf("frame %d out of range: %f", i, buf[i][0])
				}
			}
		})
	}
}

func TestBitmapAtAndMirror(t *testing.T) {
	b := NewBitmap("t", 2, 1, 0, []string{"a b"})
	if r, ok := b.At(0, 0); !ok || r != 'a' {
		t.Errorf("At(0,0) = %q, %v", r, ok)
	}
	if _, ok := b.At(1, 0); ok {
		t.Error("space should be transparent")
	}
	if _, ok := b.At(9, 9); ok {
		t.Error("outside the sheet should be transparent")
	}
	if Mirror('<') != '>' || Mirror('/') != '\\' || Mirror('x') != 'x' {
		t.Error("Mirror() mapping wrong")
	}
}
