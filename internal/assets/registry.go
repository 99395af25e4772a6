package assets

import (
	_ "embed"
	"fmt"
	"hash/fnv"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

//go:embed manifest.yaml
var defaultManifest []byte

// Manifest is the decoded asset description.
type Manifest struct {
	Bitmaps map[string]BitmapSpec `yaml:"bitmaps"`
	Samples map[string]SoundSpec  `yaml:"samples"`
	Music   map[string]SoundSpec  `yaml:"music"`
}

// BitmapSpec describes one glyph sheet.
type BitmapSpec struct {
	FrameW int      `yaml:"frame_w"`
	FrameH int      `yaml:"frame_h"`
	Color  string   `yaml:"color"`
	Rows   []string `yaml:"rows"`
}

// SoundSpec describes a synthesised sound.
type SoundSpec struct {
	Wave   Wave        `yaml:"wave"`
	Volume float64     `yaml:"volume"`
	Notes  [][]float64 `yaml:"notes"`
}

// ParseManifest decodes a YAML manifest.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("assets: parse manifest: %w", err)
	}
	return m, nil
}

// DefaultManifest returns the embedded manifest.
func DefaultManifest() Manifest {
	m, err := ParseManifest(defaultManifest)
	if err != nil {
		panic(err)
	}
	return m
}

// Registry holds loaded assets. Lookups are safe while a load is running.
type Registry struct {
	mu      sync.RWMutex
	bitmaps map[string]*Bitmap
	samples map[string]*Sample
	music   map[string]*Sample

	loaded atomic.Bool
	done   chan struct{}
	logger *log.Logger
}

// NewRegistry creates an empty registry. logger may be nil.
func NewRegistry(logger *log.Logger) *Registry {
	return &Registry{
		bitmaps: make(map[string]*Bitmap),
		samples: make(map[string]*Sample),
		music:   make(map[string]*Sample),
		done:    make(chan struct{}),
		logger:  logger,
	}
}

// LoadAsync loads the manifest on a background goroutine. Bitmaps become
// available first; poll Loaded to know when every sample is ready.
func (r *Registry) LoadAsync(m Manifest) {
	go func() {
		if err := r.Load(m); err != nil && r.logger != nil {
			r.logger.Error("asset load failed", "err", err)
		}
	}()
}

// Load loads the manifest synchronously. A sample that fails to synthesise
// is skipped; the first such error is returned after everything else loaded.
func (r *Registry) Load(m Manifest) error {
	defer r.markLoaded()

	for _, name := range sortedKeys(m.Bitmaps) {
		spec := m.Bitmaps[name]
		bmp := NewBitmap(name, spec.FrameW, spec.FrameH, core.ParseColor(spec.Color), spec.Rows)
		r.mu.Lock()
		r.bitmaps[name] = bmp
		r.mu.Unlock()
	}

	var firstErr error
	load := func(kind string, specs map[string]SoundSpec, into map[string]*Sample) {
		for _, name := range sortedKeys(specs) {
			s, err := buildSound(name, specs[name])
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			r.mu.Lock()
			into[name] = s
			r.mu.Unlock()
			if r.logger != nil {
				r.logger.Debug("asset loaded", "kind", kind, "name", name, "frames", s.Len())
			}
		}
	}
	load("sample", m.Samples, r.samples)
	load("music", m.Music, r.music)
	return firstErr
}

func (r *Registry) markLoaded() {
	if r.loaded.CompareAndSwap(false, true) {
		close(r.done)
	}
}

func buildSound(name string, spec SoundSpec) (*Sample, error) {
	notes := make([]Note, 0, len(spec.Notes))
	for i, n := range spec.Notes {
		if len(n) != 2 {
			return nil, fmt.Errorf("assets: sample %q: note %d needs [freq, ms]", name, i)
		}
		notes = append(notes, Note{Freq: n[0], Duration: time.Duration(n[1] * float64(time.Millisecond))})
	}
	h := fnv.New64a()
	h.Write([]byte(name))
	s, err := Synthesize(name, spec.Wave, notes, int64(h.Sum64()))
	if err != nil {
		return nil, err
	}
	if spec.Volume > 0 {
		s.Volume = spec.Volume
	}
	return s, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Loaded reports whether the last load finished.
func (r *Registry) Loaded() bool {
	return r.loaded.Load()
}

// Done is closed once loading finishes.
func (r *Registry) Done() <-chan struct{} {
	return r.done
}

// GetBitmap looks up a glyph sheet.
func (r *Registry) GetBitmap(name string) (*Bitmap, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bitmaps[name]
	return b, ok
}

// GetSample looks up a sound effect.
func (r *Registry) GetSample(name string) (*Sample, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.samples[name]
	return s, ok
}

// GetMusic looks up a music track.
func (r *Registry) GetMusic(name string) (*Sample, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.music[name]
	return s, ok
}
