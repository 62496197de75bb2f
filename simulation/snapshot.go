package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// ErrNonFinite is returned when saving a particle with an infinite or NaN component.
var ErrNonFinite = errors.New("particle has a non-finite component")

type particleRecord struct {
	Position [2]float64 `json:"position" cbor:"position"`
	Velocity [2]float64 `json:"velocity" cbor:"velocity"`
	Tint     [3]float32 `json:"tint" cbor:"tint"`
}

type snapshot struct {
	Particles []particleRecord `json:"particles" cbor:"particles"`
}

// Store persists particles to a single file. Files ending in .cbor are
// CBOR encoded, everything else is JSON.
type Store struct {
	filePath  string
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
}

func NewStore(filePath string) *Store {
	s := &Store{
		filePath:  filePath,
		marshal:   json.Marshal,
		unmarshal: json.Unmarshal,
	}

	if strings.EqualFold(filepath.Ext(filePath), ".cbor") {
		s.marshal = cbor.Marshal
		s.unmarshal = cbor.Unmarshal
	}

	return s
}

func (s *Store) Path() string {
	return s.filePath
}

func (s *Store) Save(particles []Particle) error {
	snap := snapshot{Particles: make([]particleRecord, 0, len(particles))}
	for i, p := range particles {
		record := toRecord(p)
		if !record.finite() {
			return fmt.Errorf("particle %d: %w", i, ErrNonFinite)
		}
		snap.Particles = append(snap.Particles, record)
	}

	data, err := s.marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.filePath), 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	return os.WriteFile(s.filePath, data, 0644)
}

// Load reads the saved particles. A missing file yields no particles and no error.
func (s *Store) Load() ([]Particle, error) {
	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap snapshot
	if err := s.unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", s.filePath, err)
	}

	particles := make([]Particle, 0, len(snap.Particles))
	for _, record := range snap.Particles {
		particles = append(particles, record.particle())
	}
	return particles, nil
}

func toRecord(p Particle) particleRecord {
	return particleRecord{
		Position: [2]float64{p.Position.X().Value(), p.Position.Y().Value()},
		Velocity: [2]float64{p.Velocity.X().Value(), p.Velocity.Y().Value()},
		Tint:     [3]float32{p.Tint.X().Value(), p.Tint.Y().Value(), p.Tint.Z().Value()},
	}
}

func (r particleRecord) particle() Particle {
	return Particle{
		Position: NewPoint(r.Position[0], r.Position[1]),
		Velocity: NewPoint(r.Velocity[0], r.Velocity[1]),
		Tint:     NewColor(r.Tint[0], r.Tint[1], r.Tint[2]),
	}
}

func (r particleRecord) finite() bool {
	values := []float64{r.Position[0], r.Position[1], r.Velocity[0], r.Velocity[1]}
	for _, v := range r.Tint {
		values = append(values, float64(v))
	}

	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
