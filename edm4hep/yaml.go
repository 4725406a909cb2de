package edm4hep

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// eventFile is the on-disk form of an Event. A null list entry is an
// unavailable slot.
type eventFile struct {
	Tracks                 map[string][]*Track                 `yaml:"tracks"`
	ParticleIDs            map[string][]*ParticleID            `yaml:"particleIDs"`
	ReconstructedParticles map[string][]*ReconstructedParticle `yaml:"reconstructedParticles"`
	Vertices               map[string][]*Vertex                `yaml:"vertices"`
}

// LoadEvent reads and parses a YAML event file.
func LoadEvent(path string) (*Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read event file %s: %w", path, err)
	}

	return ParseEvent(data)
}

// ParseEvent parses YAML data into an Event.
func ParseEvent(data []byte) (*Event, error) {
	var ef eventFile

	if err := yaml.Unmarshal(data, &ef); err != nil {
		return nil, fmt.Errorf("failed to parse event YAML: %w", err)
	}

	ev := NewEvent()

	for _, name := range sortedKeys(ef.Tracks) {
		if err := ev.AddTracks(fromSlots(name, ef.Tracks[name])); err != nil {
			return nil, err
		}
	}

	for _, name := range sortedKeys(ef.ParticleIDs) {
		if err := ev.AddParticleIDs(fromSlots(name, ef.ParticleIDs[name])); err != nil {
			return nil, err
		}
	}

	for _, name := range sortedKeys(ef.ReconstructedParticles) {
		if err := ev.AddReconstructedParticles(fromSlots(name, ef.ReconstructedParticles[name])); err != nil {
			return nil, err
		}
	}

	for _, name := range sortedKeys(ef.Vertices) {
		if err := ev.AddVertices(fromSlots(name, ef.Vertices[name])); err != nil {
			return nil, err
		}
	}

	return ev, nil
}

func fromSlots[T any](name string, slots []*T) *Collection[T] {
	c := &Collection[T]{name: name, items: make([]*T, 0, len(slots))}
	for _, s := range slots {
		if s == nil {
			c.AppendUnavailable()
			continue
		}

		c.Append(*s)
	}

	return c
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
