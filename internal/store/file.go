package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"edm4hep2lcio/lcio"
)

const fileSuffix = ".yaml.zst"

// Snapshot is the on-disk form of a registered event.
type Snapshot struct {
	RunNumber   int32                `yaml:"runNumber"`
	EventNumber int32                `yaml:"eventNumber"`
	TimeStamp   int64                `yaml:"timeStamp"`
	Collections []SnapshotCollection `yaml:"collections"`
}

// SnapshotCollection is one named collection inside a Snapshot. Elements
// stays undecoded; callers decode it into the matching lcio slice type.
// Non-finite floats are written as .nan, .inf and -.inf.
type SnapshotCollection struct {
	Name     string    `yaml:"name"`
	Type     string    `yaml:"type"`
	Elements yaml.Node `yaml:"elements"`
}

// File writes events into a directory, one file per key.
type File struct {
	dir string
}

// NewFile creates a file store rooted at dir, creating it if needed.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}

	return &File{dir: dir}, nil
}

// Path returns the file that holds key.
func (f *File) Path(key string) string {
	name := strings.ReplaceAll(strings.Trim(key, "/"), "/", "_")
	if name == "" {
		name = "root"
	}

	return filepath.Join(f.dir, name+fileSuffix)
}

// Register encodes ev and writes it under key.
func (f *File) Register(key string, ev *lcio.Event) error {
	if ev == nil {
		return ErrNilEvent
	}

	snap, err := newSnapshot(ev)
	if err != nil {
		return err
	}

	path := f.Path(key)

	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrAlreadyRegistered, key)
		}

		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := writeSnapshot(out, snap); err != nil {
		_ = out.Close()
		_ = os.Remove(path)

		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return out.Close()
}

// Load reads back the snapshot registered under key.
func (f *File) Load(key string) (*Snapshot, error) {
	in, err := os.Open(f.Path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}

		return nil, err
	}
	defer in.Close()

	dec, err := zstd.NewReader(in)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var snap Snapshot
	if err := yaml.NewDecoder(dec).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", key, err)
	}

	return &snap, nil
}

func newSnapshot(ev *lcio.Event) (*Snapshot, error) {
	snap := &Snapshot{
		RunNumber:   ev.RunNumber,
		EventNumber: ev.EventNumber,
		TimeStamp:   ev.TimeStamp,
	}

	for _, name := range ev.CollectionNames() {
		c, err := ev.Collection(name)
		if err != nil {
			return nil, err
		}

		sc := SnapshotCollection{Name: name, Type: c.TypeName()}
		if err := sc.Elements.Encode(c); err != nil {
			return nil, fmt.Errorf("failed to encode collection %s: %w", name, err)
		}

		snap.Collections = append(snap.Collections, sc)
	}

	return snap, nil
}

func writeSnapshot(out *os.File, snap *Snapshot) error {
	enc, err := zstd.NewWriter(out)
	if err != nil {
		return err
	}

	ye := yaml.NewEncoder(enc)
	if err := ye.Encode(snap); err != nil {
		_ = enc.Close()
		return err
	}

	if err := ye.Close(); err != nil {
		_ = enc.Close()
		return err
	}

	return enc.Close()
}
