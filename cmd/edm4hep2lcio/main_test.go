package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edm4hep2lcio/internal/store"
)

const testEvent = `
tracks:
  Tracks:
    - {type: 1, chi2: 1.5, ndf: 3}
    - {type: 2, chi2: 2.5, ndf: 4}
particleIDs:
  PIDs:
    - {pdg: 11, likelihood: 0.5}
reconstructedParticles:
  RPs:
    - type: 11
      particleIDUsed: {collection: PIDs, index: 0}
      tracks:
        - {collection: Tracks, index: 1}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestRunWritesSnapshot(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")

	cfg := writeFile(t, dir, "conv.yaml", `
collections: [Track, Tracks, _, ParticleID, PIDs, _, ReconstructedParticle, RPs, _, Cluster, Clusters, _]
log_level: error
output: `+out+"\n")
	input := writeFile(t, dir, "event.yaml", testEvent)

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-config", cfg, "-input", input}, &stdout, &stderr))

	assert.Contains(t, stdout.String(), "Event_LCEvent.yaml.zst")
	assert.Contains(t, stderr.String(), "unrecognized_type")

	fs, err := store.NewFile(out)
	require.NoError(t, err)

	snap, err := fs.Load("/Event/LCEvent")
	require.NoError(t, err)
	assert.Equal(t, int32(1), snap.RunNumber)
	require.Len(t, snap.Collections, 2)
	assert.Equal(t, "Track", snap.Collections[0].Name)
	assert.Equal(t, "ReconstructedParticle", snap.Collections[1].Name)
}

func TestRunDump(t *testing.T) {
	dir := t.TempDir()

	cfg := writeFile(t, dir, "conv.yaml", "collections: [Track, Tracks, _]\nlog_level: error\n")
	input := writeFile(t, dir, "event.yaml", testEvent)

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-config", cfg, "-input", input, "-dump"}, &stdout, &stderr))

	assert.Contains(t, stdout.String(), "registered /Event/LCEvent")
	assert.Contains(t, stdout.String(), "lcio.Event")
	assert.Empty(t, stderr.String())
}

func TestRunMalformedRequest(t *testing.T) {
	dir := t.TempDir()

	cfg := writeFile(t, dir, "conv.yaml", "collections: [Track, Tracks]\nlog_level: error\n")
	input := writeFile(t, dir, "event.yaml", testEvent)

	var stdout, stderr bytes.Buffer
	err := run([]string{"-config", cfg, "-input", input}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error processing conversion parameters")
}

func TestRunRequiresFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(nil, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "-config")
}
