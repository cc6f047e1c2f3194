package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danherbriley/mamba-crystal-sorting-solution-riley/packing"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadValidScenario(t *testing.T) {
	path := writeTempConfig(t, `
radius: 10
symmetryStep: 90
shapes:
  - [[0,0],[1,0],[1,1],[0,1]]
`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10.0, s.Radius)
	assert.Equal(t, packing.SymmetryFourfold, s.Symmetry())
	assert.Len(t, s.Polygons(), 1)
	assert.Len(t, s.Polygons()[0], 4)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadDefaultsSymmetryStepToNone(t *testing.T) {
	path := writeTempConfig(t, `
radius: 5
shapes:
  - [[0,0],[1,0],[0,1]]
`)
	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, packing.SymmetryNone, s.Symmetry())
}

func TestLoadRejectsNonPositiveRadius(t *testing.T) {
	path := writeTempConfig(t, `
radius: 0
shapes:
  - [[0,0],[1,0],[0,1]]
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsUnrecognizedSymmetryStep(t *testing.T) {
	path := writeTempConfig(t, `
radius: 5
symmetryStep: 45
shapes:
  - [[0,0],[1,0],[0,1]]
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsEmptyShapeList(t *testing.T) {
	path := writeTempConfig(t, `
radius: 5
shapes: []
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsDegenerateShape(t *testing.T) {
	path := writeTempConfig(t, `
radius: 5
shapes:
  - [[0,0],[1,0]]
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.yaml")

	s := &Scenario{
		Radius:       12,
		SymmetryStep: 120,
		Shapes:       [][][2]float64{{{0, 0}, {1, 0}, {0, 1}}},
		Telemetry:    Telemetry{MQTTBroker: "tcp://localhost:1883", TopicPrefix: "packer"},
	}
	require.NoError(t, Save(path, s))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s.Radius, loaded.Radius)
	assert.Equal(t, s.SymmetryStep, loaded.SymmetryStep)
	assert.Equal(t, s.Telemetry.MQTTBroker, loaded.Telemetry.MQTTBroker)
}
