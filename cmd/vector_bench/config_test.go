package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
max_capacity: 1024
debug_addr: "127.0.0.1:6060"
workloads:
  - name: small-push
    kind: push
    elements: 100
    repeat: 3
  - kind: shrink
    elements: 10
`

func TestParseConfig(t *testing.T) {
	conf, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, 1024, conf.MaxCapacity)
	assert.Equal(t, "127.0.0.1:6060", conf.DebugAddr)
	require.Len(t, conf.Workloads, 2)

	assert.Equal(t, Workload{Name: "small-push", Kind: KindPush, Elements: 100, Repeat: 3}, conf.Workloads[0])
	assert.Equal(t, Workload{Name: "shrink-1", Kind: KindShrink, Elements: 10, Repeat: 1}, conf.Workloads[1])
}

func TestParseConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "workloads: ["},
		{"no workloads", "max_capacity: 8\n"},
		{"negative capacity", "max_capacity: -1\nworkloads:\n  - kind: push\n"},
		{"unknown kind", "workloads:\n  - kind: sort\n"},
		{"negative elements", "workloads:\n  - kind: push\n    elements: -3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0644))

	conf, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Len(t, conf.Workloads, 2)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}
