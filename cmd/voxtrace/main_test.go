package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/voxkit/internal/trace"
)

const jobsYAML = `
jobs:
  - id: 0b7e5c9e-5d43-4bb4-9d43-7c2f1b0a6d11
    start: [0.5, 0.5, 0.5]
    end: [3.5, 0.5, 0.5]
  - id: 6f1c2a7e-4b8d-4e0f-9a3c-2d5e7f9b1c40
    start: [0.5, 5.5, 0.5]
    direction: [0, -1, 0]
    distance: 10
    solid:
      - [0, 2, 0]
`

func testConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "voxkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: error\n"), 0o600))
	return path
}

func TestRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frames.bin")
	var stdout bytes.Buffer

	err := run(context.Background(), options{
		configPath: testConfig(t),
		jobsPath:   "-",
		outPath:    out,
		verify:     true,
	}, strings.NewReader(jobsYAML), &stdout)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "0b7e5c9e-5d43-4bb4-9d43-7c2f1b0a6d11\t4 voxels\thit=-")
	assert.Contains(t, lines[1], "4 voxels\thit=Vector3(x=0,y=2,z=0)")
	assert.Equal(t, "traced 2 jobs: 8 voxels, 74 frame bytes", lines[2])

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	frames, err := trace.DecodeFrames(data)
	require.NoError(t, err)
	require.Len(t, frames, 2)
	assert.Equal(t, "6f1c2a7e-4b8d-4e0f-9a3c-2d5e7f9b1c40", frames[1].JobID.String())
}

func TestRun_JSONJobs(t *testing.T) {
	jobs := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, os.WriteFile(jobs, []byte(`{"jobs":[{"start":[0,0,0],"end":[0,0,2]}]}`), 0o600))

	var stdout bytes.Buffer
	err := run(context.Background(), options{configPath: testConfig(t), jobsPath: jobs}, nil, &stdout)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "3 voxels")
}

func TestRun_FailedJob(t *testing.T) {
	var stdout bytes.Buffer
	err := run(context.Background(), options{configPath: testConfig(t), jobsPath: "-"},
		strings.NewReader("jobs:\n  - start: [1, 1, 1]\n    end: [1, 1, 1]\n"), &stdout)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 jobs failed")
	assert.Contains(t, stdout.String(), "\terror\t")
}

func TestRun_MissingJobs(t *testing.T) {
	err := run(context.Background(), options{
		configPath: testConfig(t),
		jobsPath:   filepath.Join(t.TempDir(), "nope.yaml"),
	}, nil, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open jobs")
}
