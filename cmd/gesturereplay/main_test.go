package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunPlacesAndScales(t *testing.T) {
	dir := t.TempDir()
	script := writeFile(t, dir, "script.yaml", `
steps:
  - {action: mode, mode: placement}
  - {action: doubletap, x: 320, y: 240}
  - {action: mode, mode: scaling}
  - {action: pinch, x: 320, y: 240, from: 100, to: 140, frames: 5}
`)

	out, err := execute(t, "run", script)
	require.NoError(t, err)
	assert.Contains(t, out, "mode: scaling")
	assert.Contains(t, out, "placed: 1")
	assert.Contains(t, out, "events: placed=1 deleted=0")
	assert.Contains(t, out, "scale=1.000")
}

func TestRunWithSceneAndConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "cfg.yaml", "initialScaleFactor: 0.5\n")
	scene := writeFile(t, dir, "scene.yaml", `
viewport: {width: 800, height: 600}
camera: {eye: [0, 2, 3], target: [0, 0, 0], fovY: 50}
planes:
  - {id: 7, position: [0, 0, 0], width: 6, depth: 6}
asset: {name: table, min: [-1, 0, -0.5], max: [1, 0.8, 0.5]}
`)
	script := writeFile(t, dir, "script.yaml", `
steps:
  - {action: mode, mode: placement}
  - {action: doubletap, x: 400, y: 300}
`)

	out, err := execute(t, "run", "--config", cfg, "--scene", scene, "--events", script)
	require.NoError(t, err)
	assert.Contains(t, out, "tracked: table")
	assert.Contains(t, out, "scale=0.500")
	assert.Contains(t, out, "placed")
}

func TestRunMissReportsNoTracked(t *testing.T) {
	dir := t.TempDir()
	script := writeFile(t, dir, "script.yaml", `
steps:
  - {action: mode, mode: placement}
  - {action: doubletap, x: 320, y: 479}
`)
	out, err := execute(t, "run", script)
	require.NoError(t, err)
	assert.Contains(t, out, "tracked: none")
	assert.Contains(t, out, "miss=1")
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.yaml", "steps: [{action: wait, frames: 10}]\n")
	bad := writeFile(t, dir, "bad.yaml", "steps: [{action: click}]\n")
	badScene := writeFile(t, dir, "scene.yaml", "camera: {eye: [1, 2]}\n")
	badCfg := writeFile(t, dir, "cfg.yaml", "minScale: 0\n")

	_, err := execute(t, "run", bad)
	assert.Error(t, err, "unknown action")

	_, err = execute(t, "run", "--scene", badScene, good)
	assert.ErrorContains(t, err, "camera.eye")

	_, err = execute(t, "run", "--config", badCfg, good)
	assert.Error(t, err)

	_, err = execute(t, "run", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = execute(t, "run", "--max-frames", "1", good)
	assert.ErrorContains(t, err, "did not finish")
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "initialScaleFactor: 0.25")
	assert.Contains(t, out, "doubleTapThreshold: 300ms")

	dir := t.TempDir()
	cfg := writeFile(t, dir, "cfg.yaml", "scaleSpeed: 0.2\n")
	out, err = execute(t, "config", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "scaleSpeed: 0.2")
}
