package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfoust/gdlevel/pkg/config"
	"github.com/cfoust/gdlevel/pkg/gd/api"
)

func TestDecodeCommand(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, decodeCommand(&out, "object", "1,1,2,15,3,30,57,1.2"))

	var fields map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &fields))
	assert.Equal(t, 15.0, fields["x"])
	assert.Equal(t, []any{1.0, 2.0}, fields["groups"])

	err := decodeCommand(&out, "object", "1,x")
	assert.ErrorIs(t, err, api.ErrMalformed)
}

func TestNormalizeCommand(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, normalizeCommand(&out, "object", "3,0,57,2.1,1,1,2,15"))
	assert.Equal(t, "1,1,2,15,3,0,57,1.2\n", out.String())
}

func TestEditCommand(t *testing.T) {
	var out bytes.Buffer
	err := editCommand(&out, "object", "1,1,2,0,3,0", map[string]string{
		"x":       "7.5",
		"color_1": "BG",
	})
	require.NoError(t, err)
	assert.Equal(t, "1,1,2,7.5,3,0,21,1000\n", out.String())

	out.Reset()
	err = editCommand(&out, "channel", "6_1", map[string]string{"r": "0"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "1_0_2_255")

	err = editCommand(&out, "object", "1,1", map[string]string{"nope": "1"})
	assert.Error(t, err)

	err = editCommand(&out, "object", "1,1", map[string]string{"x": "far"})
	assert.Error(t, err)
}

func TestLevelCommands(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.txt")
	require.NoError(t, os.WriteFile(path, []byte("kA13,0;1,1,2,15,3,15,57,3;1,8,2,45,3,15;"), 0644))

	var out bytes.Buffer
	require.NoError(t, statsCommand(&out, path))
	assert.Contains(t, out.String(), "objects")
	assert.Contains(t, out.String(), "2")

	settings, err := config.Process(nil)
	require.NoError(t, err)
	settings.Store.Directory = filepath.Join(dir, "snapshots")
	settings.Catalog.Path = filepath.Join(dir, "db", "catalog.db")

	require.NoError(t, saveCommand(settings, "test", path))

	out.Reset()
	require.NoError(t, loadCommand(&out, settings, "test", false))
	assert.Equal(t, "kA13,0;1,1,2,15,3,15,57,3;1,8,2,45,3,15;\n", out.String())

	out.Reset()
	require.NoError(t, listCommand(&out, settings))
	assert.Contains(t, out.String(), "test")

	err = loadCommand(&out, settings, "absent", false)
	assert.Error(t, err)
}
