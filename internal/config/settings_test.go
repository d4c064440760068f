package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 640, s.Screen.Width)
	assert.Equal(t, 480, s.Screen.Height)
	assert.Equal(t, 10, s.Pool.Shots)
	assert.Equal(t, 10, s.Pool.Enemies)
	assert.Equal(t, 3.0, s.Player.Speed)
	assert.Equal(t, 10, s.Player.FireInterval)
	assert.Equal(t, 50.0, s.Player.EntranceRate)
	assert.Equal(t, 7.0, s.Shot.Speed)
	assert.Equal(t, 3.0, s.Enemy.Speed)
	assert.Equal(t, 1, s.Enemy.Life)
	assert.Equal(t, "./image/viper.png", s.Assets.Player)
	assert.Equal(t, "info", s.Log.Level)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shooter.json")
	cfg := `{
		"pool": { "shots": 4 },
		"player": { "fireInterval": 5 },
		"log": { "level": "debug" }
	}`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, s.Pool.Shots)
	assert.Equal(t, 5, s.Player.FireInterval)
	assert.Equal(t, "debug", s.Log.Level)
	assert.Equal(t, 10, s.Pool.Enemies)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SHOOTER_POOL_ENEMIES", "3")

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, s.Pool.Enemies)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidPool(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shooter.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"pool": {"shots": 0}}`), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "pool.shots")
}

func TestLoad_RejectsUndecodableValue(t *testing.T) {
	t.Setenv("SHOOTER_POOL_SHOTS", "many")

	_, err := Load("")
	assert.ErrorContains(t, err, "failed to unmarshal settings")
}

func TestDefaultMatchesConstants(t *testing.T) {
	var s *Settings
	require.NotPanics(t, func() { s = Default() })
	assert.Equal(t, ScreenWidth, s.Screen.Width)
	assert.Equal(t, ShotMaxCount, s.Pool.Shots)
	assert.NoError(t, s.Validate())
}
