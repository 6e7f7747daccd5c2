package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"log": { "level": "debug", "pretty": false },
		"assets": { "dir": "/srv/junk" },
		"seed": 99
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0644))

	require.NoError(t, Load(dir))

	assert.Equal(t, "debug", GetString("log.level"))
	assert.Equal(t, false, GetBool("log.pretty"))
	assert.Equal(t, "/srv/junk", GetString("assets.dir"))
	assert.Equal(t, int64(99), GetInt64("seed"))
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{}`), 0644))
	require.NoError(t, Load(dir))

	assert.Equal(t, 2, GetInt("window.scale"))
	assert.Equal(t, "Junkyard Jump", GetString("window.title"))
	assert.Equal(t, "./assets", GetString("assets.dir"))
	assert.Equal(t, 4, GetInt("assets.perTick"))
	assert.Equal(t, "info", GetString("log.level"))
	assert.Equal(t, 44100, GetInt("audio.sampleRate"))
	assert.Equal(t, true, GetBool("audio.synth"))
	assert.Equal(t, false, GetBool("telemetry.enabled"))
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(t.TempDir()))
	assert.Equal(t, "info", GetString("log.level"))
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"log": `), 0644))

	err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoadTuning_Defaults(t *testing.T) {
	t.Cleanup(viper.Reset)
	require.NoError(t, Load(t.TempDir()))

	tun, err := LoadTuning()
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), tun)
}

func TestLoadTuning_Override(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"tuning": {
			"accel": 2,
			"blownEngineTicks": 10,
			"roundPrize": { "min": 20, "max": 25 }
		}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0644))
	require.NoError(t, Load(dir))

	tun, err := LoadTuning()
	require.NoError(t, err)
	assert.Equal(t, 2.0, tun.Accel)
	assert.Equal(t, 10, tun.BlownEngineTicks)
	assert.Equal(t, 20, tun.RoundPrize.Min)
	assert.Equal(t, 25, tun.RoundPrize.Max)
	assert.Equal(t, 0.5, tun.Decel, "untouched keys keep their defaults")
	assert.Equal(t, 278.0, tun.ConveyorStopX)
}

func TestLoadTuning_RejectsZeroTickRate(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"tuning": {"tickRate": 0}}`), 0644))
	require.NoError(t, Load(dir))

	_, err := LoadTuning()
	require.Error(t, err)
}

func TestGetters(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("testKey", "testValue")
	viper.Set("testInt", 42)
	viper.Set("testBool", true)
	assert.Equal(t, "testValue", GetString("testKey"))
	assert.Equal(t, 42, GetInt("testInt"))
	assert.Equal(t, true, GetBool("testBool"))
}
