package runcfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cfg := New()

	assert.NotNil(t, cfg.Configurable)
	assert.NotNil(t, cfg.Extra)
}

func TestConfig_Value(t *testing.T) {
	cfg := New().Set("user_id", "u-123")

	v, ok := cfg.Value("user_id")
	require.True(t, ok)
	assert.Equal(t, "u-123", v)

	_, ok = cfg.Value("missing")
	assert.False(t, ok)
}

func TestConfig_Value_Nil(t *testing.T) {
	var cfg *Config

	_, ok := cfg.Value("anything")
	assert.False(t, ok)
}

func TestConfig_Set_InitializesMap(t *testing.T) {
	cfg := &Config{}
	cfg.Set("k", 1)

	v, ok := cfg.Value("k")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestConfig_Clone(t *testing.T) {
	original := New().Set("a", "1")
	original.Extra["section"] = "x"

	clone := original.Clone()
	require.NotNil(t, clone)
	assert.Equal(t, original.Configurable, clone.Configurable)
	assert.Equal(t, original.Extra, clone.Extra)

	// Clone is independent at the top level.
	clone.Set("b", "2")
	_, ok := original.Value("b")
	assert.False(t, ok)
}

func TestConfig_Clone_Nil(t *testing.T) {
	var cfg *Config
	assert.Nil(t, cfg.Clone())
}

func TestAmbientLifecycle(t *testing.T) {
	ClearAmbient()
	t.Cleanup(ClearAmbient)

	_, err := Ambient()
	assert.ErrorIs(t, err, ErrNoContext)

	cfg := New().Set("k", "v")
	SetAmbient(cfg)

	got, err := Ambient()
	require.NoError(t, err)
	assert.Same(t, cfg, got)

	ClearAmbient()
	_, err = Ambient()
	assert.ErrorIs(t, err, ErrNoContext)
}
