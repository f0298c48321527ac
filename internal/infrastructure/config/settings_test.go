package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/reglet-dev/pizzeria/internal/domain/entities"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	s, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
	assert.Equal(t, entities.DefaultStepDelay, s.StepDelay)
}

func TestFromViper_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pizzeria.yaml")
	content := `
kitchen:
  step_delay: 500ms
  time_scale: 0
menu:
  file: /etc/pizzeria/menu.yaml
output:
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	s, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, s.StepDelay)
	assert.Zero(t, s.TimeScale)
	assert.Equal(t, "/etc/pizzeria/menu.yaml", s.MenuFile)
	assert.Equal(t, "json", s.Format)
}

func TestFromViper_Rejects(t *testing.T) {
	tests := []struct {
		key   string
		value any
	}{
		{KeyStepDelay, -time.Second},
		{KeyTimeScale, -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(tt.key, tt.value)

			_, err := FromViper(v)
			assert.ErrorContains(t, err, tt.key)
		})
	}
}

func TestFromViper_ZeroStepDelayIsKept(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set(KeyStepDelay, "0s")

	s, err := FromViper(v)
	require.NoError(t, err)
	assert.Zero(t, s.StepDelay)
}
