package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_FromBytes_AppliesDefaults(t *testing.T) {
	cfg, err := FromBytes([]byte(`color = true`))
	require.NoError(t, err)
	assert.True(t, cfg.Color)
	assert.Equal(t, DefaultWidth, cfg.Width)
}

func Test_FromBytes_ExplicitWidth(t *testing.T) {
	cfg, err := FromBytes([]byte(`width = 40`))
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
}

func Test_FromBytes_Malformed(t *testing.T) {
	_, err := FromBytes([]byte(`this is not : toml =`))
	assert.Error(t, err)
}

func Test_Default(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultWidth, cfg.Width)
	assert.False(t, cfg.Color)
}
