package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvDefault(t *testing.T) {
	t.Setenv("X_STR", "hello")
	assert.Equal(t, "hello", EnvDefault("X_STR", "fallback"))
	assert.Equal(t, "fallback", EnvDefault("X_STR_UNSET", "fallback"))
}

func TestEnvIntDefault(t *testing.T) {
	t.Setenv("X_INT", "42")
	t.Setenv("X_INT_BAD", "not-a-number")

	assert.Equal(t, 42, EnvIntDefault("X_INT", 7))
	assert.Equal(t, 7, EnvIntDefault("X_INT_BAD", 7))
	assert.Equal(t, 7, EnvIntDefault("X_INT_UNSET", 7))
}

func TestEnvDurationDefault(t *testing.T) {
	t.Setenv("X_DUR", "15m")
	t.Setenv("X_DUR_BAD", "soon")

	assert.Equal(t, 15*time.Minute, EnvDurationDefault("X_DUR", time.Hour))
	assert.Equal(t, time.Hour, EnvDurationDefault("X_DUR_BAD", time.Hour))
	assert.Equal(t, time.Hour, EnvDurationDefault("X_DUR_UNSET", time.Hour))
}

func TestCSV(t *testing.T) {
	assert.Nil(t, CSV(""))
	assert.Equal(t, []string{"a"}, CSV("a"))
	assert.Equal(t, []string{"a", "b", "c"}, CSV("a, b ,c"))
	assert.Equal(t, []string{"a", "b"}, CSV("a,,b,"))
}
