package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  int
	}{
		{"unset", nil, 42},
		{"valid", strPtr("100"), 100},
		{"whitespace", strPtr(" 7 "), 7},
		{"negative", strPtr("-10"), -10},
		{"zero", strPtr("0"), 0},
		{"invalid", strPtr("not-a-number"), 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setOrUnset(t, "TEST_INT_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsInt("TEST_INT_VAR", 42))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	def := 5 * time.Second
	tests := []struct {
		name  string
		value *string
		want  time.Duration
	}{
		{"unset", nil, def},
		{"go duration", strPtr("1m30s"), 90 * time.Second},
		{"milliseconds", strPtr("250ms"), 250 * time.Millisecond},
		{"bare seconds", strPtr("45"), 45 * time.Second},
		{"zero", strPtr("0"), 0},
		{"invalid", strPtr("soon"), def},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setOrUnset(t, "TEST_DURATION_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration("TEST_DURATION_VAR", def))
		})
	}
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv("TEST_LIST_VAR", "a, b,,c ")
	assert.Equal(t, []string{"a", "b", "c"}, getEnvAsList("TEST_LIST_VAR"))

	t.Setenv("TEST_LIST_VAR", "")
	assert.Nil(t, getEnvAsList("TEST_LIST_VAR"))
}

func strPtr(s string) *string { return &s }

func setOrUnset(t *testing.T, key string, value *string) {
	t.Helper()
	if value != nil {
		t.Setenv(key, *value)
		return
	}
	t.Setenv(key, "")
	os.Unsetenv(key)
}
