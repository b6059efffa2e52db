package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STR", "https://hook.example.com")
	assert.Equal(t, "https://hook.example.com", GetEnvString("TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetEnvString("TEST_STR_MISSING", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	assert.Equal(t, 42, GetEnvInt("TEST_INT", 10))

	t.Setenv("TEST_INT_BAD", "fifty")
	assert.Equal(t, 10, GetEnvInt("TEST_INT_BAD", 10))

	// 숫자 뒤에 문자가 붙은 값도 잘못된 값으로 본다
	t.Setenv("TEST_INT_TRAILING", "42x")
	assert.Equal(t, 10, GetEnvInt("TEST_INT_TRAILING", 10))
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT", "2.5")
	assert.Equal(t, 2.5, GetEnvFloat("TEST_FLOAT", 1.0))

	t.Setenv("TEST_FLOAT_BAD", "two")
	assert.Equal(t, 1.0, GetEnvFloat("TEST_FLOAT_BAD", 1.0))
}

func TestGetEnvBool(t *testing.T) {
	for raw, want := range map[string]bool{"1": true, "true": true, "TRUE": true, "0": false, "false": false} {
		t.Setenv("TEST_BOOL", raw)
		assert.Equal(t, want, GetEnvBool("TEST_BOOL", !want), "raw=%q", raw)
	}

	t.Setenv("TEST_BOOL", "yes")
	assert.True(t, GetEnvBool("TEST_BOOL", true))
	assert.False(t, GetEnvBool("TEST_BOOL_MISSING", false))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DUR", "90s")
	assert.Equal(t, 90*time.Second, GetEnvDuration("TEST_DUR", time.Minute))

	t.Setenv("TEST_DUR_BAD", "90")
	assert.Equal(t, time.Minute, GetEnvDuration("TEST_DUR_BAD", time.Minute))
}
