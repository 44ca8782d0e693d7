package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIncludesEnvironment(t *testing.T) {
	os.Setenv("GHARKHOJ_TEST_KEY", "value")
	defer os.Unsetenv("GHARKHOJ_TEST_KEY")

	c := New()
	assert.Equal(t, "value", c["GHARKHOJ_TEST_KEY"])
}

func TestGetString(t *testing.T) {
	c := map[string]string{"PORT": "9090"}

	assert.Equal(t, "9090", GetString(c, "PORT", "8080"))
	assert.Equal(t, "8080", GetString(c, "MISSING", "8080"))
	assert.Equal(t, "8080", GetString(nil, "PORT", "8080"))
}

func TestGetInt(t *testing.T) {
	c := map[string]string{"LIMIT": "42", "BAD": "not-a-number"}

	assert.Equal(t, 42, GetInt(c, "LIMIT", 7))
	assert.Equal(t, 7, GetInt(c, "MISSING", 7))
	assert.Equal(t, 7, GetInt(c, "BAD", 7))
	assert.Equal(t, 7, GetInt(nil, "LIMIT", 7))
}

func TestGetBool(t *testing.T) {
	c := map[string]string{"SEED_DB": "true", "BAD": "yep"}

	assert.True(t, GetBool(c, "SEED_DB", false))
	assert.False(t, GetBool(c, "MISSING", false))
	assert.True(t, GetBool(c, "MISSING", true))
	assert.False(t, GetBool(c, "BAD", false))
}
