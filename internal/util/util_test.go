package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceName(t *testing.T) {
	name := ServiceName()
	require.True(t, strings.HasPrefix(name, fallbackName+"-"), name)
	assert.GreaterOrEqual(t, len(strings.TrimPrefix(name, fallbackName+"-")), 6)
}

func TestServiceID(t *testing.T) {
	a, b := ServiceID(), ServiceID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestFreePort(t *testing.T) {
	port, err := FreePort("localhost")
	require.NoError(t, err)
	assert.Greater(t, port, 0)

	port, err = FreePort("")
	require.NoError(t, err)
	assert.Greater(t, port, 0)
}

func TestElapsed(t *testing.T) {
	done := Elapsed("noop")
	assert.NotPanics(t, done)
}
