package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	var assert = require.New(t)

	assert.Equal("<unknown> (<unknown>)", String())

	prevVersion, prevDate := version, date
	t.Cleanup(func() { version, date = prevVersion, prevDate })
	version, date = "1.2.3", "2026-10-17"

	assert.Equal("1.2.3", Get())
	assert.Equal("2026-10-17", Date())
	assert.Equal("1.2.3 (2026-10-17)", String())
}
